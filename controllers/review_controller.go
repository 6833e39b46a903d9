package controllers

import (
	"strconv"

	"github.com/Ambaks/campuseats/pkg/resp"
	"github.com/Ambaks/campuseats/services"
	"github.com/Ambaks/campuseats/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Svc *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: svc}
}

// POST /reviews (Protected)
func (ctl *ReviewController) Create(c *gin.Context) {
	var req services.CreateReviewIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rev, err := ctl.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, rev)
}

// GET /meal/:id/reviews (Public)
func (ctl *ReviewController) ListForMeal(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid meal id")
		return
	}
	reviews, err := ctl.Svc.ListForMeal(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, reviews)
}

// GET /chef/:id/reviews (Public)
func (ctl *ReviewController) ListForChef(c *gin.Context) {
	reviews, err := ctl.Svc.ListForChef(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, reviews)
}

// GET /chef/:id/rating-summary (Public)
func (ctl *ReviewController) RatingSummary(c *gin.Context) {
	summary, err := ctl.Svc.RatingSummary(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, summary)
}
