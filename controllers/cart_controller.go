package controllers

import (
	"strconv"

	"github.com/Ambaks/campuseats/pkg/resp"
	"github.com/Ambaks/campuseats/services"
	"github.com/Ambaks/campuseats/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Svc *services.CartService
}

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{Svc: svc}
}

// GET /cart/:userId (Protected, self only)
func (ctl *CartController) Get(c *gin.Context) {
	userID := c.Param("userId")
	if userID != utils.CurrentUserID(c) {
		resp.Forbidden(c, "cannot read another user's cart")
		return
	}
	cart, err := ctl.Svc.Get(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, cart)
}

// POST /cart/:userId (Protected, self only): replaces the full item list.
func (ctl *CartController) Replace(c *gin.Context) {
	userID := c.Param("userId")
	if userID != utils.CurrentUserID(c) {
		resp.Forbidden(c, "cannot modify another user's cart")
		return
	}

	var items []services.CartItemIn
	if err := c.ShouldBindJSON(&items); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := ctl.Svc.Replace(userID, items)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /cart/:userId/:mealId (Protected, self only)
func (ctl *CartController) RemoveItem(c *gin.Context) {
	userID := c.Param("userId")
	if userID != utils.CurrentUserID(c) {
		resp.Forbidden(c, "cannot modify another user's cart")
		return
	}
	mealID, err := strconv.Atoi(c.Param("mealId"))
	if err != nil {
		resp.BadRequest(c, "invalid meal id")
		return
	}

	cart, err := ctl.Svc.RemoveItem(userID, uint(mealID))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, cart)
}

// POST /clear-cart (Protected)
func (ctl *CartController) Clear(c *gin.Context) {
	if err := ctl.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "cart cleared"})
}
