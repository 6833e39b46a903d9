package controllers

import (
	"strconv"

	"github.com/Ambaks/campuseats/pkg/resp"
	"github.com/Ambaks/campuseats/services"
	"github.com/Ambaks/campuseats/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// GET /orders/:userId (Protected, self only): the seller's incoming
// chef orders.
func (ctl *OrderController) ListForChef(c *gin.Context) {
	userID := c.Param("userId")
	if userID != utils.CurrentUserID(c) {
		resp.Forbidden(c, "cannot read another chef's orders")
		return
	}
	orders, err := ctl.Svc.ListForChef(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/buyer/:userId (Protected, self only)
func (ctl *OrderController) ListForBuyer(c *gin.Context) {
	userID := c.Param("userId")
	if userID != utils.CurrentUserID(c) {
		resp.Forbidden(c, "cannot read another buyer's orders")
		return
	}
	orders, err := ctl.Svc.ListForBuyer(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, orders)
}

// PATCH /orders/chef/:id/status (Protected, owning chef only)
func (ctl *OrderController) UpdateChefOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid chef order id")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	co, err := ctl.Svc.UpdateChefOrderStatus(utils.CurrentUserID(c), uint(id), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, co)
}
