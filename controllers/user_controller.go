package controllers

import (
	"github.com/Ambaks/campuseats/pkg/resp"
	"github.com/Ambaks/campuseats/services"
	"github.com/Ambaks/campuseats/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{Svc: svc}
}

// POST /users (Protected): registers the verified identity in the store.
func (ctl *UserController) Create(c *gin.Context) {
	var req services.CreateUserIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	// The record is keyed by the verified uid, not whatever the body says.
	req.ID = utils.CurrentUserID(c)

	u, err := ctl.Svc.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, u)
}

// GET /users/:id (Public)
func (ctl *UserController) Get(c *gin.Context) {
	u, err := ctl.Svc.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, u)
}

// PUT /users/:id (Protected, self only)
func (ctl *UserController) Update(c *gin.Context) {
	id := c.Param("id")
	if id != utils.CurrentUserID(c) {
		resp.Forbidden(c, "cannot update another user")
		return
	}

	var req services.UpdateUserIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	u, err := ctl.Svc.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, u)
}

// GET /check-username?username= (Public)
func (ctl *UserController) CheckUsername(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		resp.BadRequest(c, "username is required")
		return
	}
	available, err := ctl.Svc.UsernameAvailable(username)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"available": available})
}
