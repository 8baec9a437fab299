package controllers

import (
	"assetflow/constants"
	"assetflow/dto"
	"assetflow/response"

	"github.com/gin-gonic/gin"
)

func (h *InventoryController) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.svc.AddUser(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, constants.MsgUserCreated, gin.H{"id": id})
}

func (h *InventoryController) GetUsers(c *gin.Context) {
	users, err := h.svc.GetUsers(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, users)
}

func (h *InventoryController) GetUserByID(c *gin.Context) {
	user, err := h.svc.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if user == nil {
		response.NotFound(c, constants.MsgUserNotFound)
		return
	}
	response.Success(c, user)
}
