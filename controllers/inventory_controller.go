package controllers

import (
	"assetflow/errors"
	"assetflow/services"
	"assetflow/validator"

	"github.com/gin-gonic/gin"
)

// InventoryController gom các handler của phòng, tài sản, loại tài sản và người dùng
type InventoryController struct {
	svc *services.InventoryService
}

func NewInventoryController(svc *services.InventoryService) *InventoryController {
	return &InventoryController{svc: svc}
}

// bindJSON đọc body JSON; body hỏng được coi là dữ liệu không hợp lệ
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		_ = c.Error(errors.Validation(validator.InvalidDataMessage))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		_ = c.Error(errors.Validation(validator.InvalidDataMessage))
		return false
	}
	return true
}
