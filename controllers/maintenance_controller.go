package controllers

import (
	"assetflow/dto"
	"assetflow/response"
	"assetflow/services"

	"github.com/gin-gonic/gin"
)

type MaintenanceController struct {
	svc *services.MaintenanceService
}

func NewMaintenanceController(svc *services.MaintenanceService) *MaintenanceController {
	return &MaintenanceController{svc: svc}
}

// Schedule trả nguyên kết quả văn bản của mô hình
func (h *MaintenanceController) Schedule(c *gin.Context) {
	var req dto.MaintenanceRequest
	if !bindJSON(c, &req) {
		return
	}

	schedule, err := h.svc.Schedule(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, schedule)
}
