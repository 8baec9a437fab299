package controllers

import (
	"assetflow/constants"
	"assetflow/dto"
	"assetflow/response"

	"github.com/gin-gonic/gin"
)

func (h *InventoryController) CreateAssetType(c *gin.Context) {
	var req dto.CreateAssetTypeRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.svc.AddAssetType(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, constants.MsgAssetTypeCreated, gin.H{"id": id})
}

func (h *InventoryController) GetAssetTypes(c *gin.Context) {
	types, err := h.svc.GetAssetTypes(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, types)
}

// GetAssetTypeSummary trả về số tài sản theo từng loại
func (h *InventoryController) GetAssetTypeSummary(c *gin.Context) {
	summary, err := h.svc.AssetTypeSummary(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, summary)
}

func (h *InventoryController) GetAssetTypeDetail(c *gin.Context) {
	assetType, err := h.svc.GetAssetTypeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if assetType == nil {
		response.NotFound(c, constants.MsgAssetTypeNotFound)
		return
	}
	response.Success(c, assetType)
}

func (h *InventoryController) GetAssetTypeAssets(c *gin.Context) {
	ctx := c.Request.Context()
	assetType, err := h.svc.GetAssetTypeByID(ctx, c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if assetType == nil {
		response.NotFound(c, constants.MsgAssetTypeNotFound)
		return
	}

	assets, err := h.svc.GetAssetsByTypeID(ctx, assetType.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, assets)
}
