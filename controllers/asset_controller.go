package controllers

import (
	"fmt"

	"assetflow/constants"
	"assetflow/dto"
	"assetflow/metrics"
	"assetflow/response"

	"github.com/gin-gonic/gin"
)

// CreateAssets tạo hàng loạt, trả về id và giá trị QR của từng tài sản
func (h *InventoryController) CreateAssets(c *gin.Context) {
	var req dto.CreateAssetRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.svc.AddAsset(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	metrics.AddAssetsCreated(len(created))
	response.Created(c, fmt.Sprintf(constants.MsgAssetsCreatedFmt, len(created)), gin.H{"newAssets": created})
}

func (h *InventoryController) UpdateAssetStatus(c *gin.Context) {
	var req dto.UpdateAssetStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.svc.UpdateAssetStatus(c.Request.Context(), req); err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, constants.MsgAssetStatusUpdated)
}

func (h *InventoryController) MoveAsset(c *gin.Context) {
	var req dto.MoveAssetRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.svc.MoveAsset(c.Request.Context(), req); err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, constants.MsgAssetMoved)
}

// GetAssets hỗ trợ lọc theo q, status, roomId, assetTypeId
func (h *InventoryController) GetAssets(c *gin.Context) {
	var filter dto.AssetFilter
	if !bindQuery(c, &filter) {
		return
	}

	assets, err := h.svc.GetAssets(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, assets)
}

func (h *InventoryController) GetAssetDetail(c *gin.Context) {
	asset, err := h.svc.GetAssetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if asset == nil {
		response.NotFound(c, constants.MsgAssetNotFound)
		return
	}
	response.Success(c, asset)
}

// GetPublicAsset là trang tra cứu khi quét QR, không yêu cầu đăng nhập
func (h *InventoryController) GetPublicAsset(c *gin.Context) {
	view, err := h.svc.PublicAsset(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, view)
}

func (h *InventoryController) ResolveScan(c *gin.Context) {
	result, err := h.svc.ResolveScan(c.Request.Context(), c.Query("code"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, result)
}
