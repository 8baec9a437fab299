package controllers

import (
	"assetflow/constants"
	"assetflow/dto"
	"assetflow/response"

	"github.com/gin-gonic/gin"
)

func (h *InventoryController) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.svc.AddRoom(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, constants.MsgRoomCreated, gin.H{"id": id})
}

func (h *InventoryController) UpdateRoom(c *gin.Context) {
	var req dto.UpdateRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.svc.UpdateRoom(c.Request.Context(), c.Param("id"), req); err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, constants.MsgRoomUpdated)
}

func (h *InventoryController) DeleteRoom(c *gin.Context) {
	if err := h.svc.DeleteRoom(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, constants.MsgRoomDeleted)
}

// GetRooms trả về danh sách phòng đã sắp xếp theo tên
func (h *InventoryController) GetRooms(c *gin.Context) {
	rooms, err := h.svc.GetRooms(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, rooms)
}

func (h *InventoryController) GetRoomDetail(c *gin.Context) {
	room, err := h.svc.GetRoomByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if room == nil {
		response.NotFound(c, constants.MsgRoomNotFound)
		return
	}
	response.Success(c, room)
}

func (h *InventoryController) GetRoomAssets(c *gin.Context) {
	ctx := c.Request.Context()
	room, err := h.svc.GetRoomByID(ctx, c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if room == nil {
		response.NotFound(c, constants.MsgRoomNotFound)
		return
	}

	assets, err := h.svc.GetAssetsByRoomID(ctx, room.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, assets)
}

func (h *InventoryController) GetRoomReport(c *gin.Context) {
	report, err := h.svc.RoomReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, report)
}
