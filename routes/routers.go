package routes

import (
	"net/http"

	"assetflow/constants"
	"assetflow/controllers"
	"assetflow/metrics"
	middlewares "assetflow/middleware"
	"assetflow/response"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Route là một dòng trong bảng định tuyến; Auth=true thì cần token khi bật xác thực
type Route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Auth    bool
}

// Dependencies là các handler và cấu hình cần để dựng bảng định tuyến
type Dependencies struct {
	Inventory   *controllers.InventoryController
	Maintenance *controllers.MaintenanceController
	Melody      *melody.Melody
	AuthSecret  string
}

// Table trả về toàn bộ route của API
func Table(d Dependencies) []Route {
	inv := d.Inventory
	return []Route{
		// Phòng
		{http.MethodPost, "/rooms", inv.CreateRoom, true},
		{http.MethodGet, "/rooms", inv.GetRooms, false},
		{http.MethodGet, "/rooms/:id", inv.GetRoomDetail, false},
		{http.MethodPut, "/rooms/:id", inv.UpdateRoom, true},
		{http.MethodDelete, "/rooms/:id", inv.DeleteRoom, true},
		{http.MethodGet, "/rooms/:id/assets", inv.GetRoomAssets, false},
		{http.MethodGet, "/rooms/:id/report", inv.GetRoomReport, false},

		// Tài sản
		{http.MethodPost, "/assets", inv.CreateAssets, true},
		{http.MethodGet, "/assets", inv.GetAssets, false},
		{http.MethodGet, "/assets/:id", inv.GetAssetDetail, false},
		{http.MethodPut, "/assets/status", inv.UpdateAssetStatus, true},
		{http.MethodPut, "/assets/move", inv.MoveAsset, true},

		// Loại tài sản
		{http.MethodPost, "/asset-types", inv.CreateAssetType, true},
		{http.MethodGet, "/asset-types", inv.GetAssetTypes, false},
		{http.MethodGet, "/asset-types/summary", inv.GetAssetTypeSummary, false},
		{http.MethodGet, "/asset-types/:id", inv.GetAssetTypeDetail, false},
		{http.MethodGet, "/asset-types/:id/assets", inv.GetAssetTypeAssets, false},

		// Người dùng
		{http.MethodPost, "/users", inv.CreateUser, true},
		{http.MethodGet, "/users", inv.GetUsers, false},
		{http.MethodGet, "/users/:id", inv.GetUserByID, false},

		// QR
		{http.MethodGet, "/public/assets/:id", inv.GetPublicAsset, false},
		{http.MethodGet, "/scan/resolve", inv.ResolveScan, false},

		{http.MethodPost, "/maintenance/schedule", d.Maintenance.Schedule, true},

		//ws
		{http.MethodGet, "/ws", wsHandler(d.Melody), true},

		{http.MethodGet, "/metrics", gin.WrapH(promhttp.Handler()), false},
		{http.MethodGet, "/ping", ping, false},
	}
}

// SetupRoutes đăng ký bảng định tuyến lên router
func SetupRoutes(router *gin.Engine, d Dependencies) {
	router.Use(middlewares.RequestIDMiddleware(), metrics.Middleware(), middlewares.ErrorHandler())

	auth := middlewares.AuthMiddleware(d.AuthSecret)
	for _, r := range Table(d) {
		if r.Auth {
			router.Handle(r.Method, r.Path, auth, r.Handler)
			continue
		}
		router.Handle(r.Method, r.Path, r.Handler)
	}

	router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, constants.MsgEndpointNotFound)
	})
}

func wsHandler(m *melody.Melody) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.HandleRequest(c.Writer, c.Request); err != nil {
			_ = c.Error(err)
		}
	}
}

func ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}
