package config

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// InitApp tạo gin engine đã gắn CORS và melody hub cho websocket
func InitApp(cfg *Config) (*gin.Engine, *melody.Melody) {
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(allowOriginHeader(), cors.New(CorsConfig()))
	router.Use(preflight())

	router.SetTrustedProxies(nil)

	m := melody.New()
	return router, m
}

// CorsConfig cho phép mọi origin với các method của API
func CorsConfig() cors.Config {
	configCors := cors.DefaultConfig()
	configCors.AllowAllOrigins = true
	configCors.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	configCors.AddAllowHeaders("Authorization", "X-Request-ID")
	return configCors
}

// allowOriginHeader gắn Access-Control-Allow-Origin cho mọi response.
// cors.New chỉ gắn header khi request có Origin.
func allowOriginHeader() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Next()
	}
}

// preflight trả 204 cho mọi OPTIONS, kể cả khi không có header Origin
func preflight() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
