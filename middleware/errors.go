package middleware

import (
	"assetflow/errors"
	"assetflow/metrics"
	"assetflow/response"

	"github.com/gin-gonic/gin"
)

// ErrorHandler chuyển lỗi cuối cùng trong c.Errors thành response theo loại lỗi
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		kind := errors.KindStore
		if appErr := errors.GetAppError(err); appErr != nil {
			kind = appErr.Kind
		}
		if c.Request.Method != "GET" {
			metrics.ObserveMutationError(c.FullPath(), kind.String())
		}
		response.FromError(c, err)
	}
}
