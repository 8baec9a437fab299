package response

import (
	"net/http"

	"assetflow/constants"
	"assetflow/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse định nghĩa cấu trúc response lỗi
type ErrorResponse struct {
	Error   string              `json:"error"`
	Details []errors.FieldError `json:"details,omitempty"`
}

// DataResponse là response của các truy vấn đọc
type DataResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Success trả về response thành công có data
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, DataResponse{
		Message: constants.MsgSuccess,
		Data:    data,
	})
}

// Message trả về {message} kèm các trường bổ sung
func Message(c *gin.Context, status int, message string, fields gin.H) {
	body := gin.H{"message": message}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(status, body)
}

// Created trả về 201 cho thao tác tạo mới
func Created(c *gin.Context, message string, fields gin.H) {
	Message(c, http.StatusCreated, message, fields)
}

// OK trả về 200 chỉ với message
func OK(c *gin.Context, message string) {
	Message(c, http.StatusOK, message, nil)
}

// Error trả về response lỗi với status tùy chọn
func Error(c *gin.Context, status int, message string, details ...errors.FieldError) {
	c.JSON(status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, constants.MsgServerError)
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// StatusFor trả về HTTP status tương ứng loại lỗi
func StatusFor(kind errors.Kind) int {
	switch kind {
	case errors.KindValidation, errors.KindDomainRule:
		return http.StatusBadRequest
	case errors.KindNotFound:
		return http.StatusNotFound
	case errors.KindUpstream:
		return http.StatusBadGateway
	case errors.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// FromError chuyển lỗi ứng dụng thành response; lỗi lưu trữ hoặc lỗi lạ chỉ trả thông báo chung
func FromError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Kind == errors.KindStore {
		ServerError(c)
		return
	}
	Error(c, StatusFor(appErr.Kind), appErr.Message, appErr.Details...)
}
