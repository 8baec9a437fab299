package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"

	// Database errors
	ErrCodeDBError ErrorCode = "DB_ERROR"

	// Validation errors
	ErrCodeValidation  ErrorCode = "VALIDATION_ERROR"
	ErrCodeEmptyUpdate ErrorCode = "EMPTY_UPDATE"

	// Business errors
	ErrCodeRoomNotEmpty       ErrorCode = "ROOM_NOT_EMPTY"
	ErrCodeRoomNotFound       ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeAssetNotFound      ErrorCode = "ASSET_NOT_FOUND"
	ErrCodeManagerNotFound    ErrorCode = "MANAGER_NOT_FOUND"
	ErrCodeAssetTypeNotFound  ErrorCode = "ASSET_TYPE_NOT_FOUND"
	ErrCodeInvalidScan        ErrorCode = "INVALID_SCAN"
	ErrCodeMaintenanceFailure ErrorCode = "MAINTENANCE_FAILURE"
)

// Kind phân loại lỗi theo cách xử lý ở tầng HTTP
type Kind int

const (
	KindStore Kind = iota
	KindValidation
	KindDomainRule
	KindNotFound
	KindUpstream
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindDomainRule:
		return "domain_rule"
	case KindNotFound:
		return "not_found"
	case KindUpstream:
		return "upstream"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "store"
	}
}

// FieldError mô tả lỗi của một trường dữ liệu
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Kind    Kind
	Message string
	Err     error
	Details []FieldError
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kindForCode(code),
		Message: message,
		Err:     err,
	}
}

// Validation tạo lỗi dữ liệu đầu vào kèm chi tiết từng trường
func Validation(message string, details ...FieldError) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Kind:    KindValidation,
		Message: message,
		Details: details,
	}
}

// DomainRule tạo lỗi vi phạm nghiệp vụ
func DomainRule(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Kind: KindDomainRule, Message: message}
}

// NotFound tạo lỗi không tìm thấy bản ghi
func NotFound(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Kind: KindNotFound, Message: message}
}

// Store bọc lỗi từ tầng lưu trữ, message cho người dùng luôn là thông báo chung
func Store(message string, err error) *AppError {
	return &AppError{Code: ErrCodeDBError, Kind: KindStore, Message: message, Err: err}
}

// Upstream bọc lỗi từ dịch vụ bên ngoài
func Upstream(code ErrorCode, message string, err error) *AppError {
	return &AppError{Code: code, Kind: KindUpstream, Message: message, Err: err}
}

func kindForCode(code ErrorCode) Kind {
	switch code {
	case ErrCodeValidation, ErrCodeEmptyUpdate:
		return KindValidation
	case ErrCodeRoomNotEmpty, ErrCodeManagerNotFound, ErrCodeInvalidScan:
		return KindDomainRule
	case ErrCodeRoomNotFound, ErrCodeAssetNotFound, ErrCodeAssetTypeNotFound:
		return KindNotFound
	case ErrCodeMaintenanceFailure:
		return KindUpstream
	case ErrCodeUnauthorized, ErrCodeInvalidToken:
		return KindUnauthorized
	default:
		return KindStore
	}
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsKind kiểm tra loại lỗi
func IsKind(err error, kind Kind) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Kind == kind
}

var (
	// ErrNotFound được tầng store trả về khi không có bản ghi
	ErrNotFound = errors.New("record not found")
	// ErrRoomNotEmpty được tầng store trả về khi xóa phòng còn tài sản
	ErrRoomNotEmpty = errors.New("room still has assets")
)
