package validator

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"assetflow/constants"
	"assetflow/errors"

	playground "github.com/go-playground/validator/v10"
)

// InvalidDataMessage là thông báo chung cho dữ liệu không hợp lệ
const InvalidDataMessage = "Dữ liệu không hợp lệ."

// Normalizer được gọi trước khi validate để chuẩn hóa dữ liệu (trim khoảng trắng...)
type Normalizer interface {
	Normalize()
}

var (
	once     sync.Once
	validate *playground.Validate
)

// fieldLabels là tên hiển thị tiếng Việt cho các trường
var fieldLabels = map[string]string{
	"name":          "Tên",
	"managerId":     "Người quản lý",
	"quantity":      "Số lượng",
	"roomId":        "Phòng",
	"assetTypeId":   "Loại tài sản",
	"assetId":       "Tài sản",
	"status":        "Trạng thái",
	"newRoomId":     "Phòng mới",
	"assetData":     "Dữ liệu tài sản",
	"inventoryData": "Dữ liệu kiểm kê",
}

// Instance trả về validator dùng chung, đã đăng ký các rule riêng
func Instance() *playground.Validate {
	once.Do(func() {
		validate = playground.New(playground.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return fld.Name
		})
		_ = validate.RegisterValidation("assetstatus", func(fl playground.FieldLevel) bool {
			return constants.IsValidAssetStatus(fl.Field().String())
		})
	})
	return validate
}

// Struct chuẩn hóa rồi validate request, trả về AppError loại validation
func Struct(req interface{}) error {
	if n, ok := req.(Normalizer); ok {
		n.Normalize()
	}
	err := Instance().Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(playground.ValidationErrors)
	if !ok {
		return errors.Validation(InvalidDataMessage)
	}

	details := make([]errors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, errors.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return errors.Validation(InvalidDataMessage, details...)
}

func label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}

func messageFor(fe playground.FieldError) string {
	name := label(fe.Field())
	isNumber := false
	switch fe.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		isNumber = true
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s không được để trống", name)
	case "min":
		if isNumber {
			return fmt.Sprintf("%s phải lớn hơn hoặc bằng %s", name, fe.Param())
		}
		if fe.Param() == "1" {
			return fmt.Sprintf("%s không được để trống", name)
		}
		return fmt.Sprintf("%s phải có ít nhất %s ký tự", name, fe.Param())
	case "max":
		if isNumber {
			return fmt.Sprintf("%s không được vượt quá %s", name, fe.Param())
		}
		return fmt.Sprintf("%s không được dài quá %s ký tự", name, fe.Param())
	case "assetstatus":
		return fmt.Sprintf("%s không hợp lệ, phải là một trong: %s", name, strings.Join(constants.AssetStatuses, ", "))
	default:
		return fmt.Sprintf("%s không hợp lệ", name)
	}
}
