package constants

// Asset status. The Vietnamese label is the stored value, not only the display text.
const (
	AssetStatusInUse       = "Đang sử dụng"
	AssetStatusUnderRepair = "Đang sửa chữa"
	AssetStatusBroken      = "Bị hỏng"
	AssetStatusDisposed    = "Đã thanh lý"
)

// AssetStatusDefault là trạng thái gán cho tài sản mới tạo
const AssetStatusDefault = AssetStatusInUse

// AssetStatuses liệt kê đầy đủ các trạng thái hợp lệ
var AssetStatuses = []string{
	AssetStatusInUse,
	AssetStatusUnderRepair,
	AssetStatusBroken,
	AssetStatusDisposed,
}

// IsValidAssetStatus kiểm tra status có thuộc tập trạng thái cho phép không
func IsValidAssetStatus(status string) bool {
	for _, s := range AssetStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Date layout cho dateAdded
const DateLayout = "2006-01-02"
