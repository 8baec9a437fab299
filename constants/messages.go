package constants

// Thông báo trả về cho client
const (
	MsgSuccess = "Thành công"

	MsgRoomCreated        = "Đã thêm phòng thành công."
	MsgRoomUpdated        = "Cập nhật phòng thành công."
	MsgRoomDeleted        = "Xóa phòng thành công."
	MsgAssetsCreatedFmt   = "Đã thêm %d tài sản thành công."
	MsgAssetStatusUpdated = "Cập nhật trạng thái tài sản thành công."
	MsgAssetMoved         = "Di dời tài sản thành công."
	MsgAssetTypeCreated   = "Đã thêm loại tài sản thành công."
	MsgUserCreated        = "Đã thêm người dùng thành công."

	MsgEmptyUpdate        = "Không có dữ liệu cập nhật."
	MsgRoomNotEmpty       = "Không thể xóa phòng có chứa tài sản."
	MsgManagerNotFound    = "Người quản lý không tồn tại."
	MsgRoomNotExist       = "Phòng không tồn tại."
	MsgAssetTypeNotExist  = "Loại tài sản không tồn tại."
	MsgRoomNotFound       = "Không tìm thấy phòng."
	MsgAssetNotFound      = "Không tìm thấy tài sản."
	MsgAssetTypeNotFound  = "Không tìm thấy loại tài sản."
	MsgUserNotFound       = "Không tìm thấy người dùng."
	MsgInvalidScan        = "Mã QR không hợp lệ."
	MsgEndpointNotFound   = "Không tìm thấy endpoint."
	MsgServerError        = "Lỗi server"
	MsgMaintenanceFailure = "Không thể tạo lịch bảo trì, vui lòng thử lại sau."
	MsgUnauthorized       = "Bạn chưa đăng nhập."
	MsgInvalidToken       = "Token không hợp lệ hoặc đã hết hạn."
)
