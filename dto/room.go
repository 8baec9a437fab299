package dto

import (
	"strings"

	"assetflow/models"
)

// CreateRoomRequest là DTO cho request tạo phòng
type CreateRoomRequest struct {
	Name      string `json:"name" validate:"required"`
	ManagerID string `json:"managerId" validate:"required"`
}

func (r *CreateRoomRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.ManagerID = strings.TrimSpace(r.ManagerID)
}

// UpdateRoomRequest là DTO cho request cập nhật phòng, chỉ các trường được gửi mới được ghi
type UpdateRoomRequest struct {
	Name      *string `json:"name" validate:"omitnil,min=1"`
	ManagerID *string `json:"managerId" validate:"omitnil,min=1"`
}

func (r *UpdateRoomRequest) Normalize() {
	trimPtr(r.Name)
	trimPtr(r.ManagerID)
}

// IsEmpty trả về true khi không có trường nào được gửi lên
func (r *UpdateRoomRequest) IsEmpty() bool {
	return r.Name == nil && r.ManagerID == nil
}

// Fields trả về tập cột cần cập nhật
func (r *UpdateRoomRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.ManagerID != nil {
		fields["manager_id"] = *r.ManagerID
	}
	return fields
}

// RoomReport là báo cáo tài sản của một phòng, tính tại thời điểm gọi
type RoomReport struct {
	Room          models.Room    `json:"room"`
	Manager       *models.User   `json:"manager,omitempty"`
	Assets        []models.Asset `json:"assets"`
	Total         int            `json:"total"`
	CountByStatus map[string]int `json:"countByStatus"`
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
