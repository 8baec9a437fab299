package dto

import "strings"

// CreateUserRequest là DTO cho yêu cầu tạo người dùng
type CreateUserRequest struct {
	Name string `json:"name" validate:"required"`
}

func (r *CreateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}
