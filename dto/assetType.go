package dto

import "strings"

// CreateAssetTypeRequest là DTO cho yêu cầu tạo loại tài sản
type CreateAssetTypeRequest struct {
	Name string `json:"name" validate:"required"`
}

func (r *CreateAssetTypeRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

// AssetTypeSummary là số lượng tài sản theo loại
type AssetTypeSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AssetCount int    `json:"assetCount"`
}
