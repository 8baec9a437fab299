package dto

// MaintenanceRequest là dữ liệu dán vào để AI phân tích
type MaintenanceRequest struct {
	AssetData        string `json:"assetData" validate:"required,min=10"`
	InventoryData    string `json:"inventoryData" validate:"required,min=10"`
	ReportedProblems string `json:"reportedProblems"`
}

// MaintenanceSchedule là kết quả văn bản tự do, không được phân tích thêm
type MaintenanceSchedule struct {
	MaintenanceSchedule string `json:"maintenanceSchedule"`
	RiskAssessment      string `json:"riskAssessment"`
	Recommendations     string `json:"recommendations"`
}
