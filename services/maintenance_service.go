package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"assetflow/constants"
	"assetflow/dto"
	"assetflow/errors"
	"assetflow/services/logger"
	"assetflow/validator"

	json "github.com/goccy/go-json"
)

const (
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
	DefaultOpenAIModel   = "gpt-4o-mini"
)

// MaintenanceConfig cấu hình kết nối OpenAI
type MaintenanceConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// MaintenanceService gọi mô hình ngôn ngữ để lập lịch bảo trì dự đoán.
// Kết quả là văn bản tự do, được trả nguyên cho client.
type MaintenanceService struct {
	cfg    MaintenanceConfig
	client *http.Client
	logger logger.Logger
}

func NewMaintenanceService(cfg MaintenanceConfig, log logger.Logger) *MaintenanceService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultOpenAIBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Model == "" {
		cfg.Model = DefaultOpenAIModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &MaintenanceService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: log,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	Temperature    float64           `json:"temperature"`
	ResponseFormat map[string]string `json:"response_format"`
}

type GPTResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

const maintenanceSystemPrompt = `You are an AI assistant designed to analyze asset data and generate predictive maintenance schedules.
Based on the provided asset data, inventory data, and reported problems, proactively identify potential maintenance needs, minimize downtime, and optimize maintenance strategies.
Consider historical usage and performance, frequency and severity of reported problems, current asset status and availability, and the risks of asset failure.
Include specific maintenance tasks, frequency, priority, and potential impact on operations. Be specific, professional and actionable. Do not be conversational.
Answer in Vietnamese with a single JSON object:
{"maintenanceSchedule": "string", "riskAssessment": "string", "recommendations": "string"}`

// Schedule validate dữ liệu đầu vào rồi gọi OpenAI
func (s *MaintenanceService) Schedule(ctx context.Context, req dto.MaintenanceRequest) (*dto.MaintenanceSchedule, error) {
	if err := validator.Struct(&req); err != nil {
		return nil, err
	}
	if s.cfg.APIKey == "" {
		return nil, s.upstreamError(fmt.Errorf("API key không tồn tại"))
	}

	userPrompt := fmt.Sprintf("Asset Data: %s\nInventory Data: %s\nReported Problems: %s",
		req.AssetData, req.InventoryData, req.ReportedProblems)

	requestBody, err := json.Marshal(chatRequest{
		Model: s.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: maintenanceSystemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature:    0.2,
		ResponseFormat: map[string]string{"type": "json_object"},
	})
	if err != nil {
		return nil, s.upstreamError(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+"/chat/completions", bytes.NewReader(requestBody))
	if err != nil {
		return nil, s.upstreamError(err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, s.upstreamError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, s.upstreamError(err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, s.upstreamError(fmt.Errorf("openai status %d: %s", resp.StatusCode, truncate(string(body), 300)))
	}

	var gptResp GPTResponse
	if err := json.Unmarshal(body, &gptResp); err != nil || len(gptResp.Choices) == 0 {
		return nil, s.upstreamError(fmt.Errorf("GPT trả về lỗi hoặc không hợp lệ"))
	}

	content := strings.TrimSpace(gptResp.Choices[0].Message.Content)
	var schedule dto.MaintenanceSchedule
	if err := json.Unmarshal([]byte(content), &schedule); err != nil {
		s.logger.Debug("GPT raw content: %s", truncate(content, 500))
		return nil, s.upstreamError(fmt.Errorf("lỗi parse JSON GPT: %w", err))
	}
	return &schedule, nil
}

func (s *MaintenanceService) upstreamError(err error) error {
	s.logger.Error("maintenance schedule: %v", err)
	return errors.Upstream(errors.ErrCodeMaintenanceFailure, constants.MsgMaintenanceFailure, err)
}

// truncate cắt s còn tối đa n ký tự, không cắt giữa một ký tự nhiều byte
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
