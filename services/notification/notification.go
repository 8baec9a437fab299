package notification

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

// MelodyService phát thông báo tới mọi kết nối websocket đang mở
type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// NopService bỏ qua mọi thông báo
type NopService struct{}

func (NopService) SendMessage(string) error { return nil }

// Event là thông báo thay đổi kho tài sản gửi cho client để làm mới giao diện
type Event struct {
	Type     string   `json:"type"`
	RoomIDs  []string `json:"roomIds,omitempty"`
	AssetIDs []string `json:"assetIds,omitempty"`
	Message  string   `json:"message"`
	At       string   `json:"at"`
}

// EventBuilder giúp tạo Event theo từng bước
type EventBuilder struct {
	event Event
}

func NewEventBuilder(eventType string) *EventBuilder {
	return &EventBuilder{event: Event{Type: eventType}}
}

// WithRoom thêm phòng bị ảnh hưởng, bỏ qua id rỗng và id trùng
func (b *EventBuilder) WithRoom(roomIDs ...string) *EventBuilder {
	for _, id := range roomIDs {
		if id == "" || contains(b.event.RoomIDs, id) {
			continue
		}
		b.event.RoomIDs = append(b.event.RoomIDs, id)
	}
	return b
}

func (b *EventBuilder) WithAssets(assetIDs ...string) *EventBuilder {
	b.event.AssetIDs = append(b.event.AssetIDs, assetIDs...)
	return b
}

func (b *EventBuilder) WithMessage(message string) *EventBuilder {
	b.event.Message = message
	return b
}

// Build trả về chuỗi JSON của event
func (b *EventBuilder) Build() (string, error) {
	b.event.At = time.Now().UTC().Format(time.RFC3339)
	data, err := json.Marshal(b.event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
