package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Hướng của tin nhắn
const (
	MessageDirectionInbound  = "inbound"  // Khách hàng gửi vào
	MessageDirectionOutbound = "outbound" // Hệ thống gửi ra qua Graph API
)

// Trạng thái nội bộ của tin nhắn
const (
	MessageStatusPending   = "pending"
	MessageStatusSent      = "sent"
	MessageStatusDelivered = "delivered"
	MessageStatusRead      = "read"
	MessageStatusFailed    = "failed"
)

// MapMetaStatus ánh xạ status enum của Meta về status nội bộ.
// Giá trị không nhận diện được mặc định về pending.
func MapMetaStatus(metaStatus string) string {
	switch metaStatus {
	case "sent":
		return MessageStatusSent
	case "delivered":
		return MessageStatusDelivered
	case "read":
		return MessageStatusRead
	case "failed":
		return MessageStatusFailed
	default:
		return MessageStatusPending
	}
}

// TextContent nội dung tin nhắn văn bản
type TextContent struct {
	Body string `json:"body" bson:"body"`
}

// MediaContent nội dung media (image, audio, video, document)
type MediaContent struct {
	MediaID  string `json:"mediaId" bson:"mediaId"`                         // Media ID phía Meta, dùng để tải file
	MimeType string `json:"mimeType,omitempty" bson:"mimeType,omitempty"`   // MIME type
	SHA256   string `json:"sha256,omitempty" bson:"sha256,omitempty"`       // Checksum phía Meta
	Caption  string `json:"caption,omitempty" bson:"caption,omitempty"`     // Caption đính kèm
	Filename string `json:"filename,omitempty" bson:"filename,omitempty"`   // Tên file (document)
}

// LocationContent nội dung chia sẻ vị trí
type LocationContent struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
	Name      string  `json:"name,omitempty" bson:"name,omitempty"`
	Address   string  `json:"address,omitempty" bson:"address,omitempty"`
}

// ContactContent một danh thiếp được chia sẻ
type ContactContent struct {
	Name   string   `json:"name" bson:"name"`
	Phones []string `json:"phones,omitempty" bson:"phones,omitempty"`
}

// InteractiveContent phản hồi từ button/list reply
type InteractiveContent struct {
	Type  string `json:"type" bson:"type"` // button_reply | list_reply
	ReplyID    string `json:"replyId" bson:"replyId"`       // ID của lựa chọn
	ReplyTitle string `json:"replyTitle" bson:"replyTitle"` // Nhãn hiển thị của lựa chọn
}

// TemplateContent tin nhắn template (outbound hoặc echo)
type TemplateContent struct {
	Name     string `json:"name" bson:"name"`
	Language string `json:"language,omitempty" bson:"language,omitempty"`
}

// MessageContent là envelope nội dung thống nhất cho mọi loại tin nhắn.
// Type là discriminator; đúng một nhánh con khác nil tương ứng với Type.
// Loại không nhận diện được rơi vào Type = "unknown" với Raw giữ payload gốc.
type MessageContent struct {
	Type        string                 `json:"type" bson:"type"`
	Text        *TextContent           `json:"text,omitempty" bson:"text,omitempty"`
	Media       *MediaContent          `json:"media,omitempty" bson:"media,omitempty"`
	Location    *LocationContent       `json:"location,omitempty" bson:"location,omitempty"`
	Contacts    []ContactContent       `json:"contacts,omitempty" bson:"contacts,omitempty"`
	Interactive *InteractiveContent    `json:"interactive,omitempty" bson:"interactive,omitempty"`
	Template    *TemplateContent       `json:"template,omitempty" bson:"template,omitempty"`
	Raw         map[string]interface{} `json:"raw,omitempty" bson:"raw,omitempty"`
}

// ChatMessage là một tin nhắn trong hội thoại WhatsApp.
// Cặp (metaMessageId, subDomain) là khóa dedup cho inbound message
// vì Meta giao webhook theo cơ chế at-least-once.
type ChatMessage struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của message trong MongoDB

	// ===== IDENTIFIERS =====
	MetaMessageID string             `json:"metaMessageId" bson:"metaMessageId"` // Message ID phía Meta (wamid.*)
	ChatID        primitive.ObjectID `json:"chatId" bson:"chatId"`           // Chat chứa tin nhắn
	CustomerPhone string             `json:"customerPhone" bson:"customerPhone"`              // Số điện thoại khách hàng
	SubDomain     string             `json:"subDomain" bson:"subDomain"`    // Tenant sở hữu tin nhắn

	// ===== CONTENT =====
	Direction string         `json:"direction" bson:"direction"` // inbound | outbound
	Status    string         `json:"status" bson:"status"`                        // pending | sent | delivered | read | failed
	Content   MessageContent `json:"content" bson:"content"`                      // Envelope nội dung theo loại

	// ===== TIMESTAMPS =====
	Timestamp int64 `json:"timestamp" bson:"timestamp"` // Thời gian phía Meta (Unix milliseconds)
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`                   // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`                   // Thời gian cập nhật
}
