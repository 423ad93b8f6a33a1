package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WhatsAppChat là hội thoại giữa một khách hàng và một tenant,
// khóa theo cặp (customerPhone, subDomain).
type WhatsAppChat struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của chat trong MongoDB

	// ===== IDENTIFIERS =====
	CustomerPhone string `json:"customerPhone" bson:"customerPhone"` // Số điện thoại khách hàng
	SubDomain     string `json:"subDomain" bson:"subDomain"`    // Tenant sở hữu chat

	// ===== DISPLAY INFO =====
	CustomerName       string `json:"customerName" bson:"customerName"`                               // Tên khách hàng tại thời điểm nhắn gần nhất
	LastMessagePreview string `json:"lastMessagePreview" bson:"lastMessagePreview"`                   // Preview tin nhắn cuối (đã truncate)
	LastMessageAt      int64  `json:"lastMessageAt" bson:"lastMessageAt"`           // Thời gian tin nhắn cuối

	// ===== COUNTERS =====
	// Cập nhật bằng $inc để không mất update khi hai webhook delivery chạy song song
	MessageCount int64 `json:"messageCount" bson:"messageCount"` // Tổng số tin nhắn trong chat
	UnreadCount  int64 `json:"unreadCount" bson:"unreadCount"`   // Số tin nhắn inbound chưa đọc

	IsActive bool `json:"isActive" bson:"isActive"` // Chat còn hoạt động

	// ===== TIMESTAMPS =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
