package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WhatsAppCustomer lưu thông tin khách hàng WhatsApp của một tenant.
// Được tạo/cập nhật tự động khi xử lý tin nhắn inbound.
type WhatsAppCustomer struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của customer trong MongoDB

	// ===== IDENTIFIERS =====
	Phone     string `json:"phone" bson:"phone"`              // Số điện thoại WhatsApp (wa_id từ Meta)
	SubDomain string `json:"subDomain" bson:"subDomain"` // Tenant sở hữu customer

	// ===== BASIC INFO =====
	Name string `json:"name" bson:"name"` // Tên profile WhatsApp

	// ===== METADATA =====
	LastSeenAt int64 `json:"lastSeenAt" bson:"lastSeenAt"` // Thời gian nhận tin nhắn gần nhất
	CreatedAt  int64 `json:"createdAt" bson:"createdAt"`   // Thời gian tạo
	UpdatedAt  int64 `json:"updatedAt" bson:"updatedAt"`   // Thời gian cập nhật
}
