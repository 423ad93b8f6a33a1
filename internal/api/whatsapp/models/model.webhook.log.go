package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WebhookLog lưu lại mọi webhook delivery nhận từ Meta để debug và replay thủ công
type WebhookLog struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của log

	// ===== SOURCE INFO =====
	Source        string `json:"source" bson:"source"`                                   // Nguồn webhook, hiện chỉ "meta_whatsapp"
	ObjectType    string `json:"objectType" bson:"objectType"`                           // Giá trị trường object của payload
	WabaID        string `json:"wabaId,omitempty" bson:"wabaId,omitempty"`               // WABA ID trích từ entry đầu tiên
	PhoneNumberID string `json:"phoneNumberId,omitempty" bson:"phoneNumberId,omitempty"` // Phone number ID trích từ metadata
	SubDomain     string `json:"subDomain,omitempty" bson:"subDomain,omitempty"`         // Tenant (nếu resolve được)

	// ===== REQUEST INFO =====
	RequestBody map[string]interface{} `json:"requestBody" bson:"requestBody"`             // Payload đã parse
	RawBody     string                 `json:"rawBody,omitempty" bson:"rawBody,omitempty"` // Raw body string (để debug)

	// ===== PROCESSING INFO =====
	Processed    bool   `json:"processed" bson:"processed"`                           // Đã xử lý thành công chưa
	ProcessError string `json:"processError,omitempty" bson:"processError,omitempty"` // Lỗi nếu có trong quá trình xử lý
	ProcessedAt  int64  `json:"processedAt,omitempty" bson:"processedAt,omitempty"`   // Thời gian xử lý xong

	// ===== METADATA =====
	IPAddress string `json:"ipAddress,omitempty" bson:"ipAddress,omitempty"` // IP address của request

	// ===== TIMESTAMPS =====
	ReceivedAt     int64     `json:"receivedAt" bson:"receivedAt"`          // Thời gian nhận webhook (Unix milliseconds)
	ReceivedAtTime time.Time `json:"receivedAtTime" bson:"receivedAtTime"`  // Bản BSON date của receivedAt, phục vụ TTL index
	CreatedAt      int64     `json:"createdAt" bson:"createdAt"`            // Thời gian tạo log
	UpdatedAt      int64     `json:"updatedAt" bson:"updatedAt"`            // Thời gian cập nhật log
}
