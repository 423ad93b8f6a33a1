package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BusinessLocation đại diện cho một điểm bán (cửa hàng vật lý) của tenant.
// Mỗi location có localId riêng, dùng làm khóa phụ cho delivery zone và working hours.
type BusinessLocation struct {
	LocalID  string `json:"localId" bson:"localId"`   // Mã điểm bán trong phạm vi tenant
	Name     string `json:"name" bson:"name"`         // Tên điểm bán
	Address  string `json:"address" bson:"address"`   // Địa chỉ
	Phone    string `json:"phone" bson:"phone"`       // Số điện thoại liên hệ
	IsActive bool   `json:"isActive" bson:"isActive"` // Điểm bán còn hoạt động hay không
}

// Business đại diện cho một tenant trong hệ thống.
// Subdomain là khóa tenant chính; WABA ID và danh sách phone-number ID là khóa tra cứu phụ
// dùng để định tuyến webhook WhatsApp về đúng tenant.
type Business struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`              // ID của business
	Name      string             `json:"name" bson:"name"`                     // Tên hiển thị
	SubDomain string             `json:"subDomain" bson:"subDomain"`           // Subdomain (unique, lowercase)
	WabaID    string             `json:"wabaId" bson:"wabaId,omitempty"`       // WhatsApp Business Account ID
	PhoneNumberIDs []string      `json:"phoneNumberIds" bson:"phoneNumberIds"` // Danh sách WhatsApp phone-number ID

	// Access token của Meta Graph API, mã hóa AES-GCM trước khi lưu.
	// Không bao giờ trả token đã giải mã qua JSON.
	EncryptedAccessToken string `json:"-" bson:"encryptedAccessToken,omitempty"`
	TokenExpiresAt       int64  `json:"tokenExpiresAt" bson:"tokenExpiresAt,omitempty"` // Thời điểm token hết hạn (millisecond)

	Locations []BusinessLocation `json:"locations" bson:"locations"` // Các điểm bán của tenant

	WhatsAppEnabled bool `json:"whatsappEnabled" bson:"whatsappEnabled"` // Bật/tắt kênh WhatsApp
	IsActive        bool `json:"isActive" bson:"isActive"`               // Tenant còn hoạt động hay không

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}

// HasPhoneNumberID kiểm tra business có sở hữu phone-number ID hay không
func (b *Business) HasPhoneNumberID(phoneNumberID string) bool {
	for _, id := range b.PhoneNumberIDs {
		if id == phoneNumberID {
			return true
		}
	}
	return false
}

// FindLocation tìm location theo localId, trả về nil nếu không có
func (b *Business) FindLocation(localID string) *BusinessLocation {
	for i := range b.Locations {
		if b.Locations[i].LocalID == localID {
			return &b.Locations[i]
		}
	}
	return nil
}
