package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem một dòng hàng trong đơn
type OrderItem struct {
	Name     string  `json:"name" bson:"name"`                         // Tên món
	Quantity int64   `json:"quantity" bson:"quantity"`                 // Số lượng
	Price    float64 `json:"price" bson:"price"`                       // Đơn giá
	Notes    string  `json:"notes,omitempty" bson:"notes,omitempty"` // Ghi chú cho món
}

// Order là một đơn hàng của tenant. Hệ thống chỉ lưu trữ đơn thuần,
// không áp lifecycle rule lên trường status.
type Order struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID trong MongoDB

	// ===== IDENTIFIERS =====
	SubDomain     string `json:"subDomain" bson:"subDomain"` // Tenant sở hữu đơn
	LocalID       string `json:"localId" bson:"localId"`     // Điểm bán nhận đơn
	CustomerPhone string `json:"customerPhone" bson:"customerPhone"` // Số điện thoại khách đặt

	// ===== CONTENT =====
	Items           []OrderItem        `json:"items" bson:"items"`                                                   // Các dòng hàng
	DeliveryAddress string             `json:"deliveryAddress,omitempty" bson:"deliveryAddress,omitempty"`           // Địa chỉ giao
	DeliveryZoneID  primitive.ObjectID `json:"deliveryZoneId,omitempty" bson:"deliveryZoneId,omitempty"`             // Zone áp dụng khi tạo đơn
	DeliveryCost    float64            `json:"deliveryCost" bson:"deliveryCost"`                                     // Phí giao tại thời điểm đặt
	Subtotal        float64            `json:"subtotal" bson:"subtotal"`                                             // Tổng tiền hàng
	Total           float64            `json:"total" bson:"total"`                                                   // Tổng thanh toán
	PaymentMethod   string             `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`               // Phương thức thanh toán
	Status          string             `json:"status" bson:"status"`                                // Trạng thái tự do, không có lifecycle rule
	Notes           string             `json:"notes,omitempty" bson:"notes,omitempty"`                               // Ghi chú của khách

	// ===== TIMESTAMPS =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
