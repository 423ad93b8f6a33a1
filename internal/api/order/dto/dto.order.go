// Package orderdto chứa các DTO cho domain Order.
package orderdto

import (
	ordermodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/order/models"
)

// OrderCreateInput dữ liệu đầu vào khi tạo đơn hàng
type OrderCreateInput struct {
	SubDomain       string                  `json:"subDomain" bson:"subDomain" validate:"required,subdomain"`
	LocalID         string                  `json:"localId" bson:"localId" validate:"required"`
	CustomerPhone   string                  `json:"customerPhone" bson:"customerPhone" validate:"required,phone_digits"`
	Items           []ordermodels.OrderItem `json:"items" bson:"items" validate:"required,min=1,dive"`
	DeliveryAddress string                  `json:"deliveryAddress" bson:"deliveryAddress"`
	DeliveryCost    float64                 `json:"deliveryCost" bson:"deliveryCost" validate:"gte=0"`
	Subtotal        float64                 `json:"subtotal" bson:"subtotal" validate:"gte=0"`
	Total           float64                 `json:"total" bson:"total" validate:"gte=0"`
	PaymentMethod   string                  `json:"paymentMethod" bson:"paymentMethod"`
	Status          string                  `json:"status" bson:"status"`
	Notes           string                  `json:"notes" bson:"notes"`
}

// OrderUpdateInput dữ liệu đầu vào khi cập nhật đơn hàng
type OrderUpdateInput struct {
	Items           []ordermodels.OrderItem `json:"items" bson:"items,omitempty"`
	DeliveryAddress string                  `json:"deliveryAddress" bson:"deliveryAddress,omitempty"`
	DeliveryCost    *float64                `json:"deliveryCost" bson:"deliveryCost,omitempty"`
	Subtotal        *float64                `json:"subtotal" bson:"subtotal,omitempty"`
	Total           *float64                `json:"total" bson:"total,omitempty"`
	PaymentMethod   string                  `json:"paymentMethod" bson:"paymentMethod,omitempty"`
	Status          string                  `json:"status" bson:"status,omitempty"`
	Notes           string                  `json:"notes" bson:"notes,omitempty"`
}
