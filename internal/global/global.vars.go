package global

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/config"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/registry"
)

// CollectionName chứa tên các collection trong MongoDB
type CollectionName struct {
	Businesses        string // Tên collection cho tenant (business)
	DeliveryZones     string // Tên collection cho khu vực giao hàng
	WhatsAppCustomers string // Tên collection cho khách hàng WhatsApp
	WhatsAppChats     string // Tên collection cho hội thoại WhatsApp
	ChatMessages      string // Tên collection cho tin nhắn
	WebhookLogs       string // Tên collection cho webhook log
	WorkingHours      string // Tên collection cho giờ hoạt động
	Orders            string // Tên collection cho đơn hàng
}

// Các biến toàn cục
var MongoDB_Session *mongo.Client      // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration // Cấu hình của server

// ColNames chứa tên các collection trong database
var ColNames = CollectionName{
	Businesses:        "businesses",
	DeliveryZones:     "delivery_zones",
	WhatsAppCustomers: "whatsapp_customers",
	WhatsAppChats:     "whatsapp_chats",
	ChatMessages:      "chat_messages",
	WebhookLogs:       "webhook_logs",
	WorkingHours:      "working_hours",
	Orders:            "orders",
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
