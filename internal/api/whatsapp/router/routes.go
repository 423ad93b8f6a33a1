// Package router đăng ký các route thuộc domain WhatsApp.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/middleware"
	apirouter "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/router"
	whatsapphdl "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/whatsapp/handler"
)

// Register đăng ký tất cả route WhatsApp lên v1.
// Route webhook không dùng service key: GET được bảo vệ bằng verify token,
// POST được bảo vệ bằng chữ ký X-Hub-Signature-256.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	webhookHandler, err := whatsapphdl.NewWhatsAppWebhookHandler()
	if err != nil {
		return fmt.Errorf("create whatsapp webhook handler: %w", err)
	}
	chatHandler, err := whatsapphdl.NewWhatsAppChatHandler()
	if err != nil {
		return fmt.Errorf("create whatsapp chat handler: %w", err)
	}

	apirouter.RegisterRouteWithMiddleware(v1, "/whatsapp", "GET", "/webhook", nil, webhookHandler.HandleVerifyWebhook)
	apirouter.RegisterRouteWithMiddleware(v1, "/whatsapp", "POST", "/webhook", nil, webhookHandler.HandleIncomingWebhook)

	authMiddleware := middleware.ServiceAuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/whatsapp", "GET", "/chat/list/:subDomain", []fiber.Handler{authMiddleware}, chatHandler.HandleListChats)
	apirouter.RegisterRouteWithMiddleware(v1, "/whatsapp", "GET", "/customer/list/:subDomain", []fiber.Handler{authMiddleware}, chatHandler.HandleListCustomers)
	apirouter.RegisterRouteWithMiddleware(v1, "/whatsapp", "GET", "/chat/:id/messages", []fiber.Handler{authMiddleware}, chatHandler.HandleListMessages)
	apirouter.RegisterRouteWithMiddleware(v1, "/whatsapp", "PUT", "/chat/:id/mark-read", []fiber.Handler{authMiddleware}, chatHandler.HandleMarkChatRead)
	apirouter.RegisterRouteWithMiddleware(v1, "/whatsapp", "POST", "/send", []fiber.Handler{authMiddleware}, chatHandler.HandleSendTextMessage)
	r.RegisterCRUDRoutes(v1, "/whatsapp/chat", chatHandler, apirouter.ReadOnlyConfig)

	return nil
}
