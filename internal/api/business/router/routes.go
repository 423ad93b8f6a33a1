// Package router đăng ký các route thuộc domain Business (tenant).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	businesshdl "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/business/handler"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/middleware"
	apirouter "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/router"
)

// Register đăng ký tất cả route Business lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	businessHandler, err := businesshdl.NewBusinessHandler()
	if err != nil {
		return fmt.Errorf("create business handler: %w", err)
	}

	authMiddleware := middleware.ServiceAuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/business", "POST", "/create", []fiber.Handler{authMiddleware}, businessHandler.HandleCreateBusiness)
	apirouter.RegisterRouteWithMiddleware(v1, "/business", "GET", "/find-by-subdomain/:subDomain", []fiber.Handler{authMiddleware}, businessHandler.HandleFindBySubdomain)
	apirouter.RegisterRouteWithMiddleware(v1, "/business", "PUT", "/set-access-token", []fiber.Handler{authMiddleware}, businessHandler.HandleSetAccessToken)
	// Chỉ mở generic read: ghi phải đi qua /create và /set-access-token
	// để giữ normalization subdomain và mã hóa access token
	r.RegisterCRUDRoutes(v1, "/business", businessHandler, apirouter.ReadOnlyConfig)

	return nil
}
