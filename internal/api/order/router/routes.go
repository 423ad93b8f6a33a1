// Package router đăng ký các route thuộc domain Order.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/middleware"
	orderhdl "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/order/handler"
	apirouter "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/router"
)

// Register đăng ký tất cả route Order lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	orderHandler, err := orderhdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("create order handler: %w", err)
	}

	authMiddleware := middleware.ServiceAuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/order", "GET", "/list/:subDomain", []fiber.Handler{authMiddleware}, orderHandler.HandleListBySubDomain)
	r.RegisterCRUDRoutes(v1, "/order", orderHandler, apirouter.ReadWriteConfig)

	return nil
}
