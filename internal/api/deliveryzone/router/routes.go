// Package router đăng ký các route thuộc domain DeliveryZone.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	zonehdl "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/deliveryzone/handler"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/middleware"
	apirouter "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/router"
)

// Register đăng ký tất cả route DeliveryZone lên v1.
// Route /resolve không yêu cầu service key vì storefront gọi trực tiếp khi khách nhập địa chỉ.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	zoneHandler, err := zonehdl.NewDeliveryZoneHandler()
	if err != nil {
		return fmt.Errorf("create delivery zone handler: %w", err)
	}

	// Route public phải đăng ký TRƯỚC các route có auth: middleware auth được
	// gắn bằng group.Use trên prefix /delivery-zone nên sẽ chặn mọi route
	// đăng ký sau nó, kể cả route không truyền middleware
	apirouter.RegisterRouteWithMiddleware(v1, "/delivery-zone", "GET", "/resolve", nil, zoneHandler.HandleResolveZone)

	authMiddleware := middleware.ServiceAuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/delivery-zone", "POST", "/create", []fiber.Handler{authMiddleware}, zoneHandler.HandleCreateZone)
	apirouter.RegisterRouteWithMiddleware(v1, "/delivery-zone", "PUT", "/update/:id", []fiber.Handler{authMiddleware}, zoneHandler.HandleUpdateZone)
	apirouter.RegisterRouteWithMiddleware(v1, "/delivery-zone", "GET", "/list/:subDomain", []fiber.Handler{authMiddleware}, zoneHandler.HandleListZones)
	apirouter.RegisterRouteWithMiddleware(v1, "/delivery-zone", "DELETE", "/soft-delete/:id", []fiber.Handler{authMiddleware}, zoneHandler.HandleSoftDeleteZone)

	// Chỉ mở generic read: ghi phải đi qua /create và /update/:id
	// để zone luôn qua validate + normalize tọa độ + dựng geometry
	r.RegisterCRUDRoutes(v1, "/delivery-zone", zoneHandler, apirouter.ReadOnlyConfig)

	return nil
}
