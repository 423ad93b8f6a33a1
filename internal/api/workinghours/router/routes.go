// Package router đăng ký các route thuộc domain WorkingHours.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/middleware"
	apirouter "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/router"
	workinghourshdl "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/workinghours/handler"
)

// Register đăng ký tất cả route WorkingHours lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	workingHoursHandler, err := workinghourshdl.NewWorkingHoursHandler()
	if err != nil {
		return fmt.Errorf("create working hours handler: %w", err)
	}

	authMiddleware := middleware.ServiceAuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/working-hours", "GET", "/find-by-location/:subDomain", []fiber.Handler{authMiddleware}, workingHoursHandler.HandleFindByLocation)
	r.RegisterCRUDRoutes(v1, "/working-hours", workingHoursHandler, apirouter.ReadWriteConfig)

	return nil
}
