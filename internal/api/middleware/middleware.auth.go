package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/common"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/global"
)

// ServiceAuthMiddleware xác thực các request quản trị bằng service API key.
// Key được truyền qua header X-Service-Key hoặc Authorization: Bearer <key>.
// So sánh constant-time để tránh timing attack.
func ServiceAuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		configuredKey := ""
		if global.ServerConfig != nil {
			configuredKey = global.ServerConfig.ServiceAPIKey
		}

		// Chưa cấu hình SERVICE_API_KEY thì chặn toàn bộ request quản trị
		if configuredKey == "" {
			logrus.Warn("🔒 [AUTH] SERVICE_API_KEY chưa được cấu hình, từ chối request")
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuth,
				"Dịch vụ chưa được cấu hình xác thực",
				common.StatusServiceUnavailable,
				nil,
			))
			return nil
		}

		providedKey := extractServiceKey(c)
		if providedKey == "" {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		if subtle.ConstantTimeCompare([]byte(providedKey), []byte(configuredKey)) != 1 {
			logrus.WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
				"ip":     c.IP(),
			}).Warn("🔒 [AUTH] Service API key không hợp lệ")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		return c.Next()
	}
}

// extractServiceKey lấy service key từ header X-Service-Key hoặc Authorization Bearer
func extractServiceKey(c fiber.Ctx) string {
	if key := c.Get("X-Service-Key"); key != "" {
		return key
	}
	auth := c.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
