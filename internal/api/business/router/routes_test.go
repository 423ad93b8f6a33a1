// Package router - Test phạm vi route ghi của domain Business.
package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/config"
	apirouter "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/router"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/global"
)

const testServiceKey = "test-service-key"

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	global.ServerConfig = &config.Configuration{ServiceAPIKey: testServiceKey}
	global.InitValidator()

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:27017"))
	if err != nil {
		t.Fatalf("tạo mongo client lỗi: %v", err)
	}
	coll := client.Database("routes_test").Collection(global.ColNames.Businesses)
	if _, err := global.RegistryCollections.Register(global.ColNames.Businesses, coll); err != nil {
		t.Fatalf("đăng ký collection lỗi: %v", err)
	}

	app := fiber.New()
	if err := apirouter.SetupRoutes(app, Register); err != nil {
		t.Fatalf("đăng ký route lỗi: %v", err)
	}
	return app
}

func TestBusinessGenericWriteRoutes_KhongDuocMo(t *testing.T) {
	app := setupTestApp(t)

	// Key hợp lệ để đi qua auth: route ghi generic phải 404, mọi thao tác ghi
	// business buộc đi qua /create và /set-access-token để giữ normalization
	// subdomain và mã hóa access token
	writes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/business/insert-one"},
		{http.MethodPost, "/api/v1/business/upsert-one"},
		{http.MethodPut, "/api/v1/business/update-one"},
		{http.MethodDelete, "/api/v1/business/delete-by-id/000000000000000000000000"},
	}
	for _, w := range writes {
		req := httptest.NewRequest(w.method, w.path, nil)
		req.Header.Set("X-Service-Key", testServiceKey)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test lỗi: %v", err)
		}
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("%s %s phải 404 vì route ghi generic đã đóng, nhận được %d", w.method, w.path, resp.StatusCode)
		}
	}
}

func TestBusinessRoutes_YeuCauServiceKey(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/business/find-by-subdomain/tiembanh", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("route business không có key phải bị chặn với 401, nhận được %d", resp.StatusCode)
	}
}
