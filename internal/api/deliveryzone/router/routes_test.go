// Package router - Test thứ tự đăng ký route và phạm vi auth của domain DeliveryZone.
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

// setupTestApp dựng app với route DeliveryZone thật. Client mongo chưa kết nối
// tới server nào, các test chỉ đi qua middleware và validation trước khi chạm database.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	global.ServerConfig = &config.Configuration{ServiceAPIKey: testServiceKey}
	global.InitValidator()

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:27017"))
	if err != nil {
		t.Fatalf("tạo mongo client lỗi: %v", err)
	}
	coll := client.Database("routes_test").Collection(global.ColNames.DeliveryZones)
	if _, err := global.RegistryCollections.Register(global.ColNames.DeliveryZones, coll); err != nil {
		t.Fatalf("đăng ký collection lỗi: %v", err)
	}

	app := fiber.New()
	if err := apirouter.SetupRoutes(app, Register); err != nil {
		t.Fatalf("đăng ký route lỗi: %v", err)
	}
	return app
}

func TestResolveRoute_KhongYeuCauServiceKey(t *testing.T) {
	app := setupTestApp(t)

	// Không có service key, không có query params: request phải tới được
	// handler và nhận 400 thiếu subDomain thay vì bị auth chặn với 401
	req := httptest.NewRequest(http.MethodGet, "/api/v1/delivery-zone/resolve", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("resolve không có key phải nhận 400 từ validation, nhận được %d", resp.StatusCode)
	}
}

func TestListRoute_YeuCauServiceKey(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/delivery-zone/list/tiembanh", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test lỗi: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("list không có key phải bị chặn với 401, nhận được %d", resp.StatusCode)
	}
}

func TestGenericWriteRoutes_KhongDuocMo(t *testing.T) {
	app := setupTestApp(t)

	// Key hợp lệ để đi qua auth: route ghi generic không tồn tại nên phải 404,
	// mọi thao tác ghi zone buộc đi qua /create và /update/:id
	writes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/delivery-zone/insert-one"},
		{http.MethodPost, "/api/v1/delivery-zone/insert-many"},
		{http.MethodPut, "/api/v1/delivery-zone/update-by-id/000000000000000000000000"},
		{http.MethodDelete, "/api/v1/delivery-zone/delete-by-id/000000000000000000000000"},
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
