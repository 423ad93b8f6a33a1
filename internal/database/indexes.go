// Package database - Index bootstrap cho các collection (unique, compound, 2dsphere).
package database

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/global"
)

// CreateIndexes tạo các index cần thiết cho toàn bộ collection.
// Gọi một lần khi khởi động server; index đã tồn tại được bỏ qua.
func CreateIndexes(ctx context.Context, db *mongo.Database) error {
	// businesses: subDomain unique - khóa chính của tenant
	businesses := db.Collection(global.ColNames.Businesses)
	if _, err := businesses.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "subDomain", Value: 1}},
		Options: options.Index().SetName("business_subdomain").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// businesses: phoneNumberIds multikey - lookup resolver theo phone_number_id
	if _, err := businesses.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "phoneNumberIds", Value: 1}},
		Options: options.Index().SetName("business_phone_number_ids").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// businesses: wabaId - lookup resolver theo WABA ID
	if _, err := businesses.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "wabaId", Value: 1}},
		Options: options.Index().SetName("business_waba_id").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// chat_messages: (metaMessageId, subDomain) unique sparse - backstop dedup cho webhook redelivery
	chatMessages := db.Collection(global.ColNames.ChatMessages)
	if _, err := chatMessages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "metaMessageId", Value: 1},
			{Key: "subDomain", Value: 1},
		},
		Options: options.Index().SetName("chat_message_meta_id_subdomain").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// chat_messages: (subDomain, customerPhone, createdAt) - liệt kê tin nhắn theo hội thoại
	if _, err := chatMessages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "subDomain", Value: 1},
			{Key: "customerPhone", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("chat_message_conversation"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// whatsapp_chats: (customerPhone, subDomain) unique - khóa hội thoại
	chats := db.Collection(global.ColNames.WhatsAppChats)
	if _, err := chats.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "customerPhone", Value: 1},
			{Key: "subDomain", Value: 1},
		},
		Options: options.Index().SetName("chat_phone_subdomain").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// whatsapp_customers: (phone, subDomain) unique - khóa khách hàng theo tenant
	customers := db.Collection(global.ColNames.WhatsAppCustomers)
	if _, err := customers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "phone", Value: 1},
			{Key: "subDomain", Value: 1},
		},
		Options: options.Index().SetName("customer_phone_subdomain").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// delivery_zones: (subDomain, localId, isActive) - liệt kê zone theo cửa hàng
	zones := db.Collection(global.ColNames.DeliveryZones)
	if _, err := zones.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "subDomain", Value: 1},
			{Key: "localId", Value: 1},
			{Key: "isActive", Value: 1},
		},
		Options: options.Index().SetName("zone_subdomain_local"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// delivery_zones: geometry 2dsphere - truy vấn không gian trên polygon/center
	// Yêu cầu coordinates lưu theo thứ tự GeoJSON [lng, lat].
	if _, err := zones.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "geometry", Value: "2dsphere"}},
		Options: options.Index().SetName("zone_geometry_2dsphere").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// webhook_logs: receivedAt TTL 30 ngày - log webhook tự hết hạn
	webhookLogs := db.Collection(global.ColNames.WebhookLogs)
	if _, err := webhookLogs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "receivedAtTime", Value: 1}},
		Options: options.Index().SetName("webhook_log_ttl").SetExpireAfterSeconds(30 * 24 * 3600),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// orders: (subDomain, createdAt) - liệt kê đơn hàng theo tenant
	orders := db.Collection(global.ColNames.Orders)
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "subDomain", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("order_subdomain_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// working_hours: (subDomain, localId) unique - một document schedule cho mỗi cửa hàng
	workingHours := db.Collection(global.ColNames.WorkingHours)
	if _, err := workingHours.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "subDomain", Value: 1},
			{Key: "localId", Value: 1},
		},
		Options: options.Index().SetName("working_hours_subdomain_local").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

// isIndexExistsError kiểm tra lỗi index đã tồn tại (IndexOptionsConflict / IndexKeySpecsConflict)
func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "IndexOptionsConflict") ||
		strings.Contains(msg, "IndexKeySpecsConflict") ||
		strings.Contains(msg, "already exists")
}
