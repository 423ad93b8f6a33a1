package whatsappsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/base/models"
	basesvc "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/base/service"
	whatsappmodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/whatsapp/models"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/common"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/global"
)

// ChatMessageService là cấu trúc chứa các phương thức liên quan đến tin nhắn chat
type ChatMessageService struct {
	*basesvc.BaseServiceMongoImpl[whatsappmodels.ChatMessage]
}

// NewChatMessageService tạo mới ChatMessageService
func NewChatMessageService() (*ChatMessageService, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.ChatMessages)
	if !exist {
		return nil, fmt.Errorf("failed to get chat_messages collection: %v", common.ErrNotFound)
	}
	return &ChatMessageService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[whatsappmodels.ChatMessage](coll),
	}, nil
}

// RecordInboundMessage lưu một tin nhắn inbound với dedup theo (metaMessageId, subDomain).
// Meta giao webhook at-least-once nên delivery lặp lại phải là no-op:
// upsert với $setOnInsert chỉ ghi khi chưa có document trùng khóa.
// Trả về inserted = false khi tin nhắn đã tồn tại.
func (s *ChatMessageService) RecordInboundMessage(ctx context.Context, message whatsappmodels.ChatMessage) (inserted bool, err error) {
	filter := inboundDedupFilter(message.MetaMessageID, message.SubDomain)
	update := bson.M{
		"$setOnInsert": inboundInsertFields(message, time.Now().UnixMilli()),
	}

	result, err := s.Collection().UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, common.ConvertMongoError(err)
	}
	return result.UpsertedCount > 0, nil
}

// inboundDedupFilter là khóa dedup của tin nhắn inbound: cùng message ID
// của Meta trong cùng tenant chỉ được lưu một lần
func inboundDedupFilter(metaMessageID, subDomain string) bson.M {
	return bson.M{
		"metaMessageId": metaMessageID,
		"subDomain":     subDomain,
	}
}

// inboundInsertFields dựng document ghi khi chưa có bản ghi trùng khóa,
// luôn ép direction inbound và status delivered
func inboundInsertFields(message whatsappmodels.ChatMessage, now int64) bson.M {
	return bson.M{
		"metaMessageId": message.MetaMessageID,
		"chatId":        message.ChatID,
		"customerPhone": message.CustomerPhone,
		"subDomain":     message.SubDomain,
		"direction":     whatsappmodels.MessageDirectionInbound,
		"status":        whatsappmodels.MessageStatusDelivered,
		"content":       message.Content,
		"timestamp":     message.Timestamp,
		"createdAt":     now,
		"updatedAt":     now,
	}
}

// RecordOutboundMessage lưu một tin nhắn outbound vừa gửi qua Graph API
func (s *ChatMessageService) RecordOutboundMessage(ctx context.Context, message whatsappmodels.ChatMessage) (whatsappmodels.ChatMessage, error) {
	message.Direction = whatsappmodels.MessageDirectionOutbound
	if message.Status == "" {
		message.Status = whatsappmodels.MessageStatusSent
	}
	if message.Timestamp == 0 {
		message.Timestamp = time.Now().UnixMilli()
	}
	return s.InsertOne(ctx, message)
}

// UpdateOutboundStatus cập nhật trạng thái của đúng tin nhắn outbound
// khớp (metaMessageId, subDomain). Tin nhắn inbound không bao giờ bị chạm tới.
// Trả về matched = false khi không có tin nhắn nào khớp.
func (s *ChatMessageService) UpdateOutboundStatus(ctx context.Context, metaMessageID, subDomain, status string) (matched bool, err error) {
	filter := outboundStatusFilter(metaMessageID, subDomain)
	update := bson.M{
		"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now().UnixMilli(),
		},
	}

	result, err := s.Collection().UpdateOne(ctx, filter, update, options.Update())
	if err != nil {
		return false, common.ConvertMongoError(err)
	}
	return result.MatchedCount > 0, nil
}

// outboundStatusFilter chỉ khớp tin nhắn outbound của đúng tenant:
// status update của Meta không bao giờ được chạm tới tin nhắn inbound
func outboundStatusFilter(metaMessageID, subDomain string) bson.M {
	return bson.M{
		"metaMessageId": metaMessageID,
		"subDomain":     subDomain,
		"direction":     whatsappmodels.MessageDirectionOutbound,
	}
}

// FindMessagesByChat trả về tin nhắn của một chat, mới nhất trước
func (s *ChatMessageService) FindMessagesByChat(ctx context.Context, chatID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[whatsappmodels.ChatMessage], error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	return s.FindWithPagination(ctx, bson.M{"chatId": chatID}, page, limit, opts)
}
