package whatsappsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/base/models"
	basesvc "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/base/service"
	whatsappmodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/whatsapp/models"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/common"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/global"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/utility"
)

// Độ dài tối đa của preview tin nhắn cuối trong danh sách chat
const lastMessagePreviewLength = 120

// WhatsAppChatService là cấu trúc chứa các phương thức liên quan đến hội thoại WhatsApp
type WhatsAppChatService struct {
	*basesvc.BaseServiceMongoImpl[whatsappmodels.WhatsAppChat]
}

// NewWhatsAppChatService tạo mới WhatsAppChatService
func NewWhatsAppChatService() (*WhatsAppChatService, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.WhatsAppChats)
	if !exist {
		return nil, fmt.Errorf("failed to get whatsapp_chats collection: %v", common.ErrNotFound)
	}
	return &WhatsAppChatService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[whatsappmodels.WhatsAppChat](coll),
	}, nil
}

// FindOrCreateChat tìm hoặc tạo chat theo cặp (customerPhone, subDomain)
func (s *WhatsAppChatService) FindOrCreateChat(ctx context.Context, customerPhone, customerName, subDomain string) (whatsappmodels.WhatsAppChat, error) {
	set := map[string]interface{}{
		"isActive": true,
	}
	if customerName != "" {
		set["customerName"] = customerName
	}
	return s.Upsert(ctx, bson.M{"customerPhone": customerPhone, "subDomain": subDomain}, &basesvc.UpdateData{
		Set: set,
		SetOnInsert: map[string]interface{}{
			"customerPhone": customerPhone,
			"subDomain":     subDomain,
			"messageCount":  int64(0),
			"unreadCount":   int64(0),
		},
	})
}

// RecordMessage cập nhật preview và counter của chat sau khi có tin nhắn mới.
// Counter tăng bằng $inc để không mất update khi nhiều delivery chạy song song.
// Tin nhắn inbound tăng thêm unreadCount.
func (s *WhatsAppChatService) RecordMessage(ctx context.Context, chatID primitive.ObjectID, preview string, timestamp int64, inbound bool) error {
	inc := map[string]interface{}{"messageCount": int64(1)}
	if inbound {
		inc["unreadCount"] = int64(1)
	}
	_, err := s.UpdateById(ctx, chatID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"lastMessagePreview": utility.TruncateString(preview, lastMessagePreviewLength),
			"lastMessageAt":      timestamp,
		},
		Inc: inc,
	})
	return err
}

// MarkChatRead đưa unreadCount của chat về 0
func (s *WhatsAppChatService) MarkChatRead(ctx context.Context, chatID primitive.ObjectID) (whatsappmodels.WhatsAppChat, error) {
	return s.UpdateById(ctx, chatID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"unreadCount": int64(0),
		},
	})
}

// FindChatsBySubDomain trả về danh sách chat của một tenant, tin nhắn mới nhất trước
func (s *WhatsAppChatService) FindChatsBySubDomain(ctx context.Context, subDomain string, page, limit int64) (*basemodels.PaginateResult[whatsappmodels.WhatsAppChat], error) {
	opts := options.Find().SetSort(bson.D{{Key: "lastMessageAt", Value: -1}})
	return s.FindWithPagination(ctx, bson.M{"subDomain": subDomain, "isActive": true}, page, limit, opts)
}
