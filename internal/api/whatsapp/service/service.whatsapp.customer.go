package whatsappsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/base/models"
	basesvc "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/base/service"
	whatsappmodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/whatsapp/models"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/common"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/global"
)

// WhatsAppCustomerService là cấu trúc chứa các phương thức liên quan đến khách hàng WhatsApp
type WhatsAppCustomerService struct {
	*basesvc.BaseServiceMongoImpl[whatsappmodels.WhatsAppCustomer]
}

// NewWhatsAppCustomerService tạo mới WhatsAppCustomerService
func NewWhatsAppCustomerService() (*WhatsAppCustomerService, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.WhatsAppCustomers)
	if !exist {
		return nil, fmt.Errorf("failed to get whatsapp_customers collection: %v", common.ErrNotFound)
	}
	return &WhatsAppCustomerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[whatsappmodels.WhatsAppCustomer](coll),
	}, nil
}

// UpsertFromInbound tạo hoặc cập nhật customer khi nhận tin nhắn inbound,
// khóa theo cặp (phone, subDomain). Tên profile được cập nhật nếu Meta gửi kèm.
func (s *WhatsAppCustomerService) UpsertFromInbound(ctx context.Context, phone, name, subDomain string) (whatsappmodels.WhatsAppCustomer, error) {
	set := map[string]interface{}{
		"lastSeenAt": time.Now().UnixMilli(),
	}
	if name != "" {
		set["name"] = name
	}
	return s.Upsert(ctx, bson.M{"phone": phone, "subDomain": subDomain}, &basesvc.UpdateData{
		Set: set,
		SetOnInsert: map[string]interface{}{
			"phone":     phone,
			"subDomain": subDomain,
		},
	})
}

// FindCustomersBySubDomain trả về danh sách khách hàng của một tenant, hoạt động gần nhất trước
func (s *WhatsAppCustomerService) FindCustomersBySubDomain(ctx context.Context, subDomain string, page, limit int64) (*basemodels.PaginateResult[whatsappmodels.WhatsAppCustomer], error) {
	opts := options.Find().SetSort(bson.D{{Key: "lastSeenAt", Value: -1}})
	return s.FindWithPagination(ctx, bson.M{"subDomain": subDomain}, page, limit, opts)
}
