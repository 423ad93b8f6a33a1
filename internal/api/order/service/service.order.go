// Package ordersvc chứa service cho domain Order.
package ordersvc

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/base/models"
	basesvc "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/base/service"
	ordermodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/order/models"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/common"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/global"
)

// OrderService là cấu trúc chứa các phương thức liên quan đến đơn hàng
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[ordermodels.Order]
}

// NewOrderService tạo mới OrderService
func NewOrderService() (*OrderService, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}
	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[ordermodels.Order](coll),
	}, nil
}

// FindBySubDomain trả về đơn hàng của một tenant, mới nhất trước,
// lọc thêm theo localId và status nếu có
func (s *OrderService) FindBySubDomain(ctx context.Context, subDomain, localID, status string, page, limit int64) (*basemodels.PaginateResult[ordermodels.Order], error) {
	filter := bson.M{"subDomain": strings.ToLower(strings.TrimSpace(subDomain))}
	if localID != "" {
		filter["localId"] = localID
	}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}
