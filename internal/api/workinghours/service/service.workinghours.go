// Package workinghourssvc chứa service cho domain WorkingHours.
package workinghourssvc

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/base/service"
	workinghoursmodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/workinghours/models"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/common"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/global"
)

// WorkingHoursService là cấu trúc chứa các phương thức liên quan đến lịch làm việc
type WorkingHoursService struct {
	*basesvc.BaseServiceMongoImpl[workinghoursmodels.WorkingHours]
}

// NewWorkingHoursService tạo mới WorkingHoursService
func NewWorkingHoursService() (*WorkingHoursService, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.WorkingHours)
	if !exist {
		return nil, fmt.Errorf("failed to get working_hours collection: %v", common.ErrNotFound)
	}
	return &WorkingHoursService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[workinghoursmodels.WorkingHours](coll),
	}, nil
}

// FindByLocation trả về lịch làm việc đang hiệu lực của một điểm bán
func (s *WorkingHoursService) FindByLocation(ctx context.Context, subDomain, localID string) (workinghoursmodels.WorkingHours, error) {
	return s.FindOne(ctx, bson.M{
		"subDomain": strings.ToLower(strings.TrimSpace(subDomain)),
		"localId":   localID,
		"isActive":  true,
	}, nil)
}
