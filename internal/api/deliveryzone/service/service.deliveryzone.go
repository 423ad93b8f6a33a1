package deliveryzonesvc

import (
	"context"
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/base/service"
	deliveryzonedto "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/deliveryzone/dto"
	deliveryzonemodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/deliveryzone/models"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/common"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/global"
)

// DeliveryZoneService là cấu trúc chứa các phương thức liên quan đến khu vực giao hàng
type DeliveryZoneService struct {
	*basesvc.BaseServiceMongoImpl[deliveryzonemodels.DeliveryZone]
}

// NewDeliveryZoneService tạo mới DeliveryZoneService
func NewDeliveryZoneService() (*DeliveryZoneService, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.DeliveryZones)
	if !exist {
		return nil, fmt.Errorf("failed to get delivery_zones collection: %v", common.ErrNotFound)
	}
	return &DeliveryZoneService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[deliveryzonemodels.DeliveryZone](coll),
	}, nil
}

// CreateZone validate rồi chuẩn hóa tọa độ và lưu zone mới.
// Phép chuẩn hóa chạy tường minh ở write path, không phải lifecycle hook.
func (s *DeliveryZoneService) CreateZone(ctx context.Context, input *deliveryzonedto.DeliveryZoneCreateInput) (deliveryzonemodels.DeliveryZone, error) {
	var zero deliveryzonemodels.DeliveryZone

	// Validate trước, lỗi trỏ về index của tọa độ gốc
	if err := input.Validate(); err != nil {
		return zero, err
	}

	points, err := deliveryzonemodels.ToStoragePoints(input.Coordinates)
	if err != nil {
		return zero, err
	}

	zone := deliveryzonemodels.DeliveryZone{
		ZoneName:              input.ZoneName,
		DeliveryCost:          *input.DeliveryCost,
		MinimumOrder:          *input.MinimumOrder,
		EstimatedTime:         *input.EstimatedTime,
		FreeDeliveryThreshold: input.FreeDeliveryThreshold,
		Type:                  input.Type,
		Coordinates:           points,
		Radius:                input.Radius,
		SubDomain:             strings.ToLower(strings.TrimSpace(input.SubDomain)),
		LocalID:               input.LocalID,
		IsActive:              input.IsActive,
	}
	zone.Geometry = zone.BuildGeometry()

	return s.InsertOne(ctx, zone)
}

// UpdateZone cập nhật một zone; nếu gửi coordinates thì thay thế toàn bộ
// danh sách tọa độ, chuẩn hóa lại và dẫn xuất lại geometry.
func (s *DeliveryZoneService) UpdateZone(ctx context.Context, id primitive.ObjectID, input *deliveryzonedto.DeliveryZoneUpdateInput) (deliveryzonemodels.DeliveryZone, error) {
	var zero deliveryzonemodels.DeliveryZone

	existing, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	set := map[string]interface{}{}
	if input.ZoneName != "" {
		set["zoneName"] = input.ZoneName
	}
	if input.DeliveryCost != nil {
		if *input.DeliveryCost < 0 {
			return zero, common.NewError(common.ErrCodeValidationGeo, "deliveryCost không được âm", common.StatusBadRequest, nil)
		}
		set["deliveryCost"] = *input.DeliveryCost
	}
	if input.MinimumOrder != nil {
		if *input.MinimumOrder < 0 {
			return zero, common.NewError(common.ErrCodeValidationGeo, "minimumOrder không được âm", common.StatusBadRequest, nil)
		}
		set["minimumOrder"] = *input.MinimumOrder
	}
	if input.EstimatedTime != nil {
		if *input.EstimatedTime < 0 {
			return zero, common.NewError(common.ErrCodeValidationGeo, "estimatedTime không được âm", common.StatusBadRequest, nil)
		}
		set["estimatedTime"] = *input.EstimatedTime
	}
	if input.FreeDeliveryThreshold != nil {
		set["freeDeliveryThreshold"] = *input.FreeDeliveryThreshold
	}
	if input.Radius != nil {
		if existing.Type == deliveryzonemodels.ZoneTypeRadius && *input.Radius <= 0 {
			return zero, common.NewError(common.ErrCodeValidationGeo, "zone radius cần radius (mét) lớn hơn 0", common.StatusBadRequest, nil)
		}
		set["radius"] = *input.Radius
	}
	if input.IsActive != nil {
		set["isActive"] = *input.IsActive
	}

	if input.Coordinates != nil {
		// Validate danh sách mới theo loại zone hiện tại
		createShape := &deliveryzonedto.DeliveryZoneCreateInput{
			ZoneName:      existing.ZoneName,
			DeliveryCost:  &existing.DeliveryCost,
			MinimumOrder:  &existing.MinimumOrder,
			EstimatedTime: &existing.EstimatedTime,
			Type:          existing.Type,
			Coordinates:   input.Coordinates,
			Radius:        existing.Radius,
			SubDomain:     existing.SubDomain,
			LocalID:       existing.LocalID,
		}
		if input.Radius != nil {
			createShape.Radius = *input.Radius
		}
		if err := createShape.Validate(); err != nil {
			return zero, err
		}

		points, err := deliveryzonemodels.ToStoragePoints(input.Coordinates)
		if err != nil {
			return zero, err
		}
		set["coordinates"] = points

		updated := existing
		updated.Coordinates = points
		if geom := updated.BuildGeometry(); geom != nil {
			set["geometry"] = geom
		}
	}

	return s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
}

// FindActiveZones trả về các zone đang hoạt động của tenant, lọc thêm theo localId nếu có
func (s *DeliveryZoneService) FindActiveZones(ctx context.Context, subDomain string, localID string) ([]deliveryzonemodels.DeliveryZone, error) {
	filter := bson.M{
		"subDomain": strings.ToLower(strings.TrimSpace(subDomain)),
		"isActive":  true,
	}
	if localID != "" {
		filter["localId"] = localID
	}
	return s.Find(ctx, filter, nil)
}

// SoftDeleteZone tắt một zone bằng cách hạ cờ isActive
func (s *DeliveryZoneService) SoftDeleteZone(ctx context.Context, id primitive.ObjectID) (deliveryzonemodels.DeliveryZone, error) {
	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"isActive": false},
	})
}

// ResolveZone tìm zone đang hoạt động phủ điểm (lat, lng) của tenant.
// Trả về nil khi không zone nào phủ điểm.
func (s *DeliveryZoneService) ResolveZone(ctx context.Context, subDomain string, localID string, lat, lng float64) (*deliveryzonemodels.DeliveryZone, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, common.NewError(
			common.ErrCodeValidationGeo,
			fmt.Sprintf("Tọa độ (%v, %v) nằm ngoài biên cho phép", lat, lng),
			common.StatusBadRequest,
			nil,
		)
	}

	zones, err := s.FindActiveZones(ctx, subDomain, localID)
	if err != nil {
		return nil, err
	}

	return PickZoneForPoint(zones, lat, lng), nil
}

// PickZoneForPoint chọn zone phủ điểm theo thứ tự ưu tiên:
//  1. zone polygon chứa điểm hoặc zone radius có khoảng cách tới tâm ≤ bán kính -
//     nếu nhiều zone cùng phủ, chọn zone có deliveryCost thấp nhất;
//  2. nếu không zone nào phủ, chọn zone simple có tâm gần điểm nhất.
//
// Hàm thuần, tách riêng để test không cần database.
func PickZoneForPoint(zones []deliveryzonemodels.DeliveryZone, lat, lng float64) *deliveryzonemodels.DeliveryZone {
	point := orb.Point{lng, lat}

	var covering *deliveryzonemodels.DeliveryZone
	var nearestSimple *deliveryzonemodels.DeliveryZone
	nearestDistance := 0.0

	for i := range zones {
		zone := &zones[i]
		switch zone.Type {
		case deliveryzonemodels.ZoneTypePolygon:
			if len(zone.Coordinates) < 3 {
				continue
			}
			ring := make(orb.Ring, 0, len(zone.Coordinates)+1)
			for _, p := range zone.Coordinates {
				ring = append(ring, orb.Point(p))
			}
			if ring[0] != ring[len(ring)-1] {
				ring = append(ring, ring[0])
			}
			if planar.PolygonContains(orb.Polygon{ring}, point) {
				if covering == nil || zone.DeliveryCost < covering.DeliveryCost {
					covering = zone
				}
			}
		case deliveryzonemodels.ZoneTypeRadius:
			if len(zone.Coordinates) != 1 || zone.Radius <= 0 {
				continue
			}
			center := orb.Point(zone.Coordinates[0])
			if geo.Distance(center, point) <= zone.Radius {
				if covering == nil || zone.DeliveryCost < covering.DeliveryCost {
					covering = zone
				}
			}
		case deliveryzonemodels.ZoneTypeSimple:
			if len(zone.Coordinates) != 1 {
				continue
			}
			center := orb.Point(zone.Coordinates[0])
			distance := geo.Distance(center, point)
			if nearestSimple == nil || distance < nearestDistance {
				nearestSimple = zone
				nearestDistance = distance
			}
		}
	}

	if covering != nil {
		return covering
	}
	return nearestSimple
}
