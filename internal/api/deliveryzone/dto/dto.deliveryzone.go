package deliveryzonedto

import (
	"fmt"

	deliveryzonemodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/deliveryzone/models"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/common"
)

// DeliveryZoneCreateInput dữ liệu đầu vào khi tạo delivery zone.
// Coordinates nhận raw để validator báo lỗi theo index gốc trước khi chuẩn hóa.
type DeliveryZoneCreateInput struct {
	ZoneName              string        `json:"zoneName" bson:"zoneName" validate:"required"`
	DeliveryCost          *float64      `json:"deliveryCost" bson:"deliveryCost" validate:"required"`
	MinimumOrder          *float64      `json:"minimumOrder" bson:"minimumOrder" validate:"required"`
	EstimatedTime         *int64        `json:"estimatedTime" bson:"estimatedTime" validate:"required"`
	FreeDeliveryThreshold float64       `json:"freeDeliveryThreshold" bson:"freeDeliveryThreshold"`
	Type                  string        `json:"type" bson:"type" validate:"required,zone_type"`
	Coordinates           []interface{} `json:"coordinates" bson:"coordinates"`
	Radius                float64       `json:"radius" bson:"radius"`
	SubDomain             string        `json:"subDomain" bson:"subDomain" validate:"required,subdomain"`
	LocalID               string        `json:"localId" bson:"localId" validate:"required"`
	IsActive              bool          `json:"isActive" bson:"isActive"`
}

// DeliveryZoneUpdateInput dữ liệu đầu vào khi cập nhật delivery zone.
// Các trường bỏ trống sẽ không được cập nhật; nếu gửi coordinates thì
// toàn bộ danh sách tọa độ được thay thế và chuẩn hóa lại.
type DeliveryZoneUpdateInput struct {
	ZoneName              string        `json:"zoneName" bson:"zoneName,omitempty"`
	DeliveryCost          *float64      `json:"deliveryCost" bson:"deliveryCost,omitempty"`
	MinimumOrder          *float64      `json:"minimumOrder" bson:"minimumOrder,omitempty"`
	EstimatedTime         *int64        `json:"estimatedTime" bson:"estimatedTime,omitempty"`
	FreeDeliveryThreshold *float64      `json:"freeDeliveryThreshold" bson:"freeDeliveryThreshold,omitempty"`
	Coordinates           []interface{} `json:"coordinates" bson:"coordinates,omitempty"`
	Radius                *float64      `json:"radius" bson:"radius,omitempty"`
	IsActive              *bool         `json:"isActive" bson:"isActive,omitempty"`
}

// Validate kiểm tra các ràng buộc theo loại zone, chạy TRƯỚC khi chuẩn hóa
// để thông báo lỗi trỏ về thứ tự và index của tọa độ gốc (dạng public).
func (in *DeliveryZoneCreateInput) Validate() error {
	// Các trường số bắt buộc và không âm
	if in.DeliveryCost == nil || *in.DeliveryCost < 0 {
		return zoneError("deliveryCost phải có mặt và không âm")
	}
	if in.MinimumOrder == nil || *in.MinimumOrder < 0 {
		return zoneError("minimumOrder phải có mặt và không âm")
	}
	if in.EstimatedTime == nil || *in.EstimatedTime < 0 {
		return zoneError("estimatedTime phải có mặt và không âm")
	}

	// Kiểm tra từng tọa độ: parse được và nằm trong biên
	points := make([]deliveryzonemodels.GeoPoint, 0, len(in.Coordinates))
	for i, raw := range in.Coordinates {
		point, err := deliveryzonemodels.ToStorageFormat(raw, i)
		if err != nil {
			return err
		}
		if point.Latitude() < -90 || point.Latitude() > 90 {
			return zoneError(fmt.Sprintf("latitude tại vị trí %d phải nằm trong [-90, 90], nhận được %v", i, point.Latitude()))
		}
		if point.Longitude() < -180 || point.Longitude() > 180 {
			return zoneError(fmt.Sprintf("longitude tại vị trí %d phải nằm trong [-180, 180], nhận được %v", i, point.Longitude()))
		}
		points = append(points, point)
	}

	// Ràng buộc theo loại zone
	switch in.Type {
	case deliveryzonemodels.ZoneTypePolygon:
		if len(points) < 3 {
			return zoneError(fmt.Sprintf("zone polygon cần tối thiểu 3 tọa độ, nhận được %d", len(points)))
		}
	case deliveryzonemodels.ZoneTypeSimple:
		if len(points) != 1 {
			return zoneError(fmt.Sprintf("zone simple cần đúng 1 tọa độ trung tâm, nhận được %d", len(points)))
		}
	case deliveryzonemodels.ZoneTypeRadius:
		if len(points) != 1 {
			return zoneError(fmt.Sprintf("zone radius cần đúng 1 tọa độ trung tâm, nhận được %d", len(points)))
		}
		if in.Radius <= 0 {
			return zoneError("zone radius cần radius (mét) lớn hơn 0")
		}
	default:
		return zoneError(fmt.Sprintf("loại zone '%s' không được hỗ trợ", in.Type))
	}

	return nil
}

// zoneError tạo validation error cho delivery zone
func zoneError(msg string) error {
	return common.NewError(common.ErrCodeValidationGeo, msg, common.StatusBadRequest, nil)
}
