package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các loại delivery zone được hỗ trợ
const (
	ZoneTypePolygon = "polygon" // Đa giác, coordinates ≥ 3 điểm
	ZoneTypeSimple  = "simple"  // Một điểm trung tâm
	ZoneTypeRadius  = "radius"  // Điểm trung tâm + bán kính (mét)
)

// GeoJSONPolygon là geometry GeoJSON cho 2dsphere index, chỉ lưu cho zone polygon.
// Ring ngoài được đóng (điểm đầu lặp lại ở cuối) theo yêu cầu của GeoJSON.
type GeoJSONPolygon struct {
	Type        string         `json:"type" bson:"type"`               // Luôn là "Polygon"
	Coordinates [][][2]float64 `json:"coordinates" bson:"coordinates"` // [ring][điểm][lng, lat]
}

// DeliveryZone đại diện cho một khu vực giao hàng của một điểm bán.
// Coordinates lưu nội bộ theo thứ tự [longitude, latitude] (GeoJSON ordering);
// JSON ra/vào luôn ở dạng {latitude, longitude} nhờ GeoPoint.
type DeliveryZone struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"` // ID của zone
	ZoneName string             `json:"zoneName" bson:"zoneName"` // Tên khu vực

	DeliveryCost          float64 `json:"deliveryCost" bson:"deliveryCost"`                               // Phí giao hàng
	MinimumOrder          float64 `json:"minimumOrder" bson:"minimumOrder"`                               // Giá trị đơn tối thiểu
	EstimatedTime         int64   `json:"estimatedTime" bson:"estimatedTime"`                             // Thời gian giao dự kiến (phút)
	FreeDeliveryThreshold float64 `json:"freeDeliveryThreshold" bson:"freeDeliveryThreshold,omitempty"` // Ngưỡng miễn phí giao

	Type        string     `json:"type" bson:"type"`               // polygon | simple | radius
	Coordinates []GeoPoint `json:"coordinates" bson:"coordinates"` // Danh sách tọa độ (polygon) hoặc một điểm trung tâm
	Radius      float64    `json:"radius" bson:"radius,omitempty"` // Bán kính (mét), chỉ cho zone radius

	SubDomain string `json:"subDomain" bson:"subDomain"` // Tenant sở hữu zone
	LocalID   string `json:"localId" bson:"localId"`     // Điểm bán sở hữu zone

	IsActive bool `json:"isActive" bson:"isActive"` // Soft delete bằng cách tắt cờ này

	// Geometry là GeoJSON dẫn xuất từ Coordinates cho 2dsphere index,
	// build lại ở write path, không nhận từ client.
	Geometry *GeoJSONPolygon `json:"-" bson:"geometry,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}

// BuildGeometry dẫn xuất GeoJSON polygon từ Coordinates cho zone polygon.
// Trả về nil cho các loại zone khác.
func (z *DeliveryZone) BuildGeometry() *GeoJSONPolygon {
	if z.Type != ZoneTypePolygon || len(z.Coordinates) < 3 {
		return nil
	}
	ring := make([][2]float64, 0, len(z.Coordinates)+1)
	for _, p := range z.Coordinates {
		ring = append(ring, [2]float64(p))
	}
	// GeoJSON yêu cầu ring đóng
	if ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return &GeoJSONPolygon{
		Type:        "Polygon",
		Coordinates: [][][2]float64{ring},
	}
}
