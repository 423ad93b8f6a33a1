// Package deliveryzonesvc - Test chọn zone phủ điểm, không cần database.
package deliveryzonesvc

import (
	"testing"

	deliveryzonemodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/deliveryzone/models"
)

// Đa giác bao quanh khu trung tâm Quận 1, TP.HCM
func polygonZone(name string, cost float64) deliveryzonemodels.DeliveryZone {
	return deliveryzonemodels.DeliveryZone{
		ZoneName:     name,
		Type:         deliveryzonemodels.ZoneTypePolygon,
		DeliveryCost: cost,
		Coordinates: []deliveryzonemodels.GeoPoint{
			{106.69, 10.76},
			{106.71, 10.76},
			{106.71, 10.78},
			{106.69, 10.78},
		},
		IsActive: true,
	}
}

func radiusZone(name string, cost float64, radiusMeters float64) deliveryzonemodels.DeliveryZone {
	return deliveryzonemodels.DeliveryZone{
		ZoneName:     name,
		Type:         deliveryzonemodels.ZoneTypeRadius,
		DeliveryCost: cost,
		Coordinates:  []deliveryzonemodels.GeoPoint{{106.70, 10.77}},
		Radius:       radiusMeters,
		IsActive:     true,
	}
}

func simpleZone(name string, lng, lat float64) deliveryzonemodels.DeliveryZone {
	return deliveryzonemodels.DeliveryZone{
		ZoneName:     name,
		Type:         deliveryzonemodels.ZoneTypeSimple,
		DeliveryCost: 10000,
		Coordinates:  []deliveryzonemodels.GeoPoint{{lng, lat}},
		IsActive:     true,
	}
}

func TestPickZoneForPoint_PolygonContains(t *testing.T) {
	zones := []deliveryzonemodels.DeliveryZone{polygonZone("Quận 1", 15000)}

	picked := PickZoneForPoint(zones, 10.77, 106.70)
	if picked == nil {
		t.Fatal("điểm nằm trong đa giác phải khớp zone")
	}
	if picked.ZoneName != "Quận 1" {
		t.Errorf("zone khớp sai: %s", picked.ZoneName)
	}

	if out := PickZoneForPoint(zones, 10.80, 106.60); out != nil {
		t.Errorf("điểm ngoài đa giác và không có zone simple phải trả nil, nhận được %s", out.ZoneName)
	}
}

func TestPickZoneForPoint_RadiusDistance(t *testing.T) {
	// Bán kính 2km quanh tâm (10.77, 106.70)
	zones := []deliveryzonemodels.DeliveryZone{radiusZone("Gần trung tâm", 12000, 2000)}

	// Cách tâm ~1.1km theo vĩ độ (0.01 độ)
	if picked := PickZoneForPoint(zones, 10.78, 106.70); picked == nil {
		t.Error("điểm trong bán kính 2km phải khớp zone radius")
	}
	// Cách tâm ~5.5km (0.05 độ)
	if picked := PickZoneForPoint(zones, 10.82, 106.70); picked != nil {
		t.Errorf("điểm ngoài bán kính phải trả nil, nhận được %s", picked.ZoneName)
	}
}

func TestPickZoneForPoint_CheapestCoveringWins(t *testing.T) {
	zones := []deliveryzonemodels.DeliveryZone{
		polygonZone("Đắt", 25000),
		polygonZone("Rẻ", 12000),
		radiusZone("Trung bình", 18000, 5000),
	}
	picked := PickZoneForPoint(zones, 10.77, 106.70)
	if picked == nil {
		t.Fatal("điểm được phủ bởi cả 3 zone phải khớp")
	}
	if picked.ZoneName != "Rẻ" {
		t.Errorf("khi nhiều zone cùng phủ phải chọn zone có deliveryCost thấp nhất, nhận được %s (cost %v)", picked.ZoneName, picked.DeliveryCost)
	}
}

func TestPickZoneForPoint_FallbackNearestSimple(t *testing.T) {
	zones := []deliveryzonemodels.DeliveryZone{
		polygonZone("Quận 1", 15000),
		simpleZone("Chi nhánh xa", 106.60, 10.85),
		simpleZone("Chi nhánh gần", 106.66, 10.80),
	}
	// Điểm ngoài đa giác, gần "Chi nhánh gần" hơn
	picked := PickZoneForPoint(zones, 10.80, 106.65)
	if picked == nil {
		t.Fatal("phải fallback về zone simple gần nhất")
	}
	if picked.ZoneName != "Chi nhánh gần" {
		t.Errorf("fallback phải chọn zone simple có tâm gần nhất, nhận được %s", picked.ZoneName)
	}
}

func TestPickZoneForPoint_CoveringBeatsSimple(t *testing.T) {
	zones := []deliveryzonemodels.DeliveryZone{
		simpleZone("Chi nhánh", 106.70, 10.77),
		polygonZone("Quận 1", 15000),
	}
	picked := PickZoneForPoint(zones, 10.77, 106.70)
	if picked == nil || picked.ZoneName != "Quận 1" {
		t.Errorf("zone phủ điểm phải được ưu tiên hơn fallback simple, nhận được %+v", picked)
	}
}

func TestPickZoneForPoint_SkipsMalformedZones(t *testing.T) {
	zones := []deliveryzonemodels.DeliveryZone{
		{Type: deliveryzonemodels.ZoneTypePolygon, Coordinates: []deliveryzonemodels.GeoPoint{{106.70, 10.77}}},
		{Type: deliveryzonemodels.ZoneTypeRadius, Coordinates: []deliveryzonemodels.GeoPoint{{106.70, 10.77}}, Radius: 0},
	}
	if picked := PickZoneForPoint(zones, 10.77, 106.70); picked != nil {
		t.Errorf("zone thiếu dữ liệu hình học phải bị bỏ qua, nhận được %s", picked.ZoneName)
	}
}

func TestPickZoneForPoint_EmptyZones(t *testing.T) {
	if picked := PickZoneForPoint(nil, 10.77, 106.70); picked != nil {
		t.Errorf("danh sách zone rỗng phải trả nil, nhận được %s", picked.ZoneName)
	}
}
