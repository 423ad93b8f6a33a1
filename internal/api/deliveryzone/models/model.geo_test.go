// Package models - Test chuẩn hóa tọa độ giữa dạng public {latitude, longitude}
// và dạng lưu trữ [longitude, latitude].
package models

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestToStorageFormat_FromPublicMap(t *testing.T) {
	point, err := ToStorageFormat(map[string]interface{}{
		"latitude":  10.762622,
		"longitude": 106.660172,
	}, 0)
	if err != nil {
		t.Fatalf("ToStorageFormat trả về lỗi: %v", err)
	}
	if point.Longitude() != 106.660172 || point.Latitude() != 10.762622 {
		t.Errorf("thứ tự lưu trữ phải là [longitude, latitude], nhận được %v", point)
	}
}

func TestToStorageFormat_IdempotentOnStoredArray(t *testing.T) {
	// Đầu vào đã là dạng lưu trữ thì không được biến đổi thêm lần nữa
	stored := GeoPoint{106.660172, 10.762622}
	once, err := ToStorageFormat(stored, 0)
	if err != nil {
		t.Fatalf("lần chuẩn hóa thứ nhất lỗi: %v", err)
	}
	twice, err := ToStorageFormat(once, 0)
	if err != nil {
		t.Fatalf("lần chuẩn hóa thứ hai lỗi: %v", err)
	}
	if once != stored || twice != stored {
		t.Errorf("chuẩn hóa phải idempotent: gốc %v, lần 1 %v, lần 2 %v", stored, once, twice)
	}
}

func TestToStorageFormat_RoundTripWithPublic(t *testing.T) {
	public := PublicPoint{Latitude: 21.028511, Longitude: 105.804817}
	stored, err := ToStorageFormat(public, 0)
	if err != nil {
		t.Fatalf("ToStorageFormat lỗi: %v", err)
	}
	back, err := ToPublicFormat(stored, 0)
	if err != nil {
		t.Fatalf("ToPublicFormat lỗi: %v", err)
	}
	if back != public {
		t.Errorf("round-trip phải giữ nguyên giá trị: gốc %+v, sau round-trip %+v", public, back)
	}
}

func TestToStorageFormat_RejectsMalformed(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
	}{
		{"thiếu longitude", map[string]interface{}{"latitude": 10.0}},
		{"mảng 3 phần tử", []interface{}{1.0, 2.0, 3.0}},
		{"mảng rỗng", []interface{}{}},
		{"phần tử không phải số", []interface{}{"a", "b"}},
		{"NaN", GeoPoint{math.NaN(), 10}},
		{"Inf", GeoPoint{106, math.Inf(1)}},
		{"kiểu không hỗ trợ", "10,106"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ToStorageFormat(tc.input, 0); err == nil {
				t.Errorf("đầu vào %v phải bị từ chối", tc.input)
			}
		})
	}
}

func TestToStoragePoints_ErrorCarriesOriginalIndex(t *testing.T) {
	points := []interface{}{
		map[string]interface{}{"latitude": 10.0, "longitude": 106.0},
		map[string]interface{}{"latitude": 10.1, "longitude": 106.1},
		map[string]interface{}{"latitude": 10.2}, // thiếu longitude
	}
	_, err := ToStoragePoints(points)
	if err == nil {
		t.Fatal("ToStoragePoints phải trả lỗi khi có tọa độ sai")
	}
	if !strings.Contains(err.Error(), "vị trí 2") {
		t.Errorf("thông báo lỗi phải trỏ về index 2 của danh sách gốc, nhận được: %v", err)
	}
}

func TestGeoPoint_MarshalJSON_PublicShape(t *testing.T) {
	point := GeoPoint{106.660172, 10.762622}
	data, err := json.Marshal(point)
	if err != nil {
		t.Fatalf("Marshal lỗi: %v", err)
	}
	var out map[string]float64
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("GeoPoint phải serialize về object public, nhận được %s", data)
	}
	if out["latitude"] != 10.762622 || out["longitude"] != 106.660172 {
		t.Errorf("dạng public sai: %s", data)
	}
}

func TestGeoPoint_UnmarshalJSON_AcceptsBothShapes(t *testing.T) {
	var fromPublic, fromStored GeoPoint
	if err := json.Unmarshal([]byte(`{"latitude": 10.5, "longitude": 106.5}`), &fromPublic); err != nil {
		t.Fatalf("Unmarshal dạng public lỗi: %v", err)
	}
	if err := json.Unmarshal([]byte(`[106.5, 10.5]`), &fromStored); err != nil {
		t.Fatalf("Unmarshal dạng lưu trữ lỗi: %v", err)
	}
	if fromPublic != fromStored {
		t.Errorf("hai dạng đầu vào phải cho cùng kết quả: public %v, stored %v", fromPublic, fromStored)
	}
	if fromPublic.Longitude() != 106.5 || fromPublic.Latitude() != 10.5 {
		t.Errorf("giá trị sau unmarshal sai: %v", fromPublic)
	}
}

func TestBuildGeometry_ClosesRing(t *testing.T) {
	zone := DeliveryZone{
		Type: ZoneTypePolygon,
		Coordinates: []GeoPoint{
			{106.0, 10.0},
			{106.1, 10.0},
			{106.1, 10.1},
		},
	}
	geom := zone.BuildGeometry()
	if geom == nil {
		t.Fatal("BuildGeometry trả về nil cho zone polygon hợp lệ")
	}
	ring := geom.Coordinates[0]
	if len(ring) != 4 {
		t.Fatalf("ring phải được đóng (4 điểm), nhận được %d", len(ring))
	}
	if ring[0] != ring[len(ring)-1] {
		t.Errorf("điểm đầu và điểm cuối của ring phải trùng nhau: %v vs %v", ring[0], ring[len(ring)-1])
	}
}

func TestBuildGeometry_NonPolygonReturnsNil(t *testing.T) {
	zone := DeliveryZone{
		Type:        ZoneTypeRadius,
		Coordinates: []GeoPoint{{106.0, 10.0}},
		Radius:      2000,
	}
	if geom := zone.BuildGeometry(); geom != nil {
		t.Errorf("zone không phải polygon thì không có geometry, nhận được %+v", geom)
	}
}
