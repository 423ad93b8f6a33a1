// Package deliveryzonedto - Test validate input tạo delivery zone theo từng loại zone.
package deliveryzonedto

import (
	"strings"
	"testing"
)

func ptrF(v float64) *float64 { return &v }
func ptrI(v int64) *int64     { return &v }

func validPolygonInput() *DeliveryZoneCreateInput {
	return &DeliveryZoneCreateInput{
		ZoneName:      "Quận 1",
		DeliveryCost:  ptrF(15000),
		MinimumOrder:  ptrF(50000),
		EstimatedTime: ptrI(30),
		Type:          "polygon",
		Coordinates: []interface{}{
			map[string]interface{}{"latitude": 10.76, "longitude": 106.66},
			map[string]interface{}{"latitude": 10.77, "longitude": 106.66},
			map[string]interface{}{"latitude": 10.77, "longitude": 106.67},
		},
		SubDomain: "tiembanh",
		LocalID:   "local-1",
		IsActive:  true,
	}
}

func TestValidate_PolygonHappyPath(t *testing.T) {
	if err := validPolygonInput().Validate(); err != nil {
		t.Fatalf("input polygon hợp lệ bị từ chối: %v", err)
	}
}

func TestValidate_PolygonNeedsAtLeastThreePoints(t *testing.T) {
	for _, count := range []int{0, 1, 2} {
		in := validPolygonInput()
		in.Coordinates = in.Coordinates[:count]
		if err := in.Validate(); err == nil {
			t.Errorf("polygon với %d tọa độ phải bị từ chối", count)
		}
	}
	// 3 điểm là ngưỡng tối thiểu
	in := validPolygonInput()
	if err := in.Validate(); err != nil {
		t.Errorf("polygon với 3 tọa độ phải hợp lệ, nhận lỗi: %v", err)
	}
}

func TestValidate_RejectsOutOfBoundsCoordinates(t *testing.T) {
	cases := []struct {
		name string
		lat  float64
		lng  float64
	}{
		{"latitude quá lớn", 90.01, 106.66},
		{"latitude quá nhỏ", -90.01, 106.66},
		{"longitude quá lớn", 10.76, 180.01},
		{"longitude quá nhỏ", 10.76, -180.01},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validPolygonInput()
			in.Coordinates[1] = map[string]interface{}{"latitude": tc.lat, "longitude": tc.lng}
			err := in.Validate()
			if err == nil {
				t.Fatal("tọa độ ngoài biên phải bị từ chối")
			}
			if !strings.Contains(err.Error(), "vị trí 1") {
				t.Errorf("lỗi phải trỏ về index 1 của danh sách gốc, nhận được: %v", err)
			}
		})
	}
}

func TestValidate_RejectsNegativeNumericFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*DeliveryZoneCreateInput)
	}{
		{"deliveryCost âm", func(in *DeliveryZoneCreateInput) { in.DeliveryCost = ptrF(-1) }},
		{"minimumOrder âm", func(in *DeliveryZoneCreateInput) { in.MinimumOrder = ptrF(-1) }},
		{"estimatedTime âm", func(in *DeliveryZoneCreateInput) { in.EstimatedTime = ptrI(-1) }},
		{"thiếu deliveryCost", func(in *DeliveryZoneCreateInput) { in.DeliveryCost = nil }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validPolygonInput()
			tc.mutate(in)
			if err := in.Validate(); err == nil {
				t.Error("input phải bị từ chối")
			}
		})
	}
}

func TestValidate_SimpleZoneNeedsExactlyOnePoint(t *testing.T) {
	in := validPolygonInput()
	in.Type = "simple"
	if err := in.Validate(); err == nil {
		t.Error("zone simple với 3 tọa độ phải bị từ chối")
	}
	in.Coordinates = []interface{}{
		map[string]interface{}{"latitude": 10.76, "longitude": 106.66},
	}
	if err := in.Validate(); err != nil {
		t.Errorf("zone simple với 1 tọa độ phải hợp lệ, nhận lỗi: %v", err)
	}
}

func TestValidate_RadiusZoneNeedsPositiveRadius(t *testing.T) {
	in := validPolygonInput()
	in.Type = "radius"
	in.Coordinates = []interface{}{
		map[string]interface{}{"latitude": 10.76, "longitude": 106.66},
	}
	if err := in.Validate(); err == nil {
		t.Error("zone radius thiếu radius phải bị từ chối")
	}
	in.Radius = 2000
	if err := in.Validate(); err != nil {
		t.Errorf("zone radius với radius dương phải hợp lệ, nhận lỗi: %v", err)
	}
}

func TestValidate_RejectsUnknownZoneType(t *testing.T) {
	in := validPolygonInput()
	in.Type = "hexagon"
	if err := in.Validate(); err == nil {
		t.Error("loại zone không hỗ trợ phải bị từ chối")
	}
}
