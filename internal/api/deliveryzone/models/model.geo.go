package models

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/common"
)

// GeoPoint là biểu diễn lưu trữ của một tọa độ theo thứ tự GeoJSON [longitude, latitude].
// Thứ tự này bắt buộc cho geospatial index; phía API luôn dùng dạng {latitude, longitude}.
type GeoPoint [2]float64

// Longitude trả về kinh độ của điểm
func (p GeoPoint) Longitude() float64 { return p[0] }

// Latitude trả về vĩ độ của điểm
func (p GeoPoint) Latitude() float64 { return p[1] }

// PublicPoint là biểu diễn public của một tọa độ trả về cho API consumer
type PublicPoint struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// MarshalJSON trả GeoPoint về dạng public {latitude, longitude}.
// Mọi read path vì vậy tự động đảo ngược phép chuẩn hóa.
func (p GeoPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(PublicPoint{Latitude: p[1], Longitude: p[0]})
}

// UnmarshalJSON chấp nhận cả dạng public {latitude, longitude}
// lẫn dạng lưu trữ [longitude, latitude] đã chuẩn hóa.
func (p *GeoPoint) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	point, err := ToStorageFormat(raw, 0)
	if err != nil {
		return err
	}
	*p = point
	return nil
}

// ToStorageFormat chuyển một tọa độ đầu vào về dạng lưu trữ [longitude, latitude].
// Chấp nhận:
//   - map với khóa latitude/longitude (dạng public)
//   - mảng 2 số (đã chuẩn hóa - idempotent, không biến đổi lại)
//   - GeoPoint / PublicPoint đã parse
//
// index chỉ dùng trong thông báo lỗi để trỏ về tọa độ sai trong danh sách gốc.
func ToStorageFormat(point interface{}, index int) (GeoPoint, error) {
	var zero GeoPoint

	switch v := point.(type) {
	case GeoPoint:
		return checkPoint(v, index)
	case *GeoPoint:
		if v == nil {
			return zero, pointError(index, "tọa độ rỗng")
		}
		return checkPoint(*v, index)
	case PublicPoint:
		return checkPoint(GeoPoint{v.Longitude, v.Latitude}, index)
	case [2]float64:
		return checkPoint(GeoPoint(v), index)
	case []float64:
		if len(v) != 2 {
			return zero, pointError(index, fmt.Sprintf("mảng tọa độ phải có đúng 2 phần tử, nhận được %d", len(v)))
		}
		return checkPoint(GeoPoint{v[0], v[1]}, index)
	case []interface{}:
		if len(v) != 2 {
			return zero, pointError(index, fmt.Sprintf("mảng tọa độ phải có đúng 2 phần tử, nhận được %d", len(v)))
		}
		lng, okLng := toFloat(v[0])
		lat, okLat := toFloat(v[1])
		if !okLng || !okLat {
			return zero, pointError(index, "các phần tử của mảng tọa độ phải là số")
		}
		return checkPoint(GeoPoint{lng, lat}, index)
	case map[string]interface{}:
		latRaw, hasLat := v["latitude"]
		lngRaw, hasLng := v["longitude"]
		if !hasLat || !hasLng {
			return zero, pointError(index, "tọa độ phải có đủ hai trường latitude và longitude")
		}
		lat, okLat := toFloat(latRaw)
		lng, okLng := toFloat(lngRaw)
		if !okLat || !okLng {
			return zero, pointError(index, "latitude và longitude phải là số")
		}
		return checkPoint(GeoPoint{lng, lat}, index)
	default:
		return zero, pointError(index, fmt.Sprintf("kiểu tọa độ không được hỗ trợ: %T", point))
	}
}

// ToPublicFormat là phép biến đổi ngược của ToStorageFormat,
// trả mọi biểu diễn hợp lệ về dạng public {latitude, longitude}.
func ToPublicFormat(point interface{}, index int) (PublicPoint, error) {
	stored, err := ToStorageFormat(point, index)
	if err != nil {
		return PublicPoint{}, err
	}
	return PublicPoint{Latitude: stored[1], Longitude: stored[0]}, nil
}

// ToStoragePoints chuẩn hóa cả danh sách tọa độ, lỗi trỏ về index gốc
func ToStoragePoints(points []interface{}) ([]GeoPoint, error) {
	result := make([]GeoPoint, 0, len(points))
	for i, raw := range points {
		point, err := ToStorageFormat(raw, i)
		if err != nil {
			return nil, err
		}
		result = append(result, point)
	}
	return result, nil
}

// checkPoint từ chối NaN/Inf, giữ nguyên giá trị hợp lệ
func checkPoint(p GeoPoint, index int) (GeoPoint, error) {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return GeoPoint{}, pointError(index, "tọa độ chứa giá trị không phải số hữu hạn")
		}
	}
	return p, nil
}

// toFloat chuyển giá trị JSON đã decode về float64
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// pointError tạo validation error trỏ về tọa độ sai
func pointError(index int, msg string) error {
	return common.NewError(
		common.ErrCodeValidationGeo,
		fmt.Sprintf("Tọa độ tại vị trí %d không hợp lệ: %s", index, msg),
		common.StatusBadRequest,
		nil,
	)
}
