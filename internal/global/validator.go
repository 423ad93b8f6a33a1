package global

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate là validator dùng chung cho toàn bộ ứng dụng
var Validate *validator.Validate

// subdomainRegex: chữ thường, số, dấu gạch ngang, không bắt đầu/kết thúc bằng gạch ngang
var subdomainRegex = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("latitude", validateLatitude)
	_ = Validate.RegisterValidation("longitude", validateLongitude)
	_ = Validate.RegisterValidation("subdomain", validateSubdomain)
	_ = Validate.RegisterValidation("zone_type", validateZoneType)
	_ = Validate.RegisterValidation("phone_digits", validatePhoneDigits)
}

// validateLatitude kiểm tra vĩ độ trong khoảng [-90, 90]
func validateLatitude(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return v >= -90 && v <= 90
}

// validateLongitude kiểm tra kinh độ trong khoảng [-180, 180]
func validateLongitude(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return v >= -180 && v <= 180
}

// validateSubdomain kiểm tra subdomain hợp lệ (chữ thường, số, gạch ngang)
func validateSubdomain(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" || len(value) > 63 {
		return false
	}
	return subdomainRegex.MatchString(value)
}

// validateZoneType kiểm tra loại khu vực giao hàng
func validateZoneType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "polygon", "simple", "radius":
		return true
	}
	return false
}

// validatePhoneDigits kiểm tra số điện thoại dạng E.164 (có thể có dấu + ở đầu)
func validatePhoneDigits(fl validator.FieldLevel) bool {
	value := strings.TrimPrefix(fl.Field().String(), "+")
	if len(value) < 7 || len(value) > 15 {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
