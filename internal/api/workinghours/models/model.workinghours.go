package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TimeInterval một khoảng mở cửa trong ngày, giờ dạng "HH:MM" 24h
type TimeInterval struct {
	Open  string `json:"open" bson:"open"`
	Close string `json:"close" bson:"close"`
}

// DaySchedule lịch của một ngày trong tuần
type DaySchedule struct {
	DayOfWeek int            `json:"dayOfWeek" bson:"dayOfWeek"` // 0 = Chủ nhật ... 6 = Thứ bảy
	IsOpen    bool           `json:"isOpen" bson:"isOpen"`       // Có mở cửa ngày này không
	Intervals []TimeInterval `json:"intervals" bson:"intervals"` // Các khoảng mở cửa trong ngày
}

// WorkingHours lịch làm việc hàng tuần của một điểm bán
type WorkingHours struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID trong MongoDB

	SubDomain string `json:"subDomain" bson:"subDomain"` // Tenant sở hữu lịch
	LocalID   string `json:"localId" bson:"localId"`     // Điểm bán áp dụng lịch

	Schedule []DaySchedule `json:"schedule" bson:"schedule"` // Lịch 7 ngày trong tuần
	TimeZone string        `json:"timeZone" bson:"timeZone"` // IANA timezone, ví dụ "America/Lima"

	IsActive bool `json:"isActive" bson:"isActive"` // Lịch còn hiệu lực

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
