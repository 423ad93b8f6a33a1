// Package workinghoursdto chứa các DTO cho domain WorkingHours.
package workinghoursdto

import (
	workinghoursmodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/workinghours/models"
)

// WorkingHoursCreateInput dữ liệu đầu vào khi tạo lịch làm việc
type WorkingHoursCreateInput struct {
	SubDomain string                            `json:"subDomain" bson:"subDomain" validate:"required,subdomain"`
	LocalID   string                            `json:"localId" bson:"localId" validate:"required"`
	Schedule  []workinghoursmodels.DaySchedule  `json:"schedule" bson:"schedule" validate:"required,min=1,max=7"`
	TimeZone  string                            `json:"timeZone" bson:"timeZone"`
	IsActive  bool                              `json:"isActive" bson:"isActive"`
}

// WorkingHoursUpdateInput dữ liệu đầu vào khi cập nhật lịch làm việc
type WorkingHoursUpdateInput struct {
	Schedule []workinghoursmodels.DaySchedule `json:"schedule" bson:"schedule,omitempty"`
	TimeZone string                           `json:"timeZone" bson:"timeZone,omitempty"`
	IsActive *bool                            `json:"isActive" bson:"isActive,omitempty"`
}
