// Package workinghourshdl - handler cho domain WorkingHours.
package workinghourshdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/base/handler"
	workinghoursdto "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/workinghours/dto"
	workinghoursmodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/workinghours/models"
	workinghourssvc "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/workinghours/service"
)

// WorkingHoursHandler xử lý các yêu cầu liên quan đến lịch làm việc
type WorkingHoursHandler struct {
	*basehdl.BaseHandler[workinghoursmodels.WorkingHours, workinghoursdto.WorkingHoursCreateInput, workinghoursdto.WorkingHoursUpdateInput]
	WorkingHoursService *workinghourssvc.WorkingHoursService
}

// NewWorkingHoursHandler khởi tạo WorkingHoursHandler mới
func NewWorkingHoursHandler() (*WorkingHoursHandler, error) {
	service, err := workinghourssvc.NewWorkingHoursService()
	if err != nil {
		return nil, fmt.Errorf("failed to create working hours service: %v", err)
	}
	hdl := &WorkingHoursHandler{WorkingHoursService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[workinghoursmodels.WorkingHours, workinghoursdto.WorkingHoursCreateInput, workinghoursdto.WorkingHoursUpdateInput](service)
	return hdl, nil
}

// HandleFindByLocation trả về lịch làm việc của một điểm bán
func (h *WorkingHoursHandler) HandleFindByLocation(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		subDomain := c.Params("subDomain")
		localID := c.Query("localId")
		data, err := h.WorkingHoursService.FindByLocation(c.Context(), subDomain, localID)
		h.HandleResponse(c, data, err)
		return nil
	})
}
