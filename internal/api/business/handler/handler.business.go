package businesshdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/base/handler"
	businessdto "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/business/dto"
	businessmodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/business/models"
	businesssvc "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/business/service"
)

// BusinessHandler xử lý các yêu cầu liên quan đến tenant (business)
type BusinessHandler struct {
	*basehdl.BaseHandler[businessmodels.Business, businessdto.BusinessCreateInput, businessdto.BusinessUpdateInput]
	BusinessService *businesssvc.BusinessService
}

// NewBusinessHandler khởi tạo BusinessHandler mới
func NewBusinessHandler() (*BusinessHandler, error) {
	service, err := businesssvc.NewBusinessService()
	if err != nil {
		return nil, fmt.Errorf("failed to create business service: %v", err)
	}
	hdl := &BusinessHandler{BusinessService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[businessmodels.Business, businessdto.BusinessCreateInput, businessdto.BusinessUpdateInput](service)
	return hdl, nil
}

// HandleCreateBusiness tạo mới một tenant, check trùng subdomain trước khi insert
func (h *BusinessHandler) HandleCreateBusiness(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(businessdto.BusinessCreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.BusinessService.CreateBusiness(c.Context(), input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleFindBySubdomain tìm một business theo subdomain
func (h *BusinessHandler) HandleFindBySubdomain(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		subDomain := c.Params("subDomain")
		data, err := h.BusinessService.FindBySubdomain(c.Context(), subDomain)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleSetAccessToken cập nhật access token Meta của tenant.
// Token được mã hóa AES-GCM trước khi lưu, không bao giờ trả lại cho client.
func (h *BusinessHandler) HandleSetAccessToken(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(businessdto.BusinessSetTokenInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.BusinessService.SetAccessToken(c.Context(), input)
		h.HandleResponse(c, data, err)
		return nil
	})
}
