package deliveryzonehdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/base/handler"
	deliveryzonedto "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/deliveryzone/dto"
	deliveryzonemodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/deliveryzone/models"
	deliveryzonesvc "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/deliveryzone/service"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/common"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/logger"
)

// DeliveryZoneHandler xử lý các yêu cầu liên quan đến khu vực giao hàng
type DeliveryZoneHandler struct {
	*basehdl.BaseHandler[deliveryzonemodels.DeliveryZone, deliveryzonedto.DeliveryZoneCreateInput, deliveryzonedto.DeliveryZoneUpdateInput]
	ZoneService *deliveryzonesvc.DeliveryZoneService
}

// NewDeliveryZoneHandler khởi tạo DeliveryZoneHandler mới
func NewDeliveryZoneHandler() (*DeliveryZoneHandler, error) {
	service, err := deliveryzonesvc.NewDeliveryZoneService()
	if err != nil {
		return nil, fmt.Errorf("failed to create delivery zone service: %v", err)
	}
	hdl := &DeliveryZoneHandler{ZoneService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[deliveryzonemodels.DeliveryZone, deliveryzonedto.DeliveryZoneCreateInput, deliveryzonedto.DeliveryZoneUpdateInput](service)
	return hdl, nil
}

// HandleCreateZone tạo mới một delivery zone, validate + chuẩn hóa tọa độ ở write path
func (h *DeliveryZoneHandler) HandleCreateZone(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(deliveryzonedto.DeliveryZoneCreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.ZoneService.CreateZone(c.Context(), input)
		if err == nil {
			logger.GetAppLogger().WithFields(map[string]interface{}{
				"subDomain": data.SubDomain,
				"localId":   data.LocalID,
				"type":      data.Type,
			}).Info("🗺️ [DELIVERY ZONE] Đã tạo zone mới")
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleUpdateZone cập nhật một delivery zone theo ID
func (h *DeliveryZoneHandler) HandleUpdateZone(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		input := new(deliveryzonedto.DeliveryZoneUpdateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.ZoneService.UpdateZone(c.Context(), id, input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleListZones trả về các zone đang hoạt động của tenant
func (h *DeliveryZoneHandler) HandleListZones(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		subDomain := c.Params("subDomain")
		localID := c.Query("localId", "")
		data, err := h.ZoneService.FindActiveZones(c.Context(), subDomain, localID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleSoftDeleteZone tắt một zone (soft delete) theo ID
func (h *DeliveryZoneHandler) HandleSoftDeleteZone(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.ZoneService.SoftDeleteZone(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleResolveZone tìm zone phủ một điểm (lat, lng) cho tenant.
// Trả về data null khi không có zone nào phủ điểm.
func (h *DeliveryZoneHandler) HandleResolveZone(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		subDomain := c.Query("subDomain", "")
		if subDomain == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu tham số subDomain",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		lat, errLat := strconv.ParseFloat(c.Query("lat", ""), 64)
		lng, errLng := strconv.ParseFloat(c.Query("lng", ""), 64)
		if errLat != nil || errLng != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationGeo,
				"Tham số lat và lng phải là số",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		zone, err := h.ZoneService.ResolveZone(c.Context(), subDomain, c.Query("localId", ""), lat, lng)
		h.HandleResponse(c, zone, err)
		return nil
	})
}
