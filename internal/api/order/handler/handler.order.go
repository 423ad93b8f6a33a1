// Package orderhdl - handler cho domain Order.
package orderhdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/base/handler"
	orderdto "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/order/dto"
	ordermodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/order/models"
	ordersvc "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/order/service"
)

// OrderHandler xử lý các yêu cầu liên quan đến đơn hàng
type OrderHandler struct {
	*basehdl.BaseHandler[ordermodels.Order, orderdto.OrderCreateInput, orderdto.OrderUpdateInput]
	OrderService *ordersvc.OrderService
}

// NewOrderHandler khởi tạo OrderHandler mới
func NewOrderHandler() (*OrderHandler, error) {
	service, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}
	hdl := &OrderHandler{OrderService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[ordermodels.Order, orderdto.OrderCreateInput, orderdto.OrderUpdateInput](service)
	return hdl, nil
}

// HandleListBySubDomain trả về đơn hàng của một tenant, phân trang
func (h *OrderHandler) HandleListBySubDomain(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		subDomain := c.Params("subDomain")
		localID := c.Query("localId")
		status := c.Query("status")
		page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
		limit, _ := strconv.ParseInt(c.Query("limit", "20"), 10, 64)
		if page < 1 {
			page = 1
		}
		if limit < 1 || limit > 100 {
			limit = 20
		}
		data, err := h.OrderService.FindBySubDomain(c.Context(), subDomain, localID, status, page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}
