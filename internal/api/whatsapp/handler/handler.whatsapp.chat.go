package whatsapphdl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/base/handler"
	businesssvc "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/business/service"
	whatsappdto "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/whatsapp/dto"
	whatsappmodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/whatsapp/models"
	whatsappsvc "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/whatsapp/service"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/common"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/logger"
)

// WhatsAppChatHandler xử lý các yêu cầu đọc hội thoại và gửi tin nhắn outbound
type WhatsAppChatHandler struct {
	*basehdl.BaseHandler[whatsappmodels.WhatsAppChat, whatsappmodels.WhatsAppChat, whatsappmodels.WhatsAppChat]
	businessService *businesssvc.BusinessService
	chatService     *whatsappsvc.WhatsAppChatService
	messageService  *whatsappsvc.ChatMessageService
	customerService *whatsappsvc.WhatsAppCustomerService
	cloudClient     *whatsappsvc.CloudAPIClient
}

// NewWhatsAppChatHandler tạo mới WhatsAppChatHandler
func NewWhatsAppChatHandler() (*WhatsAppChatHandler, error) {
	businessService, err := businesssvc.NewBusinessService()
	if err != nil {
		return nil, fmt.Errorf("failed to create business service: %v", err)
	}
	chatService, err := whatsappsvc.NewWhatsAppChatService()
	if err != nil {
		return nil, fmt.Errorf("failed to create whatsapp chat service: %v", err)
	}
	messageService, err := whatsappsvc.NewChatMessageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create chat message service: %v", err)
	}
	customerService, err := whatsappsvc.NewWhatsAppCustomerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create whatsapp customer service: %v", err)
	}
	hdl := &WhatsAppChatHandler{
		businessService: businessService,
		chatService:     chatService,
		messageService:  messageService,
		customerService: customerService,
		cloudClient:     whatsappsvc.NewCloudAPIClient(businessService),
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[whatsappmodels.WhatsAppChat, whatsappmodels.WhatsAppChat, whatsappmodels.WhatsAppChat](chatService)
	return hdl, nil
}

// HandleListChats trả về danh sách chat của một tenant, phân trang
func (h *WhatsAppChatHandler) HandleListChats(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		subDomain := strings.ToLower(strings.TrimSpace(c.Params("subDomain")))
		page, limit := parsePagination(c)
		data, err := h.chatService.FindChatsBySubDomain(c.Context(), subDomain, page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleListCustomers trả về danh sách khách hàng WhatsApp của một tenant, phân trang
func (h *WhatsAppChatHandler) HandleListCustomers(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		subDomain := strings.ToLower(strings.TrimSpace(c.Params("subDomain")))
		page, limit := parsePagination(c)
		data, err := h.customerService.FindCustomersBySubDomain(c.Context(), subDomain, page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleListMessages trả về tin nhắn của một chat, phân trang
func (h *WhatsAppChatHandler) HandleListMessages(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		chatID, err := h.ParseObjectID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		page, limit := parsePagination(c)
		data, err := h.messageService.FindMessagesByChat(c.Context(), chatID, page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleMarkChatRead đưa unreadCount của chat về 0
func (h *WhatsAppChatHandler) HandleMarkChatRead(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		chatID, err := h.ParseObjectID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		data, err := h.chatService.MarkChatRead(c.Context(), chatID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleSendTextMessage gửi tin nhắn văn bản outbound qua Graph API
// rồi lưu message record để các status update sau đó khớp được
func (h *WhatsAppChatHandler) HandleSendTextMessage(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		log := logger.GetAppLogger()
		input := new(whatsappdto.SendTextMessageInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		ctx := c.Context()
		business, err := h.businessService.FindBySubdomain(ctx, input.SubDomain)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if !business.WhatsAppEnabled {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeBusiness,
				"Business chưa bật tính năng WhatsApp",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		result, err := h.cloudClient.SendTextMessage(ctx, &business, input.To, input.Text)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		chat, err := h.chatService.FindOrCreateChat(ctx, input.To, "", business.SubDomain)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		message, err := h.messageService.RecordOutboundMessage(ctx, whatsappmodels.ChatMessage{
			MetaMessageID: result.MetaMessageID,
			ChatID:        chat.ID,
			CustomerPhone: input.To,
			SubDomain:     business.SubDomain,
			Content: whatsappmodels.MessageContent{
				Type: "text",
				Text: &whatsappmodels.TextContent{Body: input.Text},
			},
		})
		if err != nil {
			// Tin nhắn đã gửi thành công phía Meta, chỉ record nội bộ bị lỗi
			log.WithError(err).WithField("metaMessageId", result.MetaMessageID).
				Error("📨 [WHATSAPP SEND] Gửi thành công nhưng không lưu được message record")
			h.HandleResponse(c, result, nil)
			return nil
		}

		if recordErr := h.chatService.RecordMessage(ctx, chat.ID, input.Text, message.Timestamp, false); recordErr != nil {
			log.WithError(recordErr).WithField("chatId", chat.ID.Hex()).
				Warn("📨 [WHATSAPP SEND] Không cập nhật được counter của chat")
		}

		h.HandleResponse(c, message, nil)
		return nil
	})
}

// parsePagination đọc page/limit từ query với giới hạn mặc định
func parsePagination(c fiber.Ctx) (page, limit int64) {
	page, _ = strconv.ParseInt(c.Query("page", "1"), 10, 64)
	limit, _ = strconv.ParseInt(c.Query("limit", "20"), 10, 64)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
