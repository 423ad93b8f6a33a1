// Package whatsapphdl - handler webhook Meta WhatsApp (verify + event delivery).
package whatsapphdl

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/base/handler"
	businessmodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/business/models"
	businesssvc "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/business/service"
	whatsappdto "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/whatsapp/dto"
	whatsappmodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/whatsapp/models"
	whatsappsvc "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/whatsapp/service"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/common"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/global"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/logger"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/utility"
)

// businessResolver định danh tenant cho một webhook entry
type businessResolver interface {
	ResolveBusiness(ctx context.Context, entry *whatsappdto.MetaEntry) *businessmodels.Business
}

// entryProcessor xử lý các change của một entry đã định danh được tenant
type entryProcessor interface {
	ProcessEntry(ctx context.Context, business *businessmodels.Business, entry *whatsappdto.MetaEntry) error
}

// WhatsAppWebhookHandler xử lý webhook từ Meta WhatsApp Cloud API
type WhatsAppWebhookHandler struct {
	resolver          businessResolver
	dispatcher        entryProcessor
	webhookLogService *whatsappsvc.WebhookLogService
}

// NewWhatsAppWebhookHandler tạo mới WhatsAppWebhookHandler
func NewWhatsAppWebhookHandler() (*WhatsAppWebhookHandler, error) {
	businessService, err := businesssvc.NewBusinessService()
	if err != nil {
		return nil, fmt.Errorf("failed to create business service: %v", err)
	}
	dispatcher, err := whatsappsvc.NewWebhookDispatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook dispatcher: %v", err)
	}
	webhookLogService, err := whatsappsvc.NewWebhookLogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook log service: %v", err)
	}
	return &WhatsAppWebhookHandler{
		resolver:          whatsappsvc.NewBusinessResolver(businessService),
		dispatcher:        dispatcher,
		webhookLogService: webhookLogService,
	}, nil
}

// HandleVerifyWebhook xử lý handshake đăng ký webhook của Meta.
// Meta gửi GET /webhook?hub.mode=subscribe&hub.verify_token=...&hub.challenge=...
// và yêu cầu echo lại hub.challenge khi verify token khớp.
func (h *WhatsAppWebhookHandler) HandleVerifyWebhook(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		log := logger.GetAppLogger()
		mode := c.Query("hub.mode")
		token := c.Query("hub.verify_token")
		challenge := c.Query("hub.challenge")

		if mode != "subscribe" || token == "" || token != global.ServerConfig.WebhookVerifyToken {
			log.WithField("mode", mode).Warn("📨 [WHATSAPP WEBHOOK] Verify thất bại, verify token không khớp")
			return c.Status(common.StatusForbidden).SendString("Forbidden")
		}

		log.Info("📨 [WHATSAPP WEBHOOK] Verify thành công")
		return c.Status(common.StatusOK).SendString(challenge)
	})
}

// HandleIncomingWebhook xử lý POST webhook delivery từ Meta.
// Chữ ký sai trả 403 trước khi parse bất kỳ event nào; sau khi chữ ký hợp lệ
// response luôn là 200 bất kể kết quả xử lý, vì Meta coi non-200 là
// "retry toàn bộ delivery" và sẽ gây bão duplicate.
func (h *WhatsAppWebhookHandler) HandleIncomingWebhook(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		log := logger.GetAppLogger()
		ctx := c.Context()
		rawBody := c.Body()

		signature := c.Get("X-Hub-Signature-256")
		if !whatsappsvc.VerifySignature(rawBody, signature, global.ServerConfig.FacebookAppSecret) {
			// Log prefix chữ ký để điều tra spoofing, không bao giờ log secret
			log.WithFields(map[string]interface{}{
				"signaturePrefix": utility.TruncateString(signature, 16),
				"ip":              c.IP(),
				"bodySize":        len(rawBody),
			}).Warn("📨 [WHATSAPP WEBHOOK] Chữ ký không hợp lệ, từ chối delivery")
			return basehdl.JSONResponse(c, common.StatusForbidden, fiber.Map{
				"code":    common.StatusForbidden,
				"message": common.MsgWebhookForbidden,
				"status":  "error",
			})
		}

		var payload whatsappdto.MetaWebhookPayload
		parseErr := json.Unmarshal(rawBody, &payload)

		webhookLog := h.saveWebhookLog(ctx, c, &payload, string(rawBody), parseErr)

		if parseErr != nil {
			log.WithError(parseErr).Warn("📨 [WHATSAPP WEBHOOK] Body không parse được, chỉ lưu log")
			return h.acknowledge(c)
		}

		if payload.Object != "whatsapp_business_account" {
			log.WithField("object", payload.Object).Warn("📨 [WHATSAPP WEBHOOK] Object không được hỗ trợ, bỏ qua")
			return h.acknowledge(c)
		}

		resolvedSubDomain, processErr := h.processEntries(ctx, &payload)

		if webhookLog != nil {
			errorMsg := ""
			if processErr != nil {
				errorMsg = processErr.Error()
			}
			_ = h.webhookLogService.UpdateProcessedStatus(ctx, webhookLog.ID, processErr == nil, errorMsg, resolvedSubDomain)
		}

		return h.acknowledge(c)
	})
}

// processEntries xử lý từng entry của delivery độc lập với nhau:
// entry không định danh được tenant bị bỏ qua, lỗi xử lý được log lại
// và không chặn các entry còn lại. Trả về subDomain của business đầu tiên
// resolve được (để gắn vào webhook log) và lỗi cuối cùng nếu có.
func (h *WhatsAppWebhookHandler) processEntries(ctx context.Context, payload *whatsappdto.MetaWebhookPayload) (resolvedSubDomain string, processErr error) {
	log := logger.GetAppLogger()
	for i := range payload.Entry {
		entry := &payload.Entry[i]
		business := h.resolver.ResolveBusiness(ctx, entry)
		if business == nil {
			continue
		}
		if resolvedSubDomain == "" {
			resolvedSubDomain = business.SubDomain
		}
		if err := h.dispatcher.ProcessEntry(ctx, business, entry); err != nil {
			log.WithError(err).WithField("entryId", entry.ID).Error("📨 [WHATSAPP WEBHOOK] Lỗi khi xử lý entry")
			processErr = err
		}
	}
	return resolvedSubDomain, processErr
}

// acknowledge trả response 200 theo format Meta webhook, luôn giống nhau
// để sender không retry delivery
func (h *WhatsAppWebhookHandler) acknowledge(c fiber.Ctx) error {
	return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
		"type":    "1",
		"message": common.MsgWebhookReceived,
		"data":    nil,
	})
}

// saveWebhookLog lưu log delivery; lỗi lưu log không chặn xử lý webhook
func (h *WhatsAppWebhookHandler) saveWebhookLog(ctx context.Context, c fiber.Ctx, payload *whatsappdto.MetaWebhookPayload, rawBody string, parseErr error) *whatsappmodels.WebhookLog {
	log := logger.GetAppLogger()

	entry := whatsappmodels.WebhookLog{
		Source:     "meta_whatsapp",
		RawBody:    rawBody,
		IPAddress:  c.IP(),
		ReceivedAt: utility.CurrentTimeInMilli(),
	}
	if parseErr == nil {
		entry.ObjectType = payload.Object
		if len(payload.Entry) > 0 {
			identity := whatsappsvc.ExtractEntryIdentity(&payload.Entry[0])
			entry.WabaID = identity.WabaID
			entry.PhoneNumberID = identity.PhoneNumberID
		}
		var body map[string]interface{}
		if err := json.Unmarshal([]byte(rawBody), &body); err == nil {
			entry.RequestBody = body
		}
	} else {
		entry.ProcessError = parseErr.Error()
	}

	saved, err := h.webhookLogService.CreateWebhookLog(ctx, entry)
	if err != nil {
		log.WithError(err).Warn("📨 [WHATSAPP WEBHOOK] Không thể lưu webhook log")
		return nil
	}
	return saved
}
