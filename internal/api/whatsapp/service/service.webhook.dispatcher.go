// File này xử lý các event trong một webhook entry đã định danh được business.
package whatsappsvc

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	businessmodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/business/models"
	whatsappdto "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/whatsapp/dto"
	whatsappmodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/whatsapp/models"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/logger"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/utility"
)

// inboundCustomerStore ghi nhận khách hàng từ tin nhắn inbound
type inboundCustomerStore interface {
	UpsertFromInbound(ctx context.Context, phone, name, subDomain string) (whatsappmodels.WhatsAppCustomer, error)
}

// chatStore quản lý hội thoại và counter của chat
type chatStore interface {
	FindOrCreateChat(ctx context.Context, customerPhone, customerName, subDomain string) (whatsappmodels.WhatsAppChat, error)
	RecordMessage(ctx context.Context, chatID primitive.ObjectID, preview string, timestamp int64, inbound bool) error
}

// messageStore lưu tin nhắn với dedup và cập nhật status outbound
type messageStore interface {
	RecordInboundMessage(ctx context.Context, message whatsappmodels.ChatMessage) (inserted bool, err error)
	UpdateOutboundStatus(ctx context.Context, metaMessageID, subDomain, status string) (matched bool, err error)
}

// WebhookDispatcher điều phối các change trong webhook entry về đúng xử lý
type WebhookDispatcher struct {
	customerService inboundCustomerStore
	chatService     chatStore
	messageService  messageStore
}

// NewWebhookDispatcher tạo mới WebhookDispatcher
func NewWebhookDispatcher() (*WebhookDispatcher, error) {
	customerService, err := NewWhatsAppCustomerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create whatsapp customer service: %v", err)
	}
	chatService, err := NewWhatsAppChatService()
	if err != nil {
		return nil, fmt.Errorf("failed to create whatsapp chat service: %v", err)
	}
	messageService, err := NewChatMessageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create chat message service: %v", err)
	}
	return &WebhookDispatcher{
		customerService: customerService,
		chatService:     chatService,
		messageService:  messageService,
	}, nil
}

// ProcessEntry xử lý tuần tự các change của một entry cho business đã định danh.
// Lỗi của từng message/status được log lại và không chặn các event còn lại;
// lỗi trả về chỉ mang tính tổng hợp cho webhook log.
func (d *WebhookDispatcher) ProcessEntry(ctx context.Context, business *businessmodels.Business, entry *whatsappdto.MetaEntry) error {
	log := logger.GetAppLogger()
	var lastErr error

	for i := range entry.Changes {
		change := &entry.Changes[i]
		switch change.Field {
		case "messages":
			if err := d.processMessagesChange(ctx, business, &change.Value); err != nil {
				lastErr = err
			}
		case "message_template_status_update":
			d.processTemplateStatusUpdate(business, &change.Value)
		default:
			// Forward-compatible: field mới của Meta chỉ được log rồi bỏ qua
			log.WithFields(map[string]interface{}{
				"entryId":   entry.ID,
				"field":     change.Field,
				"subDomain": business.SubDomain,
			}).Warn("📨 [WHATSAPP WEBHOOK] Field chưa được xử lý, bỏ qua")
		}
	}

	return lastErr
}

// processMessagesChange xử lý các tin nhắn inbound và status update trong một change
func (d *WebhookDispatcher) processMessagesChange(ctx context.Context, business *businessmodels.Business, value *whatsappdto.MetaChangeValue) error {
	log := logger.GetAppLogger()
	var lastErr error

	for i := range value.Messages {
		if err := d.processInboundMessage(ctx, business, value, &value.Messages[i]); err != nil {
			log.WithError(err).WithFields(map[string]interface{}{
				"metaMessageId": value.Messages[i].ID,
				"subDomain":     business.SubDomain,
			}).Error("📨 [WHATSAPP WEBHOOK] Lỗi khi xử lý tin nhắn inbound")
			lastErr = err
		}
	}

	for i := range value.Statuses {
		if err := d.processStatusUpdate(ctx, business, &value.Statuses[i]); err != nil {
			log.WithError(err).WithFields(map[string]interface{}{
				"metaMessageId": value.Statuses[i].ID,
				"subDomain":     business.SubDomain,
			}).Error("📨 [WHATSAPP WEBHOOK] Lỗi khi xử lý status update")
			lastErr = err
		}
	}

	return lastErr
}

// processInboundMessage tạo/cập nhật customer + chat rồi lưu tin nhắn với dedup
func (d *WebhookDispatcher) processInboundMessage(ctx context.Context, business *businessmodels.Business, value *whatsappdto.MetaChangeValue, message *whatsappdto.MetaMessage) error {
	log := logger.GetAppLogger()

	customerName := contactName(value.Contacts, message.From)
	if _, err := d.customerService.UpsertFromInbound(ctx, message.From, customerName, business.SubDomain); err != nil {
		return err
	}

	chat, err := d.chatService.FindOrCreateChat(ctx, message.From, customerName, business.SubDomain)
	if err != nil {
		return err
	}

	content, preview := BuildContentEnvelope(message)
	record := whatsappmodels.ChatMessage{
		MetaMessageID: message.ID,
		ChatID:        chat.ID,
		CustomerPhone: message.From,
		SubDomain:     business.SubDomain,
		Content:       content,
		Timestamp:     metaTimestampToMilli(message.Timestamp),
	}

	inserted, err := d.messageService.RecordInboundMessage(ctx, record)
	if err != nil {
		return err
	}
	if !inserted {
		log.WithFields(map[string]interface{}{
			"metaMessageId": message.ID,
			"subDomain":     business.SubDomain,
		}).Info("📨 [WHATSAPP WEBHOOK] Tin nhắn đã tồn tại, delivery lặp lại được bỏ qua")
		return nil
	}

	return d.chatService.RecordMessage(ctx, chat.ID, preview, record.Timestamp, true)
}

// processStatusUpdate ánh xạ status Meta về status nội bộ và cập nhật
// đúng tin nhắn outbound khớp message ID của tenant
func (d *WebhookDispatcher) processStatusUpdate(ctx context.Context, business *businessmodels.Business, status *whatsappdto.MetaStatus) error {
	log := logger.GetAppLogger()
	internalStatus := whatsappmodels.MapMetaStatus(status.Status)

	matched, err := d.messageService.UpdateOutboundStatus(ctx, status.ID, business.SubDomain, internalStatus)
	if err != nil {
		return err
	}
	if !matched {
		// Tin nhắn có thể đã gửi qua kênh không track hoặc đã bị purge
		log.WithFields(map[string]interface{}{
			"metaMessageId": status.ID,
			"metaStatus":    status.Status,
			"subDomain":     business.SubDomain,
		}).Warn("📨 [WHATSAPP WEBHOOK] Status update không khớp tin nhắn outbound nào")
	}
	return nil
}

// processTemplateStatusUpdate ghi nhận thay đổi trạng thái template của Meta
func (d *WebhookDispatcher) processTemplateStatusUpdate(business *businessmodels.Business, value *whatsappdto.MetaChangeValue) {
	logger.GetAppLogger().WithFields(map[string]interface{}{
		"subDomain":    business.SubDomain,
		"event":        value.Event,
		"templateId":   value.MessageTemplateID,
		"templateName": value.MessageTemplateName,
		"language":     value.MessageTemplateLanguage,
		"reason":       value.Reason,
	}).Info("📨 [WHATSAPP WEBHOOK] Template status update")
}

// BuildContentEnvelope ánh xạ payload theo loại của Meta về envelope nội dung
// thống nhất, kèm chuỗi preview cho danh sách chat.
// Loại không nhận diện được rơi vào Type = "unknown".
// Hàm thuần, tách riêng để test không cần database.
func BuildContentEnvelope(message *whatsappdto.MetaMessage) (whatsappmodels.MessageContent, string) {
	switch message.Type {
	case "text":
		if message.Text != nil {
			return whatsappmodels.MessageContent{
				Type: "text",
				Text: &whatsappmodels.TextContent{Body: message.Text.Body},
			}, message.Text.Body
		}
	case "image":
		if message.Image != nil {
			return mediaEnvelope("image", message.Image), previewOrDefault(message.Image.Caption, "[Hình ảnh]")
		}
	case "audio":
		if message.Audio != nil {
			return mediaEnvelope("audio", message.Audio), "[Âm thanh]"
		}
	case "video":
		if message.Video != nil {
			return mediaEnvelope("video", message.Video), previewOrDefault(message.Video.Caption, "[Video]")
		}
	case "document":
		if message.Document != nil {
			return mediaEnvelope("document", message.Document), previewOrDefault(message.Document.Filename, "[Tài liệu]")
		}
	case "location":
		if message.Location != nil {
			return whatsappmodels.MessageContent{
				Type: "location",
				Location: &whatsappmodels.LocationContent{
					Latitude:  message.Location.Latitude,
					Longitude: message.Location.Longitude,
					Name:      message.Location.Name,
					Address:   message.Location.Address,
				},
			}, previewOrDefault(message.Location.Name, "[Vị trí]")
		}
	case "contacts":
		if len(message.Contacts) > 0 {
			contacts := make([]whatsappmodels.ContactContent, 0, len(message.Contacts))
			for _, card := range message.Contacts {
				contact := whatsappmodels.ContactContent{Name: card.Name.FormattedName}
				for _, phone := range card.Phones {
					contact.Phones = append(contact.Phones, phone.Phone)
				}
				contacts = append(contacts, contact)
			}
			return whatsappmodels.MessageContent{
				Type:     "contacts",
				Contacts: contacts,
			}, "[Danh thiếp]"
		}
	case "interactive":
		if message.Interactive != nil {
			content := &whatsappmodels.InteractiveContent{Type: message.Interactive.Type}
			preview := "[Lựa chọn]"
			if message.Interactive.ButtonReply != nil {
				content.ReplyID = message.Interactive.ButtonReply.ID
				content.ReplyTitle = message.Interactive.ButtonReply.Title
				preview = message.Interactive.ButtonReply.Title
			} else if message.Interactive.ListReply != nil {
				content.ReplyID = message.Interactive.ListReply.ID
				content.ReplyTitle = message.Interactive.ListReply.Title
				preview = message.Interactive.ListReply.Title
			}
			return whatsappmodels.MessageContent{
				Type:        "interactive",
				Interactive: content,
			}, preview
		}
	case "template":
		if message.Template != nil {
			return whatsappmodels.MessageContent{
				Type: "template",
				Template: &whatsappmodels.TemplateContent{
					Name:     message.Template.Name,
					Language: message.Template.Language.Code,
				},
			}, previewOrDefault(message.Template.Name, "[Template]")
		}
	case "button":
		if message.Button != nil {
			return whatsappmodels.MessageContent{
				Type: "interactive",
				Interactive: &whatsappmodels.InteractiveContent{
					Type:       "button",
					ReplyID:    message.Button.Payload,
					ReplyTitle: message.Button.Text,
				},
			}, message.Button.Text
		}
	}

	// Loại chưa biết hoặc payload thiếu nhánh tương ứng: giữ lại discriminator
	return whatsappmodels.MessageContent{
		Type: "unknown",
		Raw:  map[string]interface{}{"metaType": message.Type},
	}, "[Tin nhắn không hỗ trợ]"
}

func mediaEnvelope(contentType string, media *whatsappdto.MetaMedia) whatsappmodels.MessageContent {
	return whatsappmodels.MessageContent{
		Type: contentType,
		Media: &whatsappmodels.MediaContent{
			MediaID:  media.ID,
			MimeType: media.MimeType,
			SHA256:   media.SHA256,
			Caption:  media.Caption,
			Filename: media.Filename,
		},
	}
}

func previewOrDefault(value, fallback string) string {
	if value != "" {
		return utility.TruncateString(value, lastMessagePreviewLength)
	}
	return fallback
}

// contactName tìm tên profile của người gửi trong danh sách contacts của payload
func contactName(contacts []whatsappdto.MetaContact, waID string) string {
	for _, contact := range contacts {
		if contact.WaID == waID {
			return contact.Profile.Name
		}
	}
	return ""
}

// metaTimestampToMilli chuyển timestamp Unix seconds (string) của Meta về milliseconds
func metaTimestampToMilli(metaTimestamp string) int64 {
	seconds, err := strconv.ParseInt(metaTimestamp, 10, 64)
	if err != nil || seconds <= 0 {
		return time.Now().UnixMilli()
	}
	return seconds * 1000
}
