// File này định danh Business chủ của một webhook entry.
package whatsappsvc

import (
	"context"
	"strings"

	businessmodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/business/models"
	businesssvc "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/business/service"
	whatsappdto "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/whatsapp/dto"
	"github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/logger"
)

// EntryIdentity là cặp định danh trích được từ một webhook entry
type EntryIdentity struct {
	WabaID        string
	PhoneNumberID string
}

// ExtractEntryIdentity trích WABA ID và phone number ID từ một entry.
// metadata (phone_number_id, waba_id) là nguồn chính; entry.id chỉ là fallback:
//   - dạng "{wabaId}-{phoneNumberId}" (tách tại dấu gạch đầu tiên) bù phần còn thiếu
//   - ngược lại entry.id được coi là WABA ID
//
// Hàm thuần, không chạm database.
func ExtractEntryIdentity(entry *whatsappdto.MetaEntry) EntryIdentity {
	var identity EntryIdentity

	for i := range entry.Changes {
		metadata := entry.Changes[i].Value.Metadata
		if identity.PhoneNumberID == "" && metadata.PhoneNumberID != "" {
			identity.PhoneNumberID = metadata.PhoneNumberID
		}
		if identity.WabaID == "" && metadata.WabaID != "" {
			identity.WabaID = metadata.WabaID
		}
	}

	// entry.id chỉ bù phần metadata còn thiếu
	if idx := strings.Index(entry.ID, "-"); idx > 0 && idx < len(entry.ID)-1 {
		if identity.WabaID == "" {
			identity.WabaID = entry.ID[:idx]
		}
		if identity.PhoneNumberID == "" {
			identity.PhoneNumberID = entry.ID[idx+1:]
		}
	} else if identity.WabaID == "" {
		identity.WabaID = entry.ID
	}

	return identity
}

// BusinessResolver định danh tenant cho webhook entry qua BusinessService
type BusinessResolver struct {
	businessService *businesssvc.BusinessService
}

// NewBusinessResolver tạo mới BusinessResolver
func NewBusinessResolver(businessService *businesssvc.BusinessService) *BusinessResolver {
	return &BusinessResolver{businessService: businessService}
}

// ResolveBusiness tìm Business chủ của một entry. Thứ tự tra cứu:
// phone number ID trước (khớp chính xác trong danh sách của từng Business),
// không thấy mới tra theo WABA ID. Trả về nil khi không định danh được,
// không bao giờ trả lỗi về caller vì entry không định danh được chỉ bị skip.
func (r *BusinessResolver) ResolveBusiness(ctx context.Context, entry *whatsappdto.MetaEntry) *businessmodels.Business {
	log := logger.GetAppLogger()
	identity := ExtractEntryIdentity(entry)

	if identity.PhoneNumberID != "" {
		business, err := r.businessService.FindByPhoneNumberID(ctx, identity.PhoneNumberID)
		if err != nil {
			log.WithError(err).WithField("phoneNumberId", identity.PhoneNumberID).
				Warn("📨 [WHATSAPP WEBHOOK] Lỗi khi tra cứu business theo phone number ID")
		} else if business != nil {
			return business
		}
	}

	if identity.WabaID != "" {
		business, err := r.businessService.FindByWabaID(ctx, identity.WabaID)
		if err != nil {
			log.WithError(err).WithField("wabaId", identity.WabaID).
				Warn("📨 [WHATSAPP WEBHOOK] Lỗi khi tra cứu business theo WABA ID")
		} else if business != nil {
			return business
		}
	}

	log.WithFields(map[string]interface{}{
		"entryId":       entry.ID,
		"wabaId":        identity.WabaID,
		"phoneNumberId": identity.PhoneNumberID,
	}).Warn("📨 [WHATSAPP WEBHOOK] Không định danh được business cho entry, bỏ qua")
	return nil
}
