// Package whatsappsvc - Test filter và document ghi tin nhắn, không cần database.
package whatsappsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	whatsappmodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/whatsapp/models"
)

func TestInboundDedupFilter(t *testing.T) {
	filter := inboundDedupFilter("wamid.abc", "tiembanh")

	if filter["metaMessageId"] != "wamid.abc" {
		t.Errorf("filter phải khóa theo metaMessageId, nhận %v", filter)
	}
	if filter["subDomain"] != "tiembanh" {
		t.Errorf("filter phải scoped theo tenant, nhận %v", filter)
	}
}

func TestInboundInsertFields_EpDirectionVaStatus(t *testing.T) {
	chatID := primitive.NewObjectID()
	message := whatsappmodels.ChatMessage{
		MetaMessageID: "wamid.abc",
		ChatID:        chatID,
		CustomerPhone: "84901234567",
		SubDomain:     "tiembanh",
		// Direction và Status từ payload không được tin: inbound luôn bị ép
		Direction: whatsappmodels.MessageDirectionOutbound,
		Status:    whatsappmodels.MessageStatusFailed,
		Timestamp: 1700000000000,
	}

	fields := inboundInsertFields(message, 1700000001000)

	if fields["direction"] != whatsappmodels.MessageDirectionInbound {
		t.Errorf("direction phải bị ép về inbound, nhận %v", fields["direction"])
	}
	if fields["status"] != whatsappmodels.MessageStatusDelivered {
		t.Errorf("status phải bị ép về delivered, nhận %v", fields["status"])
	}
	if fields["chatId"] != chatID || fields["customerPhone"] != "84901234567" {
		t.Errorf("document phải giữ chatId và customerPhone, nhận %v", fields)
	}
	if fields["createdAt"] != int64(1700000001000) || fields["updatedAt"] != int64(1700000001000) {
		t.Errorf("createdAt/updatedAt phải lấy từ thời điểm ghi, nhận %v", fields)
	}
}

func TestOutboundStatusFilter_ChiKhopTinOutbound(t *testing.T) {
	filter := outboundStatusFilter("wamid.abc", "tiembanh")

	if filter["direction"] != whatsappmodels.MessageDirectionOutbound {
		t.Errorf("status update chỉ được khớp tin outbound, nhận %v", filter)
	}
	if filter["metaMessageId"] != "wamid.abc" || filter["subDomain"] != "tiembanh" {
		t.Errorf("filter phải khóa theo message ID và tenant, nhận %v", filter)
	}
}
