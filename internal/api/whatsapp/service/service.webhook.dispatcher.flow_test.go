// Package whatsappsvc - Test luồng dispatch webhook với store giả, không cần database.
package whatsappsvc

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	businessmodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/business/models"
	whatsappdto "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/whatsapp/dto"
	whatsappmodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/whatsapp/models"
)

type fakeCustomerStore struct {
	upsertedPhones []string
	failPhone      string
}

func (f *fakeCustomerStore) UpsertFromInbound(ctx context.Context, phone, name, subDomain string) (whatsappmodels.WhatsAppCustomer, error) {
	if phone == f.failPhone {
		return whatsappmodels.WhatsAppCustomer{}, errors.New("upsert customer thất bại")
	}
	f.upsertedPhones = append(f.upsertedPhones, phone)
	return whatsappmodels.WhatsAppCustomer{Phone: phone, SubDomain: subDomain}, nil
}

type fakeChatStore struct {
	chatID           primitive.ObjectID
	recordedPreviews []string
}

func (f *fakeChatStore) FindOrCreateChat(ctx context.Context, customerPhone, customerName, subDomain string) (whatsappmodels.WhatsAppChat, error) {
	return whatsappmodels.WhatsAppChat{ID: f.chatID, CustomerPhone: customerPhone, SubDomain: subDomain}, nil
}

func (f *fakeChatStore) RecordMessage(ctx context.Context, chatID primitive.ObjectID, preview string, timestamp int64, inbound bool) error {
	f.recordedPreviews = append(f.recordedPreviews, preview)
	return nil
}

type fakeMessageStore struct {
	duplicateIDs    map[string]bool
	insertedIDs     []string
	statusUpdates   []string
	matchedStatuses map[string]bool
}

func (f *fakeMessageStore) RecordInboundMessage(ctx context.Context, message whatsappmodels.ChatMessage) (bool, error) {
	if f.duplicateIDs[message.MetaMessageID] {
		return false, nil
	}
	f.insertedIDs = append(f.insertedIDs, message.MetaMessageID)
	return true, nil
}

func (f *fakeMessageStore) UpdateOutboundStatus(ctx context.Context, metaMessageID, subDomain, status string) (bool, error) {
	f.statusUpdates = append(f.statusUpdates, metaMessageID)
	return f.matchedStatuses[metaMessageID], nil
}

func newFakeDispatcher() (*WebhookDispatcher, *fakeCustomerStore, *fakeChatStore, *fakeMessageStore) {
	customers := &fakeCustomerStore{}
	chats := &fakeChatStore{chatID: primitive.NewObjectID()}
	messages := &fakeMessageStore{
		duplicateIDs:    map[string]bool{},
		matchedStatuses: map[string]bool{},
	}
	return &WebhookDispatcher{
		customerService: customers,
		chatService:     chats,
		messageService:  messages,
	}, customers, chats, messages
}

func messagesEntry(messages []whatsappdto.MetaMessage, statuses []whatsappdto.MetaStatus) *whatsappdto.MetaEntry {
	return &whatsappdto.MetaEntry{
		ID: "100000000000001",
		Changes: []whatsappdto.MetaChange{
			{
				Field: "messages",
				Value: whatsappdto.MetaChangeValue{
					Messages: messages,
					Statuses: statuses,
				},
			},
		},
	}
}

func TestProcessEntry_InboundMoiGhiDuChatVaMessage(t *testing.T) {
	dispatcher, customers, chats, messages := newFakeDispatcher()
	business := &businessmodels.Business{SubDomain: "tiembanh"}

	entry := messagesEntry([]whatsappdto.MetaMessage{
		{
			ID:        "wamid.moi1",
			From:      "84901234567",
			Timestamp: "1700000000",
			Type:      "text",
			Text:      &whatsappdto.MetaText{Body: "Shop còn bánh kem không"},
		},
	}, nil)

	if err := dispatcher.ProcessEntry(context.Background(), business, entry); err != nil {
		t.Fatalf("ProcessEntry lỗi: %v", err)
	}
	if len(customers.upsertedPhones) != 1 || customers.upsertedPhones[0] != "84901234567" {
		t.Errorf("customer phải được upsert theo số điện thoại gửi, nhận %v", customers.upsertedPhones)
	}
	if len(messages.insertedIDs) != 1 || messages.insertedIDs[0] != "wamid.moi1" {
		t.Errorf("tin nhắn phải được ghi một lần, nhận %v", messages.insertedIDs)
	}
	if len(chats.recordedPreviews) != 1 || chats.recordedPreviews[0] != "Shop còn bánh kem không" {
		t.Errorf("chat phải được cập nhật preview của tin nhắn, nhận %v", chats.recordedPreviews)
	}
}

func TestProcessEntry_DeliveryLapLaiKhongDungChamChat(t *testing.T) {
	dispatcher, _, chats, messages := newFakeDispatcher()
	messages.duplicateIDs["wamid.trung1"] = true
	business := &businessmodels.Business{SubDomain: "tiembanh"}

	entry := messagesEntry([]whatsappdto.MetaMessage{
		{
			ID:        "wamid.trung1",
			From:      "84901234567",
			Timestamp: "1700000000",
			Type:      "text",
			Text:      &whatsappdto.MetaText{Body: "tin đã nhận trước đó"},
		},
	}, nil)

	if err := dispatcher.ProcessEntry(context.Background(), business, entry); err != nil {
		t.Fatalf("delivery lặp lại phải là no-op, nhận lỗi: %v", err)
	}
	if len(messages.insertedIDs) != 0 {
		t.Errorf("tin nhắn trùng không được ghi thêm, nhận %v", messages.insertedIDs)
	}
	if len(chats.recordedPreviews) != 0 {
		t.Errorf("chat không được cập nhật khi tin nhắn trùng, nhận %v", chats.recordedPreviews)
	}
}

func TestProcessEntry_LoiMotTinKhongChanTinConLai(t *testing.T) {
	dispatcher, customers, _, messages := newFakeDispatcher()
	customers.failPhone = "84900000001"
	business := &businessmodels.Business{SubDomain: "tiembanh"}

	entry := messagesEntry([]whatsappdto.MetaMessage{
		{
			ID:        "wamid.loi1",
			From:      "84900000001",
			Timestamp: "1700000000",
			Type:      "text",
			Text:      &whatsappdto.MetaText{Body: "tin gây lỗi"},
		},
		{
			ID:        "wamid.ok1",
			From:      "84900000002",
			Timestamp: "1700000001",
			Type:      "text",
			Text:      &whatsappdto.MetaText{Body: "tin vẫn phải được xử lý"},
		},
	}, nil)

	err := dispatcher.ProcessEntry(context.Background(), business, entry)
	if err == nil {
		t.Fatal("lỗi của tin đầu phải được trả về cho webhook log")
	}
	if len(messages.insertedIDs) != 1 || messages.insertedIDs[0] != "wamid.ok1" {
		t.Errorf("tin sau tin lỗi vẫn phải được ghi, nhận %v", messages.insertedIDs)
	}
}

func TestProcessEntry_StatusKhongKhopLaNoOp(t *testing.T) {
	dispatcher, _, _, messages := newFakeDispatcher()
	business := &businessmodels.Business{SubDomain: "tiembanh"}

	entry := messagesEntry(nil, []whatsappdto.MetaStatus{
		{ID: "wamid.khongtontai", Status: "read", Timestamp: "1700000002"},
	})

	if err := dispatcher.ProcessEntry(context.Background(), business, entry); err != nil {
		t.Fatalf("status không khớp tin nhắn nào phải là no-op, nhận lỗi: %v", err)
	}
	if len(messages.statusUpdates) != 1 || messages.statusUpdates[0] != "wamid.khongtontai" {
		t.Errorf("status update phải đi qua message store đúng một lần, nhận %v", messages.statusUpdates)
	}
}
