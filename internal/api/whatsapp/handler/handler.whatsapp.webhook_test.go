// Package whatsapphdl - Test luồng xử lý entry của webhook với resolver và dispatcher giả.
package whatsapphdl

import (
	"context"
	"errors"
	"testing"

	businessmodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/business/models"
	whatsappdto "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/whatsapp/dto"
)

// fakeBusinessResolver định danh entry theo map entryID -> subDomain,
// entry không có trong map coi như không thuộc tenant nào
type fakeBusinessResolver struct {
	byEntryID map[string]string
}

func (f *fakeBusinessResolver) ResolveBusiness(ctx context.Context, entry *whatsappdto.MetaEntry) *businessmodels.Business {
	subDomain, ok := f.byEntryID[entry.ID]
	if !ok {
		return nil
	}
	return &businessmodels.Business{SubDomain: subDomain}
}

// fakeEntryProcessor ghi lại các entry đã xử lý, entry trong failOn trả lỗi
type fakeEntryProcessor struct {
	processedIDs []string
	failOn       map[string]bool
}

func (f *fakeEntryProcessor) ProcessEntry(ctx context.Context, business *businessmodels.Business, entry *whatsappdto.MetaEntry) error {
	f.processedIDs = append(f.processedIDs, entry.ID)
	if f.failOn[entry.ID] {
		return errors.New("xử lý entry thất bại")
	}
	return nil
}

func webhookPayload(entryIDs ...string) *whatsappdto.MetaWebhookPayload {
	payload := &whatsappdto.MetaWebhookPayload{Object: "whatsapp_business_account"}
	for _, id := range entryIDs {
		payload.Entry = append(payload.Entry, whatsappdto.MetaEntry{ID: id})
	}
	return payload
}

func TestProcessEntries_EntryKhongDinhDanhDuocBiBoQua(t *testing.T) {
	resolver := &fakeBusinessResolver{byEntryID: map[string]string{
		"waba-2": "tiembanh",
	}}
	processor := &fakeEntryProcessor{failOn: map[string]bool{}}
	handler := &WhatsAppWebhookHandler{resolver: resolver, dispatcher: processor}

	subDomain, err := handler.processEntries(context.Background(), webhookPayload("waba-la", "waba-2"))

	if err != nil {
		t.Fatalf("entry không định danh được không phải là lỗi, nhận: %v", err)
	}
	if len(processor.processedIDs) != 1 || processor.processedIDs[0] != "waba-2" {
		t.Errorf("chỉ entry định danh được mới được xử lý, nhận %v", processor.processedIDs)
	}
	if subDomain != "tiembanh" {
		t.Errorf("subDomain của business resolve được phải trả về cho webhook log, nhận %q", subDomain)
	}
}

func TestProcessEntries_LoiMotEntryKhongChanEntryConLai(t *testing.T) {
	resolver := &fakeBusinessResolver{byEntryID: map[string]string{
		"waba-1": "tiembanh",
		"waba-2": "quancafe",
	}}
	processor := &fakeEntryProcessor{failOn: map[string]bool{"waba-1": true}}
	handler := &WhatsAppWebhookHandler{resolver: resolver, dispatcher: processor}

	subDomain, err := handler.processEntries(context.Background(), webhookPayload("waba-1", "waba-2"))

	if err == nil {
		t.Fatal("lỗi xử lý entry phải được trả về cho webhook log")
	}
	if len(processor.processedIDs) != 2 {
		t.Errorf("entry sau entry lỗi vẫn phải được xử lý, nhận %v", processor.processedIDs)
	}
	if subDomain != "tiembanh" {
		t.Errorf("subDomain phải là của business đầu tiên resolve được, nhận %q", subDomain)
	}
}

func TestProcessEntries_KhongEntryNaoDinhDanhDuoc(t *testing.T) {
	resolver := &fakeBusinessResolver{byEntryID: map[string]string{}}
	processor := &fakeEntryProcessor{failOn: map[string]bool{}}
	handler := &WhatsAppWebhookHandler{resolver: resolver, dispatcher: processor}

	subDomain, err := handler.processEntries(context.Background(), webhookPayload("waba-la"))

	if err != nil {
		t.Fatalf("delivery không của tenant nào vẫn phải được ack, nhận lỗi: %v", err)
	}
	if subDomain != "" {
		t.Errorf("không resolve được thì webhook log không gắn subDomain, nhận %q", subDomain)
	}
	if len(processor.processedIDs) != 0 {
		t.Errorf("không entry nào được xử lý, nhận %v", processor.processedIDs)
	}
}
