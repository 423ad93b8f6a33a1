// Package whatsappsvc - Test trích định danh business từ webhook entry.
package whatsappsvc

import (
	"testing"

	whatsappdto "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/whatsapp/dto"
)

func entryWithMetadata(entryID, phoneNumberID, wabaID string) *whatsappdto.MetaEntry {
	entry := &whatsappdto.MetaEntry{ID: entryID}
	if phoneNumberID != "" || wabaID != "" {
		entry.Changes = []whatsappdto.MetaChange{{
			Field: "messages",
			Value: whatsappdto.MetaChangeValue{
				Metadata: whatsappdto.MetaMetadata{
					PhoneNumberID: phoneNumberID,
					WabaID:        wabaID,
				},
			},
		}}
	}
	return entry
}

func TestExtractEntryIdentity_MetadataIsAuthoritative(t *testing.T) {
	// entry.id dạng hyphen chứa giá trị khác metadata: metadata phải thắng
	entry := entryWithMetadata("999888-777666", "111222", "333444")
	identity := ExtractEntryIdentity(entry)

	if identity.PhoneNumberID != "111222" {
		t.Errorf("phone number ID phải lấy từ metadata, nhận được %q", identity.PhoneNumberID)
	}
	if identity.WabaID != "333444" {
		t.Errorf("WABA ID phải lấy từ metadata, nhận được %q", identity.WabaID)
	}
}

func TestExtractEntryIdentity_HyphenatedEntryIDFallback(t *testing.T) {
	entry := entryWithMetadata("999888-777666", "", "")
	identity := ExtractEntryIdentity(entry)

	if identity.WabaID != "999888" {
		t.Errorf("WABA ID phải là phần trước dấu gạch đầu tiên, nhận được %q", identity.WabaID)
	}
	if identity.PhoneNumberID != "777666" {
		t.Errorf("phone number ID phải là phần sau dấu gạch đầu tiên, nhận được %q", identity.PhoneNumberID)
	}
}

func TestExtractEntryIdentity_SplitsOnFirstHyphenOnly(t *testing.T) {
	entry := entryWithMetadata("111-222-333", "", "")
	identity := ExtractEntryIdentity(entry)

	if identity.WabaID != "111" || identity.PhoneNumberID != "222-333" {
		t.Errorf("tách tại dấu gạch đầu tiên: nhận được waba=%q phone=%q", identity.WabaID, identity.PhoneNumberID)
	}
}

func TestExtractEntryIdentity_PlainEntryIDIsWabaID(t *testing.T) {
	entry := entryWithMetadata("123456789", "", "")
	identity := ExtractEntryIdentity(entry)

	if identity.WabaID != "123456789" {
		t.Errorf("entry.id không có dấu gạch phải được coi là WABA ID, nhận được %q", identity.WabaID)
	}
	if identity.PhoneNumberID != "" {
		t.Errorf("không có nguồn nào cho phone number ID, nhận được %q", identity.PhoneNumberID)
	}
}

func TestExtractEntryIdentity_EntryIDFillsMissingPieces(t *testing.T) {
	// metadata chỉ có phone number ID, entry.id hyphen bù WABA ID
	entry := entryWithMetadata("999888-777666", "111222", "")
	identity := ExtractEntryIdentity(entry)

	if identity.PhoneNumberID != "111222" {
		t.Errorf("phone number ID từ metadata phải được giữ, nhận được %q", identity.PhoneNumberID)
	}
	if identity.WabaID != "999888" {
		t.Errorf("WABA ID thiếu phải được bù từ entry.id, nhận được %q", identity.WabaID)
	}
}
