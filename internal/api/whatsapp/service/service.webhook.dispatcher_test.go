// Package whatsappsvc - Test ánh xạ payload Meta về envelope nội dung thống nhất.
package whatsappsvc

import (
	"testing"

	whatsappdto "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/whatsapp/dto"
	whatsappmodels "github.com/Dokal-Marketplace/api-server-lemenu-sub000/internal/api/whatsapp/models"
)

func TestBuildContentEnvelope_Text(t *testing.T) {
	message := &whatsappdto.MetaMessage{
		Type: "text",
		Text: &whatsappdto.MetaText{Body: "Cho mình hỏi phí ship về Quận 7"},
	}
	content, preview := BuildContentEnvelope(message)

	if content.Type != "text" || content.Text == nil {
		t.Fatalf("envelope text sai: %+v", content)
	}
	if content.Text.Body != "Cho mình hỏi phí ship về Quận 7" {
		t.Errorf("body sai: %q", content.Text.Body)
	}
	if preview != "Cho mình hỏi phí ship về Quận 7" {
		t.Errorf("preview phải là body của text, nhận được %q", preview)
	}
}

func TestBuildContentEnvelope_MediaTypes(t *testing.T) {
	media := &whatsappdto.MetaMedia{ID: "media-1", MimeType: "image/jpeg", Caption: "ảnh món ăn"}
	cases := []struct {
		name    string
		message *whatsappdto.MetaMessage
		want    string
	}{
		{"image", &whatsappdto.MetaMessage{Type: "image", Image: media}, "image"},
		{"audio", &whatsappdto.MetaMessage{Type: "audio", Audio: &whatsappdto.MetaMedia{ID: "media-2"}}, "audio"},
		{"video", &whatsappdto.MetaMessage{Type: "video", Video: &whatsappdto.MetaMedia{ID: "media-3"}}, "video"},
		{"document", &whatsappdto.MetaMessage{Type: "document", Document: &whatsappdto.MetaMedia{ID: "media-4", Filename: "menu.pdf"}}, "document"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			content, _ := BuildContentEnvelope(tc.message)
			if content.Type != tc.want {
				t.Errorf("type sai: muốn %q, nhận được %q", tc.want, content.Type)
			}
			if content.Media == nil || content.Media.MediaID == "" {
				t.Errorf("envelope media phải giữ media ID: %+v", content)
			}
		})
	}
}

func TestBuildContentEnvelope_Location(t *testing.T) {
	message := &whatsappdto.MetaMessage{
		Type: "location",
		Location: &whatsappdto.MetaLocation{
			Latitude:  10.762622,
			Longitude: 106.660172,
			Name:      "Nhà khách",
		},
	}
	content, preview := BuildContentEnvelope(message)

	if content.Type != "location" || content.Location == nil {
		t.Fatalf("envelope location sai: %+v", content)
	}
	if content.Location.Latitude != 10.762622 || content.Location.Longitude != 106.660172 {
		t.Errorf("tọa độ sai: %+v", content.Location)
	}
	if preview != "Nhà khách" {
		t.Errorf("preview phải ưu tiên tên vị trí, nhận được %q", preview)
	}
}

func TestBuildContentEnvelope_InteractiveButtonReply(t *testing.T) {
	message := &whatsappdto.MetaMessage{
		Type: "interactive",
		Interactive: &whatsappdto.MetaInteractive{
			Type: "button_reply",
			ButtonReply: &struct {
				ID    string `json:"id"`
				Title string `json:"title"`
			}{ID: "btn-order", Title: "Đặt hàng"},
		},
	}
	content, preview := BuildContentEnvelope(message)

	if content.Type != "interactive" || content.Interactive == nil {
		t.Fatalf("envelope interactive sai: %+v", content)
	}
	if content.Interactive.ReplyID != "btn-order" || content.Interactive.ReplyTitle != "Đặt hàng" {
		t.Errorf("reply sai: %+v", content.Interactive)
	}
	if preview != "Đặt hàng" {
		t.Errorf("preview phải là nhãn của lựa chọn, nhận được %q", preview)
	}
}

func TestBuildContentEnvelope_Template(t *testing.T) {
	template := &whatsappdto.MetaTemplate{Name: "xac_nhan_don_hang"}
	template.Language.Code = "vi"
	message := &whatsappdto.MetaMessage{
		Type:     "template",
		Template: template,
	}
	content, preview := BuildContentEnvelope(message)

	if content.Type != "template" || content.Template == nil {
		t.Fatalf("envelope template sai: %+v", content)
	}
	if content.Template.Name != "xac_nhan_don_hang" || content.Template.Language != "vi" {
		t.Errorf("template sai: %+v", content.Template)
	}
	if preview != "xac_nhan_don_hang" {
		t.Errorf("preview phải là tên template, nhận được %q", preview)
	}
}

func TestBuildContentEnvelope_UnknownTypeFallsThrough(t *testing.T) {
	cases := []*whatsappdto.MetaMessage{
		{Type: "reaction"},
		{Type: "text"}, // discriminator text nhưng thiếu nhánh payload
		{Type: ""},
	}
	for _, message := range cases {
		content, preview := BuildContentEnvelope(message)
		if content.Type != "unknown" {
			t.Errorf("loại %q phải rơi vào unknown, nhận được %q", message.Type, content.Type)
		}
		if preview == "" {
			t.Error("preview của loại unknown không được rỗng")
		}
	}
}

func TestMapMetaStatus(t *testing.T) {
	cases := map[string]string{
		"sent":      whatsappmodels.MessageStatusSent,
		"delivered": whatsappmodels.MessageStatusDelivered,
		"read":      whatsappmodels.MessageStatusRead,
		"failed":    whatsappmodels.MessageStatusFailed,
		"warmup":    whatsappmodels.MessageStatusPending,
		"":          whatsappmodels.MessageStatusPending,
	}
	for metaStatus, want := range cases {
		if got := whatsappmodels.MapMetaStatus(metaStatus); got != want {
			t.Errorf("MapMetaStatus(%q) = %q, muốn %q", metaStatus, got, want)
		}
	}
}

func TestMetaTimestampToMilli(t *testing.T) {
	if got := metaTimestampToMilli("1735689600"); got != 1735689600000 {
		t.Errorf("timestamp hợp lệ phải nhân 1000, nhận được %d", got)
	}
	// Giá trị không parse được rơi về thời gian hiện tại, chỉ cần khác 0
	if got := metaTimestampToMilli("not-a-number"); got <= 0 {
		t.Errorf("timestamp sai dạng phải fallback về now, nhận được %d", got)
	}
}

func TestContactName(t *testing.T) {
	contacts := []whatsappdto.MetaContact{
		{WaID: "84901234567"},
		{WaID: "15551234567"},
	}
	contacts[0].Profile.Name = "Anh Tuấn"
	contacts[1].Profile.Name = "John"

	if got := contactName(contacts, "15551234567"); got != "John" {
		t.Errorf("phải tìm đúng profile theo wa_id, nhận được %q", got)
	}
	if got := contactName(contacts, "000"); got != "" {
		t.Errorf("wa_id không có trong contacts phải trả chuỗi rỗng, nhận được %q", got)
	}
}
