// Package whatsappdto chứa các DTO cho domain WhatsApp.
// File này mô tả payload webhook của Meta WhatsApp Cloud API.
// Tham khảo: https://developers.facebook.com/docs/whatsapp/cloud-api/webhooks/payload-examples
package whatsappdto

// MetaWebhookPayload là payload gốc Meta gửi qua POST /webhook
type MetaWebhookPayload struct {
	Object string      `json:"object"` // Luôn là "whatsapp_business_account"
	Entry  []MetaEntry `json:"entry"`
}

// MetaEntry là một entry trong delivery, scoped theo một WABA.
// ID thường là WABA ID, một số app cũ gửi dạng "{wabaId}-{phoneNumberId}".
type MetaEntry struct {
	ID      string       `json:"id"`
	Time    int64        `json:"time"`
	Changes []MetaChange `json:"changes"`
}

// MetaChange là một thay đổi trong entry, phân loại theo Field
type MetaChange struct {
	Field string          `json:"field"` // messages | message_template_status_update | ...
	Value MetaChangeValue `json:"value"`
}

// MetaChangeValue là value của một change. Tùy Field mà các nhánh
// Messages/Statuses hoặc nhóm trường template được dùng.
type MetaChangeValue struct {
	MessagingProduct string        `json:"messaging_product,omitempty"`
	Metadata         MetaMetadata  `json:"metadata,omitempty"`
	Contacts         []MetaContact `json:"contacts,omitempty"`
	Messages         []MetaMessage `json:"messages,omitempty"`
	Statuses         []MetaStatus  `json:"statuses,omitempty"`

	// Các trường cho field == message_template_status_update
	Event                   string `json:"event,omitempty"` // APPROVED | REJECTED | PAUSED | ...
	MessageTemplateID       int64  `json:"message_template_id,omitempty"`
	MessageTemplateName     string `json:"message_template_name,omitempty"`
	MessageTemplateLanguage string `json:"message_template_language,omitempty"`
	Reason                  string `json:"reason,omitempty"`
}

// MetaMetadata định danh số điện thoại nhận webhook
type MetaMetadata struct {
	DisplayPhoneNumber string `json:"display_phone_number,omitempty"`
	PhoneNumberID      string `json:"phone_number_id,omitempty"`
	WabaID             string `json:"waba_id,omitempty"`
}

// MetaContact thông tin profile của người gửi
type MetaContact struct {
	WaID    string `json:"wa_id"`
	Profile struct {
		Name string `json:"name"`
	} `json:"profile"`
}

// MetaMessage là một tin nhắn inbound. Type là discriminator,
// đúng một nhánh payload tương ứng khác nil.
type MetaMessage struct {
	From      string `json:"from"`      // Số điện thoại người gửi (wa_id)
	ID        string `json:"id"`        // Message ID (wamid.*)
	Timestamp string `json:"timestamp"` // Unix seconds dưới dạng string
	Type      string `json:"type"`      // text | image | audio | video | document | location | contacts | interactive | button | ...

	Text        *MetaText        `json:"text,omitempty"`
	Image       *MetaMedia       `json:"image,omitempty"`
	Audio       *MetaMedia       `json:"audio,omitempty"`
	Video       *MetaMedia       `json:"video,omitempty"`
	Document    *MetaMedia       `json:"document,omitempty"`
	Location    *MetaLocation    `json:"location,omitempty"`
	Contacts    []MetaCard       `json:"contacts,omitempty"`
	Interactive *MetaInteractive `json:"interactive,omitempty"`
	Button      *MetaButton      `json:"button,omitempty"`
	Template    *MetaTemplate    `json:"template,omitempty"`
	Context     *MetaContext     `json:"context,omitempty"`
}

// MetaText nội dung tin nhắn văn bản
type MetaText struct {
	Body string `json:"body"`
}

// MetaTemplate tin nhắn template (thường là echo của tin outbound gửi bằng template)
type MetaTemplate struct {
	Name     string `json:"name"`
	Language struct {
		Code string `json:"code"`
	} `json:"language"`
}

// MetaMedia media đính kèm (image, audio, video, document)
type MetaMedia struct {
	ID       string `json:"id"`
	MimeType string `json:"mime_type,omitempty"`
	SHA256   string `json:"sha256,omitempty"`
	Caption  string `json:"caption,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// MetaLocation vị trí được chia sẻ
type MetaLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name,omitempty"`
	Address   string  `json:"address,omitempty"`
}

// MetaCard một danh thiếp được chia sẻ qua tin nhắn contacts
type MetaCard struct {
	Name struct {
		FormattedName string `json:"formatted_name"`
	} `json:"name"`
	Phones []struct {
		Phone string `json:"phone"`
		WaID  string `json:"wa_id,omitempty"`
	} `json:"phones,omitempty"`
}

// MetaInteractive phản hồi từ button/list
type MetaInteractive struct {
	Type        string `json:"type"` // button_reply | list_reply | nfm_reply
	ButtonReply *struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	} `json:"button_reply,omitempty"`
	ListReply *struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description,omitempty"`
	} `json:"list_reply,omitempty"`
}

// MetaButton phản hồi quick-reply từ tin nhắn template
type MetaButton struct {
	Payload string `json:"payload,omitempty"`
	Text    string `json:"text"`
}

// MetaContext tham chiếu tin nhắn được reply
type MetaContext struct {
	From string `json:"from,omitempty"`
	ID   string `json:"id,omitempty"`
}

// MetaStatus cập nhật trạng thái của một tin nhắn outbound
type MetaStatus struct {
	ID          string `json:"id"`     // Message ID (wamid.*) của tin nhắn outbound
	Status      string `json:"status"` // sent | delivered | read | failed
	Timestamp   string `json:"timestamp"`
	RecipientID string `json:"recipient_id,omitempty"`
	Errors      []struct {
		Code    int    `json:"code"`
		Title   string `json:"title"`
		Message string `json:"message,omitempty"`
	} `json:"errors,omitempty"`
}
