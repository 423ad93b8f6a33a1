package whatsappdto

// SendTextMessageInput dữ liệu đầu vào khi gửi tin nhắn văn bản outbound
type SendTextMessageInput struct {
	SubDomain string `json:"subDomain" validate:"required,subdomain"` // Tenant gửi tin nhắn
	To        string `json:"to" validate:"required,phone_digits"`     // Số điện thoại người nhận
	Text      string `json:"text" validate:"required"`                // Nội dung văn bản
}

// SendMessageResult kết quả gửi tin nhắn qua Graph API
type SendMessageResult struct {
	MetaMessageID string `json:"metaMessageId"` // Message ID Meta cấp cho tin nhắn
}
