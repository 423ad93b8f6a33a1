package businessdto

// BusinessLocationInput dữ liệu đầu vào cho một điểm bán
type BusinessLocationInput struct {
	LocalID  string `json:"localId" bson:"localId" validate:"required"`
	Name     string `json:"name" bson:"name" validate:"required"`
	Address  string `json:"address" bson:"address"`
	Phone    string `json:"phone" bson:"phone" validate:"omitempty,phone_digits"`
	IsActive bool   `json:"isActive" bson:"isActive"`
}

// BusinessCreateInput dữ liệu đầu vào khi tạo business
type BusinessCreateInput struct {
	Name           string                  `json:"name" bson:"name" validate:"required"`
	SubDomain      string                  `json:"subDomain" bson:"subDomain" validate:"required,subdomain"`
	WabaID         string                  `json:"wabaId" bson:"wabaId,omitempty"`
	PhoneNumberIDs []string                `json:"phoneNumberIds" bson:"phoneNumberIds"`
	Locations      []BusinessLocationInput `json:"locations" bson:"locations" validate:"omitempty,dive"`
	WhatsAppEnabled bool                   `json:"whatsappEnabled" bson:"whatsappEnabled"`
	IsActive        bool                   `json:"isActive" bson:"isActive"`
}

// BusinessUpdateInput dữ liệu đầu vào khi cập nhật business.
// Các trường bỏ trống sẽ không được cập nhật.
type BusinessUpdateInput struct {
	Name           string                  `json:"name" bson:"name,omitempty"`
	WabaID         string                  `json:"wabaId" bson:"wabaId,omitempty"`
	PhoneNumberIDs []string                `json:"phoneNumberIds" bson:"phoneNumberIds,omitempty"`
	Locations      []BusinessLocationInput `json:"locations" bson:"locations,omitempty" validate:"omitempty,dive"`
	WhatsAppEnabled *bool                  `json:"whatsappEnabled" bson:"whatsappEnabled,omitempty"`
	IsActive        *bool                  `json:"isActive" bson:"isActive,omitempty"`
}

// BusinessSetTokenInput dữ liệu đầu vào khi cập nhật access token của tenant
type BusinessSetTokenInput struct {
	SubDomain      string `json:"subDomain" validate:"required,subdomain"`
	AccessToken    string `json:"accessToken" validate:"required"`
	TokenExpiresAt int64  `json:"tokenExpiresAt" validate:"omitempty,min=0"`
}
