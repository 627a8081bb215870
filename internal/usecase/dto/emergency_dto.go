package dto

// EmergencyContactRequest resolves a float's position into ready-to-use
// distress contact links.
type EmergencyContactRequest struct {
	FloatID  string `query:"float_id" validate:"required"`
	Language string `query:"language" validate:"omitempty,oneof=en es fr hi kn"`
}

// EmergencyContactResponse carries pre-encoded deep links so the client
// never has to rebuild the message.
type EmergencyContactResponse struct {
	Header       string  `json:"header"`
	FloatID      string  `json:"float_id"`
	HasLocation  bool    `json:"has_location"`
	Lat          float64 `json:"lat,omitempty"`
	Lon          float64 `json:"lon,omitempty"`
	Contact      string  `json:"contact"`
	Phone        string  `json:"phone"`
	Message      string  `json:"message"`
	MapsLink     string  `json:"maps_link"`
	TelLink      string  `json:"tel_link"`
	SMSLink      string  `json:"sms_link"`
	WhatsAppLink string  `json:"whatsapp_link"`
}
