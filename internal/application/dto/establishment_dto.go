package dto

import "time"

// UpdateEstablishmentRequest atualização do perfil pelo painel.
// O slug não é editável após o onboarding.
type UpdateEstablishmentRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=120"`
	Segment     *string `json:"segment" validate:"omitempty,min=2,max=60"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	LogoURL     *string `json:"logo_url" validate:"omitempty,url"`

	Street       *string `json:"street" validate:"omitempty,min=2,max=160"`
	StreetNumber *string `json:"street_number" validate:"omitempty,max=20"`
	Complement   *string `json:"complement" validate:"omitempty,max=80"`
	District     *string `json:"district" validate:"omitempty,min=2,max=80"`
	City         *string `json:"city" validate:"omitempty,min=2,max=80"`
	State        *string `json:"state" validate:"omitempty,len=2"`
	ZipCode      *string `json:"zip_code" validate:"omitempty,len=8"`

	Phone    *string `json:"phone" validate:"omitempty,br_phone"`
	WhatsApp *string `json:"whatsapp" validate:"omitempty,br_phone"`
	Email    *string `json:"email" validate:"omitempty,email"`

	Active *bool `json:"active"`
}

// OpeningHourDTO janela de funcionamento exposta nas configurações.
type OpeningHourDTO struct {
	Weekday int    `json:"weekday" validate:"min=0,max=6"`
	Opens   string `json:"opens" validate:"omitempty,hour_24h"`
	Closes  string `json:"closes" validate:"omitempty,hour_24h"`
	Closed  bool   `json:"closed"`
}

// ReplaceOpeningHoursRequest substituição integral dos horários.
type ReplaceOpeningHoursRequest struct {
	Hours []OpeningHourDTO `json:"hours" validate:"required,len=7,dive"`
}

// PaymentMethodDTO forma de pagamento exposta nas configurações.
type PaymentMethodDTO struct {
	Kind    string `json:"kind"`
	Enabled bool   `json:"enabled"`
}

// ReplacePaymentMethodsRequest substituição integral das formas de pagamento.
type ReplacePaymentMethodsRequest struct {
	Methods []string `json:"methods" validate:"required,min=1,dive,oneof=cash credit_card debit_card pix meal_voucher"`
}

// EstablishmentResponse perfil completo para o painel.
type EstablishmentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Segment     string `json:"segment,omitempty"`
	Description string `json:"description,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`

	Street       string `json:"street,omitempty"`
	StreetNumber string `json:"street_number,omitempty"`
	Complement   string `json:"complement,omitempty"`
	District     string `json:"district,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	ZipCode      string `json:"zip_code,omitempty"`

	Phone    string `json:"phone,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`
	Email    string `json:"email,omitempty"`

	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EstablishmentSettingsResponse perfil + horários + formas de pagamento.
type EstablishmentSettingsResponse struct {
	Establishment  EstablishmentResponse `json:"establishment"`
	OpeningHours   []OpeningHourDTO      `json:"opening_hours"`
	PaymentMethods []PaymentMethodDTO    `json:"payment_methods"`
}
