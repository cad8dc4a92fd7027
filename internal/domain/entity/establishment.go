package entity

import "time"

// Establishment representa um restaurante/loja na plataforma.
// Slug é o identificador público da página do cardápio (único global).
type Establishment struct {
	ID          string
	Name        string
	Slug        string
	Segment     string // pizzaria, hamburgueria, japonesa...
	Description string
	LogoURL     string

	// Endereço (etapa 2 do onboarding)
	Street       string
	StreetNumber string
	Complement   string
	District     string
	City         string
	State        string
	ZipCode      string

	// Contato (etapa 3 do onboarding)
	Phone    string
	WhatsApp string
	Email    string

	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OpeningHour janela de funcionamento de um dia da semana (0 = domingo).
// Closed indica dia sem atendimento; nesse caso Opens/Closes ficam vazios.
type OpeningHour struct {
	ID              string
	EstablishmentID string
	Weekday         int
	Opens           string // "HH:MM"
	Closes          string // "HH:MM"
	Closed          bool
}

// PaymentMethod forma de pagamento aceita pelo estabelecimento.
type PaymentMethod struct {
	ID              string
	EstablishmentID string
	Kind            string // cash | credit_card | debit_card | pix | meal_voucher
	Enabled         bool
}
