package dto

// Etapas fixas do assistente de onboarding, em ordem linear.
const (
	StepBasicInfo = 1
	StepAddress   = 2
	StepContact   = 3
	StepHours     = 4
	StepPayment   = 5
	StepCount     = 5
)

// OnboardingBasicInfo etapa 1: dados básicos + slug da página pública.
type OnboardingBasicInfo struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Slug        string `json:"slug" validate:"required,slug"`
	Segment     string `json:"segment" validate:"required,min=2,max=60"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// OnboardingAddress etapa 2: endereço do estabelecimento.
type OnboardingAddress struct {
	Street       string `json:"street" validate:"required,min=2,max=160"`
	StreetNumber string `json:"street_number" validate:"required,max=20"`
	Complement   string `json:"complement" validate:"omitempty,max=80"`
	District     string `json:"district" validate:"required,min=2,max=80"`
	City         string `json:"city" validate:"required,min=2,max=80"`
	State        string `json:"state" validate:"required,len=2"`
	ZipCode      string `json:"zip_code" validate:"required,len=8"`
}

// OnboardingContact etapa 3: canais de contato.
type OnboardingContact struct {
	Phone    string `json:"phone" validate:"required,br_phone"`
	WhatsApp string `json:"whatsapp" validate:"omitempty,br_phone"`
	Email    string `json:"email" validate:"required,email"`
}

// OnboardingHour janela de funcionamento de um dia (0 = domingo).
type OnboardingHour struct {
	Weekday int    `json:"weekday" validate:"min=0,max=6"`
	Opens   string `json:"opens" validate:"omitempty,hour_24h"`
	Closes  string `json:"closes" validate:"omitempty,hour_24h"`
	Closed  bool   `json:"closed"`
}

// OnboardingHours etapa 4: horários dos sete dias da semana.
type OnboardingHours struct {
	Hours []OnboardingHour `json:"hours" validate:"required,len=7,dive"`
}

// OnboardingPayment etapa 5: formas de pagamento aceitas.
type OnboardingPayment struct {
	Methods []string `json:"methods" validate:"required,min=1,dive,oneof=cash credit_card debit_card pix meal_voucher"`
}

// OnboardingDraft agregado das cinco etapas, persistido no draft store por 7 dias.
// Ponteiros nulos indicam etapa ainda não preenchida.
type OnboardingDraft struct {
	ID          string               `json:"id"`
	CurrentStep int                  `json:"current_step"`
	BasicInfo   *OnboardingBasicInfo `json:"basic_info,omitempty"`
	Address     *OnboardingAddress   `json:"address,omitempty"`
	Contact     *OnboardingContact   `json:"contact,omitempty"`
	Hours       *OnboardingHours     `json:"hours,omitempty"`
	Payment     *OnboardingPayment   `json:"payment,omitempty"`
	// SlugChecked/SlugAvailable resultado da última verificação de slug.
	// SlugChecked vazio significa verificação não resolvida.
	SlugChecked   string `json:"slug_checked,omitempty"`
	SlugAvailable bool   `json:"slug_available,omitempty"`
}

// OnboardingStateResponse rascunho + validade por etapa para o assistente.
type OnboardingStateResponse struct {
	Draft      OnboardingDraft `json:"draft"`
	StepsValid [StepCount]bool `json:"steps_valid"`
	CanSubmit  bool            `json:"can_submit"`
}

// SlugAvailabilityResponse resposta da checagem de disponibilidade de slug.
type SlugAvailabilityResponse struct {
	Slug      string `json:"slug"`
	Available bool   `json:"available"`
}

// OnboardingSubmitResponse resultado da submissão final do onboarding.
type OnboardingSubmitResponse struct {
	EstablishmentID string `json:"establishment_id"`
	Slug            string `json:"slug"`
}

// GotoStepRequest navegação explícita do assistente.
type GotoStepRequest struct {
	Step int `json:"step" validate:"required,min=1,max=5"`
}
