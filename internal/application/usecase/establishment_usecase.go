package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/pedeja/delivery-api/internal/application/dto"
	"github.com/pedeja/delivery-api/internal/domain"
	"github.com/pedeja/delivery-api/internal/domain/entity"
	"github.com/pedeja/delivery-api/internal/domain/repository"
)

// EstablishmentUseCase configurações do estabelecimento no painel:
// perfil, horários de funcionamento e formas de pagamento.
type EstablishmentUseCase struct {
	repo repository.EstablishmentRepository
}

// NewEstablishmentUseCase constrói o caso de uso.
func NewEstablishmentUseCase(repo repository.EstablishmentRepository) *EstablishmentUseCase {
	return &EstablishmentUseCase{repo: repo}
}

// Settings devolve o perfil com horários e formas de pagamento.
func (uc *EstablishmentUseCase) Settings(establishmentID string) (*dto.EstablishmentSettingsResponse, error) {
	est, err := uc.repo.GetByID(establishmentID)
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, domain.ErrNotFound
	}
	hours, err := uc.repo.ListOpeningHours(establishmentID)
	if err != nil {
		return nil, err
	}
	methods, err := uc.repo.ListPaymentMethods(establishmentID)
	if err != nil {
		return nil, err
	}
	hourDTOs := make([]dto.OpeningHourDTO, 0, len(hours))
	for _, h := range hours {
		hourDTOs = append(hourDTOs, dto.OpeningHourDTO{
			Weekday: h.Weekday, Opens: h.Opens, Closes: h.Closes, Closed: h.Closed,
		})
	}
	methodDTOs := make([]dto.PaymentMethodDTO, 0, len(methods))
	for _, m := range methods {
		methodDTOs = append(methodDTOs, dto.PaymentMethodDTO{Kind: m.Kind, Enabled: m.Enabled})
	}
	return &dto.EstablishmentSettingsResponse{
		Establishment:  *toEstablishmentResponse(est),
		OpeningHours:   hourDTOs,
		PaymentMethods: methodDTOs,
	}, nil
}

// UpdateProfile aplica campos não nulos ao perfil. O slug nunca muda.
func (uc *EstablishmentUseCase) UpdateProfile(establishmentID string, in dto.UpdateEstablishmentRequest) (*dto.EstablishmentResponse, error) {
	est, err := uc.repo.GetByID(establishmentID)
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, domain.ErrNotFound
	}
	applyIf := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyIf(&est.Name, in.Name)
	applyIf(&est.Segment, in.Segment)
	applyIf(&est.Description, in.Description)
	applyIf(&est.LogoURL, in.LogoURL)
	applyIf(&est.Street, in.Street)
	applyIf(&est.StreetNumber, in.StreetNumber)
	applyIf(&est.Complement, in.Complement)
	applyIf(&est.District, in.District)
	applyIf(&est.City, in.City)
	applyIf(&est.State, in.State)
	applyIf(&est.ZipCode, in.ZipCode)
	applyIf(&est.Phone, in.Phone)
	applyIf(&est.WhatsApp, in.WhatsApp)
	applyIf(&est.Email, in.Email)
	if in.Active != nil {
		est.Active = *in.Active
	}
	est.UpdatedAt = time.Now()
	if err := uc.repo.Update(est); err != nil {
		return nil, err
	}
	return toEstablishmentResponse(est), nil
}

// ReplaceOpeningHours substitui os horários. Dia aberto exige opens e closes.
func (uc *EstablishmentUseCase) ReplaceOpeningHours(establishmentID string, in dto.ReplaceOpeningHoursRequest) error {
	hours := make([]entity.OpeningHour, 0, len(in.Hours))
	for _, h := range in.Hours {
		if !h.Closed && (h.Opens == "" || h.Closes == "") {
			return domain.ErrInvalidInput
		}
		hours = append(hours, entity.OpeningHour{
			ID:              uuid.New().String(),
			EstablishmentID: establishmentID,
			Weekday:         h.Weekday,
			Opens:           h.Opens,
			Closes:          h.Closes,
			Closed:          h.Closed,
		})
	}
	return uc.repo.ReplaceOpeningHours(establishmentID, hours)
}

// ReplacePaymentMethods substitui as formas de pagamento aceitas.
func (uc *EstablishmentUseCase) ReplacePaymentMethods(establishmentID string, in dto.ReplacePaymentMethodsRequest) error {
	methods := make([]entity.PaymentMethod, 0, len(in.Methods))
	for _, kind := range in.Methods {
		methods = append(methods, entity.PaymentMethod{
			ID:              uuid.New().String(),
			EstablishmentID: establishmentID,
			Kind:            kind,
			Enabled:         true,
		})
	}
	return uc.repo.ReplacePaymentMethods(establishmentID, methods)
}

func toEstablishmentResponse(e *entity.Establishment) *dto.EstablishmentResponse {
	return &dto.EstablishmentResponse{
		ID:           e.ID,
		Name:         e.Name,
		Slug:         e.Slug,
		Segment:      e.Segment,
		Description:  e.Description,
		LogoURL:      e.LogoURL,
		Street:       e.Street,
		StreetNumber: e.StreetNumber,
		Complement:   e.Complement,
		District:     e.District,
		City:         e.City,
		State:        e.State,
		ZipCode:      e.ZipCode,
		Phone:        e.Phone,
		WhatsApp:     e.WhatsApp,
		Email:        e.Email,
		Active:       e.Active,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
