package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/pedeja/delivery-api/internal/application/dto"
	"github.com/pedeja/delivery-api/internal/domain"
	"github.com/pedeja/delivery-api/internal/domain/entity"
	"github.com/pedeja/delivery-api/internal/domain/repository"
)

// BannerUseCase CRUD de banners promocionais.
type BannerUseCase struct {
	repo repository.BannerRepository
}

// NewBannerUseCase constrói o caso de uso.
func NewBannerUseCase(repo repository.BannerRepository) *BannerUseCase {
	return &BannerUseCase{repo: repo}
}

// Create cria o banner já ativo.
func (uc *BannerUseCase) Create(establishmentID string, in dto.CreateBannerRequest) (*dto.BannerResponse, error) {
	now := time.Now()
	b := &entity.Banner{
		ID:              uuid.New().String(),
		EstablishmentID: establishmentID,
		Title:           in.Title,
		ImageURL:        in.ImageURL,
		LinkURL:         in.LinkURL,
		DisplayOrder:    in.DisplayOrder,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(b); err != nil {
		return nil, err
	}
	return toBannerResponse(b), nil
}

// List devolve os banners do estabelecimento, inativos incluídos.
func (uc *BannerUseCase) List(establishmentID string) ([]dto.BannerResponse, error) {
	banners, err := uc.repo.ListByEstablishment(establishmentID, false)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BannerResponse, 0, len(banners))
	for _, b := range banners {
		out = append(out, *toBannerResponse(b))
	}
	return out, nil
}

// Update aplica campos não nulos da requisição.
func (uc *BannerUseCase) Update(establishmentID, id string, in dto.UpdateBannerRequest) (*dto.BannerResponse, error) {
	b, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil || b.EstablishmentID != establishmentID {
		return nil, nil
	}
	if in.Title != nil {
		b.Title = *in.Title
	}
	if in.ImageURL != nil {
		b.ImageURL = *in.ImageURL
	}
	if in.LinkURL != nil {
		b.LinkURL = *in.LinkURL
	}
	if in.DisplayOrder != nil {
		b.DisplayOrder = *in.DisplayOrder
	}
	if in.Active != nil {
		b.Active = *in.Active
	}
	b.UpdatedAt = time.Now()
	if err := uc.repo.Update(b); err != nil {
		return nil, err
	}
	return toBannerResponse(b), nil
}

// Delete remove o banner do estabelecimento.
func (uc *BannerUseCase) Delete(establishmentID, id string) error {
	b, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if b == nil || b.EstablishmentID != establishmentID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toBannerResponse(b *entity.Banner) *dto.BannerResponse {
	return &dto.BannerResponse{
		ID:           b.ID,
		Title:        b.Title,
		ImageURL:     b.ImageURL,
		LinkURL:      b.LinkURL,
		DisplayOrder: b.DisplayOrder,
		Active:       b.Active,
		CreatedAt:    b.CreatedAt,
	}
}
