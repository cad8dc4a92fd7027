package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/pedeja/delivery-api/internal/application/dto"
	"github.com/pedeja/delivery-api/internal/domain"
	"github.com/pedeja/delivery-api/internal/domain/entity"
	"github.com/pedeja/delivery-api/internal/domain/repository"
)

// ProductUseCase CRUD de produtos do cardápio.
type ProductUseCase struct {
	repo    repository.ProductRepository
	catRepo repository.CategoryRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository, catRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, catRepo: catRepo}
}

// Create cria o produto. A categoria deve existir e pertencer ao estabelecimento.
func (uc *ProductUseCase) Create(establishmentID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	cat, err := uc.catRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil || cat.EstablishmentID != establishmentID {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	p := &entity.Product{
		ID:              uuid.New().String(),
		EstablishmentID: establishmentID,
		CategoryID:      in.CategoryID,
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		ImageURL:        in.ImageURL,
		Available:       true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetByID devolve o produto do estabelecimento ou nil.
func (uc *ProductUseCase) GetByID(establishmentID, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.EstablishmentID != establishmentID {
		return nil, nil
	}
	return toProductResponse(p), nil
}

// List devolve os produtos paginados do estabelecimento.
func (uc *ProductUseCase) List(establishmentID string, limit, offset int) (*dto.ProductListResponse, error) {
	items, err := uc.repo.ListByEstablishment(establishmentID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(items))
	for _, p := range items {
		out = append(out, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica campos não nulos. Troca de categoria é revalidada.
func (uc *ProductUseCase) Update(establishmentID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.EstablishmentID != establishmentID {
		return nil, nil
	}
	if in.CategoryID != nil {
		cat, err := uc.catRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil || cat.EstablishmentID != establishmentID {
			return nil, domain.ErrNotFound
		}
		p.CategoryID = *in.CategoryID
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.Available != nil {
		p.Available = *in.Available
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// SetAvailability liga/desliga a exibição do produto na vitrine.
func (uc *ProductUseCase) SetAvailability(establishmentID, id string, available bool) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil || p.EstablishmentID != establishmentID {
		return domain.ErrNotFound
	}
	return uc.repo.SetAvailability(id, available)
}

// Delete remove o produto do estabelecimento.
func (uc *ProductUseCase) Delete(establishmentID, id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil || p.EstablishmentID != establishmentID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Available:   p.Available,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
