package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/pedeja/delivery-api/internal/application/dto"
	"github.com/pedeja/delivery-api/internal/domain"
	"github.com/pedeja/delivery-api/internal/domain/entity"
	"github.com/pedeja/delivery-api/internal/domain/repository"
)

// CategoryUseCase CRUD de categorias do cardápio.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase constrói o caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create cria a categoria. Nome duplicado no estabelecimento devolve ErrDuplicate.
func (uc *CategoryUseCase) Create(establishmentID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	now := time.Now()
	cat := &entity.Category{
		ID:              uuid.New().String(),
		EstablishmentID: establishmentID,
		Name:            in.Name,
		Description:     in.Description,
		DisplayOrder:    in.DisplayOrder,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// List devolve as categorias do estabelecimento, inativas incluídas.
func (uc *CategoryUseCase) List(establishmentID string) ([]dto.CategoryResponse, error) {
	cats, err := uc.repo.ListByEstablishment(establishmentID, false)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// Update aplica campos não nulos da requisição.
func (uc *CategoryUseCase) Update(establishmentID, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil || cat.EstablishmentID != establishmentID {
		return nil, nil
	}
	if in.Name != nil {
		cat.Name = *in.Name
	}
	if in.Description != nil {
		cat.Description = *in.Description
	}
	if in.DisplayOrder != nil {
		cat.DisplayOrder = *in.DisplayOrder
	}
	if in.Active != nil {
		cat.Active = *in.Active
	}
	cat.UpdatedAt = time.Now()
	if err := uc.repo.Update(cat); err != nil {
		return nil, err
	}
	return toCategoryResponse(cat), nil
}

// Delete remove a categoria do estabelecimento.
func (uc *CategoryUseCase) Delete(establishmentID, id string) error {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cat == nil || cat.EstablishmentID != establishmentID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		DisplayOrder: c.DisplayOrder,
		Active:       c.Active,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
