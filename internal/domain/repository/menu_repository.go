package repository

import "github.com/pedeja/delivery-api/internal/domain/entity"

// CategoryRepository define o porto de persistência para Category (DIP).
type CategoryRepository interface {
	Create(cat *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	ListByEstablishment(establishmentID string, onlyActive bool) ([]*entity.Category, error)
	Update(cat *entity.Category) error
	Delete(id string) error
}

// ProductRepository define o porto de persistência para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	ListByEstablishment(establishmentID string, limit, offset int) ([]*entity.Product, error)
	ListByCategory(categoryID string, onlyAvailable bool) ([]*entity.Product, error)
	Update(product *entity.Product) error
	SetAvailability(id string, available bool) error
	Delete(id string) error
}
