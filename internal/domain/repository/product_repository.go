package repository

import "github.com/ecocycle/ecocycle-ims/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	GetByIDs(ids []string) (map[string]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	Search(q SearchQuery) ([]*entity.Product, int, error)
}
