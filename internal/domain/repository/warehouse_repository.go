package repository

import "github.com/ecocycle/ecocycle-ims/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	GetByCode(code string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	Delete(id string) error
	Search(q SearchQuery) ([]*entity.Warehouse, int, error)
}
