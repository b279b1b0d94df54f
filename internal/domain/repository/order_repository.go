package repository

import "github.com/ecocycle/ecocycle-ims/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order y sus líneas.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItems(items []entity.OrderItem) error
	GetByID(id string) (*entity.Order, error)
	UpdateStatus(order *entity.Order) error
	Search(q SearchQuery) ([]*entity.Order, int, error)
}
