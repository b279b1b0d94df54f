package repository

import "github.com/ecocycle/ecocycle-ims/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
	Search(q SearchQuery) ([]*entity.Category, int, error)
}
