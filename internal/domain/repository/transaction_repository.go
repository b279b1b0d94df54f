package repository

import "github.com/ecocycle/ecocycle-ims/internal/domain/entity"

// TransactionRepository define el puerto de persistencia para Transaction y sus líneas.
// Las transacciones son inmutables: no hay Update; Delete existe solo para la
// reversión completa (el caso de uso revierte el stock en la misma transacción de BD).
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	CreateItems(items []entity.TransactionItem) error
	GetByID(id string) (*entity.Transaction, error)
	Delete(id string) error
	Search(q SearchQuery) ([]*entity.Transaction, int, error)
}
