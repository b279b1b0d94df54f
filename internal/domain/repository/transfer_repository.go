package repository

import "github.com/ecocycle/ecocycle-ims/internal/domain/entity"

// TransferRepository define el puerto de persistencia para Transfer y sus líneas.
// NextSequence devuelve el siguiente consecutivo del año para numerar el traslado
// (TRF-YYYY-NNNNN); la implementación usa la secuencia de la DB para evitar duplicados.
type TransferRepository interface {
	Create(transfer *entity.Transfer) error
	CreateItems(items []entity.TransferItem) error
	GetByID(id string) (*entity.Transfer, error)
	UpdateStatus(transfer *entity.Transfer) error
	NextSequence(year int) (int, error)
	Search(q SearchQuery) ([]*entity.Transfer, int, error)
}
