// Package order define la máquina de estados de los pedidos como una tabla
// de adyacencia fija (servicio de dominio).
package order

import (
	"github.com/ecocycle/ecocycle-ims/internal/domain"
	"github.com/ecocycle/ecocycle-ims/internal/domain/entity"
)

// transitions tabla de transiciones legales por estado actual.
// Un estado ausente del mapa es terminal.
var transitions = map[string][]string{
	entity.OrderStatusNew:        {entity.OrderStatusProcessing, entity.OrderStatusCancelled},
	entity.OrderStatusProcessing: {entity.OrderStatusPicking, entity.OrderStatusCancelled},
	entity.OrderStatusPicking:    {entity.OrderStatusPacked, entity.OrderStatusCancelled},
	entity.OrderStatusPacked:     {entity.OrderStatusShipped, entity.OrderStatusCancelled},
	entity.OrderStatusShipped:    {entity.OrderStatusDelivered, entity.OrderStatusReturned},
	entity.OrderStatusDelivered:  {entity.OrderStatusReturned},
}

// CanTransition indica si el paso from → to está permitido.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Guard valida la transición y devuelve ErrInvalidTransition si no está en la tabla.
func Guard(from, to string) error {
	if !CanTransition(from, to) {
		return domain.ErrInvalidTransition
	}
	return nil
}

// ValidStatus valida un estado contra el catálogo.
func ValidStatus(s string) bool {
	switch s {
	case entity.OrderStatusNew, entity.OrderStatusProcessing, entity.OrderStatusPicking,
		entity.OrderStatusPacked, entity.OrderStatusShipped, entity.OrderStatusDelivered,
		entity.OrderStatusCancelled, entity.OrderStatusReturned:
		return true
	}
	return false
}
