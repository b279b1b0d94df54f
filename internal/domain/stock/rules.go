// Package stock implementa las reglas puras de mutación de inventario
// (servicio de dominio). Las cantidades quantity, reserved y available se
// actualizan siempre juntas; la atomicidad la aporta la transacción de BD
// que envuelve a estas funciones.
package stock

import (
	"github.com/shopspring/decimal"

	"github.com/ecocycle/ecocycle-ims/internal/domain"
	"github.com/ecocycle/ecocycle-ims/internal/domain/entity"
)

// Apply aplica una línea de transacción sobre la fila de inventario:
//
//	STOCK_IN / RETURN:              quantity += q; available += q
//	STOCK_OUT / WASTE / RECYCLING:  exige available >= q; quantity -= q; available -= q
//	ADJUSTMENT:                     quantity = q (absoluto); available = max(0, q - reserved)
//
// Para ADJUSTMENT devuelve la cantidad anterior, que la línea debe persistir
// para poder revertir la transacción después.
func Apply(inv *entity.Inventory, txType string, qty decimal.Decimal) (previous *decimal.Decimal, err error) {
	if qty.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	switch {
	case entity.InboundType(txType):
		inv.Quantity = inv.Quantity.Add(qty)
		inv.Available = inv.Available.Add(qty)
		return nil, nil
	case entity.OutboundType(txType):
		if inv.Available.LessThan(qty) {
			return nil, domain.ErrInsufficientStock
		}
		inv.Quantity = inv.Quantity.Sub(qty)
		inv.Available = inv.Available.Sub(qty)
		return nil, nil
	case txType == entity.TransactionTypeAdjustment:
		prev := inv.Quantity
		inv.Quantity = qty
		inv.Available = qty.Sub(inv.Reserved)
		if inv.Available.LessThan(decimal.Zero) {
			inv.Available = decimal.Zero
		}
		return &prev, nil
	}
	return nil, domain.ErrInvalidInput
}

// Revert deshace el efecto de una línea ya aplicada (espejo exacto de Apply):
// las entradas se restan, las salidas se suman y el ADJUSTMENT restaura la
// cantidad previa registrada en la línea.
func Revert(inv *entity.Inventory, txType string, qty decimal.Decimal, previous *decimal.Decimal) error {
	switch {
	case entity.InboundType(txType):
		if inv.Available.LessThan(qty) {
			// ya se comprometió o consumió lo que entró; no se puede revertir
			return domain.ErrInsufficientStock
		}
		inv.Quantity = inv.Quantity.Sub(qty)
		inv.Available = inv.Available.Sub(qty)
		return nil
	case entity.OutboundType(txType):
		inv.Quantity = inv.Quantity.Add(qty)
		inv.Available = inv.Available.Add(qty)
		return nil
	case txType == entity.TransactionTypeAdjustment:
		if previous == nil {
			return domain.ErrInvalidInput
		}
		inv.Quantity = *previous
		inv.Available = previous.Sub(inv.Reserved)
		if inv.Available.LessThan(decimal.Zero) {
			inv.Available = decimal.Zero
		}
		return nil
	}
	return domain.ErrInvalidInput
}

// Reserve compromete stock para un pedido: reserved += q; available -= q.
// Exige available >= q.
func Reserve(inv *entity.Inventory, qty decimal.Decimal) error {
	if !qty.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if inv.Available.LessThan(qty) {
		return domain.ErrInsufficientStock
	}
	inv.Reserved = inv.Reserved.Add(qty)
	inv.Available = inv.Available.Sub(qty)
	return nil
}

// Release libera una reserva sin mover stock físico (pedido cancelado).
func Release(inv *entity.Inventory, qty decimal.Decimal) error {
	if !qty.GreaterThan(decimal.Zero) || inv.Reserved.LessThan(qty) {
		return domain.ErrInvalidInput
	}
	inv.Reserved = inv.Reserved.Sub(qty)
	inv.Available = inv.Available.Add(qty)
	return nil
}

// Consume descarga stock reservado al despachar: quantity -= q; reserved -= q.
// Available no cambia porque la cantidad ya estaba comprometida.
func Consume(inv *entity.Inventory, qty decimal.Decimal) error {
	if !qty.GreaterThan(decimal.Zero) || inv.Reserved.LessThan(qty) {
		return domain.ErrInvalidInput
	}
	inv.Quantity = inv.Quantity.Sub(qty)
	inv.Reserved = inv.Reserved.Sub(qty)
	return nil
}

// Restock reingresa stock físico (pedido devuelto): quantity += q; available += q.
func Restock(inv *entity.Inventory, qty decimal.Decimal) error {
	if !qty.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	inv.Quantity = inv.Quantity.Add(qty)
	inv.Available = inv.Available.Add(qty)
	return nil
}
