package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecocycle/ecocycle-ims/internal/domain"
	"github.com/ecocycle/ecocycle-ims/internal/domain/entity"
	"github.com/ecocycle/ecocycle-ims/internal/domain/order"
)

// El flujo feliz completo NEW → … → DELIVERED debe estar permitido paso a paso.
func TestGuard_FlujoFeliz(t *testing.T) {
	path := []string{
		entity.OrderStatusNew,
		entity.OrderStatusProcessing,
		entity.OrderStatusPicking,
		entity.OrderStatusPacked,
		entity.OrderStatusShipped,
		entity.OrderStatusDelivered,
	}
	for i := 0; i < len(path)-1; i++ {
		assert.NoError(t, order.Guard(path[i], path[i+1]), "%s → %s", path[i], path[i+1])
	}
}

// Transiciones fuera de la tabla se rechazan.
func TestGuard_TransicionesIlegales(t *testing.T) {
	cases := [][2]string{
		{entity.OrderStatusNew, entity.OrderStatusShipped},      // saltarse el flujo
		{entity.OrderStatusShipped, entity.OrderStatusNew},      // retroceder
		{entity.OrderStatusCancelled, entity.OrderStatusNew},    // revivir cancelado
		{entity.OrderStatusDelivered, entity.OrderStatusPacked}, // retroceder entregado
		{entity.OrderStatusReturned, entity.OrderStatusShipped}, // estado terminal
		{entity.OrderStatusNew, entity.OrderStatusReturned},     // devolver sin despachar
	}
	for _, c := range cases {
		assert.ErrorIs(t, order.Guard(c[0], c[1]), domain.ErrInvalidTransition, "%s → %s", c[0], c[1])
	}
}

// Cancelar es válido desde cualquier estado previo al despacho.
func TestGuard_CancelacionAntesDeDespacho(t *testing.T) {
	for _, from := range []string{
		entity.OrderStatusNew, entity.OrderStatusProcessing,
		entity.OrderStatusPicking, entity.OrderStatusPacked,
	} {
		assert.NoError(t, order.Guard(from, entity.OrderStatusCancelled), from)
	}
	// pero no después de despachar
	assert.Error(t, order.Guard(entity.OrderStatusShipped, entity.OrderStatusCancelled))
}

// Devolver solo aplica a pedidos despachados o entregados.
func TestGuard_Devolucion(t *testing.T) {
	assert.NoError(t, order.Guard(entity.OrderStatusShipped, entity.OrderStatusReturned))
	assert.NoError(t, order.Guard(entity.OrderStatusDelivered, entity.OrderStatusReturned))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, order.ValidStatus(entity.OrderStatusPicking))
	assert.False(t, order.ValidStatus("ARCHIVED"))
}
