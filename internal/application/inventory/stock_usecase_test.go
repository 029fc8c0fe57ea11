package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-soft/joyeria-api/internal/application/inventory"
	"github.com/atelier-soft/joyeria-api/internal/domain"
	"github.com/atelier-soft/joyeria-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// ApplyOperation — ADD/REMOVE/SET sin cota inferior
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyOperation_AddRemoveSet(t *testing.T) {
	newStock, delta, err := inventory.ApplyOperation(10, entity.StockOpAdd, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, newStock)
	assert.Equal(t, 5, delta)

	newStock, delta, err = inventory.ApplyOperation(10, entity.StockOpRemove, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, newStock)
	assert.Equal(t, -4, delta)

	newStock, delta, err = inventory.ApplyOperation(10, entity.StockOpSet, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, newStock)
	assert.Equal(t, -7, delta)
}

func TestApplyOperation_RemoveDespuesAdd_RestauraExacto(t *testing.T) {
	// REMOVE(q) seguido de ADD(q) restaura el valor original exactamente.
	after, _, err := inventory.ApplyOperation(7, entity.StockOpRemove, 3)
	require.NoError(t, err)
	restored, _, err := inventory.ApplyOperation(after, entity.StockOpAdd, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, restored)
}

func TestApplyOperation_PuedeQuedarNegativo(t *testing.T) {
	// El stock negativo representa sobreventa; nunca es un error.
	newStock, _, err := inventory.ApplyOperation(2, entity.StockOpRemove, 5)
	require.NoError(t, err)
	assert.Equal(t, -3, newStock)
}

func TestApplyOperation_CantidadInvalida(t *testing.T) {
	_, _, err := inventory.ApplyOperation(10, entity.StockOpAdd, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = inventory.ApplyOperation(10, entity.StockOpRemove, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = inventory.ApplyOperation(10, entity.StockOpSet, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = inventory.ApplyOperation(10, "MULTIPLY", 2)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// ClassifyStock — límites del umbral
// ──────────────────────────────────────────────────────────────────────────────

func TestClassifyStock_Limites(t *testing.T) {
	// Exactamente en el umbral clasifica como LOW, no NORMAL.
	assert.Equal(t, entity.StockStatusLow, entity.ClassifyStock(5, 5))
	assert.Equal(t, entity.StockStatusNormal, entity.ClassifyStock(6, 5))
	assert.Equal(t, entity.StockStatusLow, entity.ClassifyStock(0, 5))
	// -1 es NEGATIVE sin importar el umbral.
	assert.Equal(t, entity.StockStatusNegative, entity.ClassifyStock(-1, 5))
	assert.Equal(t, entity.StockStatusNegative, entity.ClassifyStock(-1, 0))
}
