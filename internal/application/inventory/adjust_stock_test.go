package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reaksa/stockford-api/internal/application/dto"
	"github.com/reaksa/stockford-api/internal/application/inventory"
	"github.com/reaksa/stockford-api/internal/domain"
	"github.com/reaksa/stockford-api/internal/domain/entity"
)

func seedItem(t *testing.T, repo *fakeItemRepo, stockIn, stockOut int64) *entity.Item {
	t.Helper()
	now := time.Now()
	item := &entity.Item{
		ID:          "item-1",
		Description: "Tornillo 1/4",
		Unit:        "pcs",
		Category:    entity.CategoryAccessory,
		StockIn:     decimal.NewFromInt(stockIn),
		StockOut:    decimal.NewFromInt(stockOut),
		TotalStock:  decimal.NewFromInt(stockIn - stockOut),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, repo.Create(item))
	return item
}

func TestAdjust_Entrada_ActualizaNiveles(t *testing.T) {
	repo := newFakeItemRepo()
	seedItem(t, repo, 10, 4)
	uc := inventory.NewAdjustStockUseCase(&fakeTxRunner{repo: repo})

	out, err := uc.Adjust(context.Background(), "item-1", dto.StockAdjustmentRequest{
		Type:     entity.MovementTypeIn,
		Quantity: decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	assert.Equal(t, "Stock in updated successfully", out.Message)
	assert.True(t, out.Item.StockIn.Equal(decimal.NewFromInt(15)))
	assert.True(t, out.Item.TotalStock.Equal(decimal.NewFromInt(11)))

	stored, err := repo.GetByID("item-1")
	require.NoError(t, err)
	require.Len(t, stored.History, 1)
	assert.Equal(t, entity.MovementTypeIn, stored.History[0].Type)
	assert.Equal(t, "IN adjustment", stored.History[0].Notes, "sin notas debe usar la nota por defecto")
	assert.True(t, stored.History[0].Quantity.Equal(decimal.NewFromInt(5)))
}

func TestAdjust_Salida_DescuentaStock(t *testing.T) {
	repo := newFakeItemRepo()
	seedItem(t, repo, 10, 4)
	uc := inventory.NewAdjustStockUseCase(&fakeTxRunner{repo: repo})

	out, err := uc.Adjust(context.Background(), "item-1", dto.StockAdjustmentRequest{
		Type:     entity.MovementTypeOut,
		Quantity: decimal.NewFromInt(6),
		Notes:    "entrega a obra",
	})
	require.NoError(t, err)

	assert.Equal(t, "Stock out updated successfully", out.Message)
	assert.True(t, out.Item.StockOut.Equal(decimal.NewFromInt(10)))
	assert.True(t, out.Item.TotalStock.IsZero())

	stored, err := repo.GetByID("item-1")
	require.NoError(t, err)
	require.Len(t, stored.History, 1)
	assert.Equal(t, "entrega a obra", stored.History[0].Notes)
}

// Una salida mayor al disponible se rechaza completa: ni acumulados ni
// historial cambian.
func TestAdjust_StockInsuficiente_NoMutaNada(t *testing.T) {
	repo := newFakeItemRepo()
	seedItem(t, repo, 10, 4)
	uc := inventory.NewAdjustStockUseCase(&fakeTxRunner{repo: repo})

	_, err := uc.Adjust(context.Background(), "item-1", dto.StockAdjustmentRequest{
		Type:     entity.MovementTypeOut,
		Quantity: decimal.NewFromInt(7),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.True(t, insufficient.Available.Equal(decimal.NewFromInt(6)))
	assert.True(t, insufficient.Requested.Equal(decimal.NewFromInt(7)))
	assert.Equal(t, "Insufficient stock. Available: 6, Requested: 7", insufficient.Error())

	stored, err := repo.GetByID("item-1")
	require.NoError(t, err)
	assert.True(t, stored.StockOut.Equal(decimal.NewFromInt(4)))
	assert.True(t, stored.TotalStock.Equal(decimal.NewFromInt(6)))
	assert.Empty(t, stored.History)
}

func TestAdjust_TipoInvalido(t *testing.T) {
	repo := newFakeItemRepo()
	seedItem(t, repo, 10, 0)
	uc := inventory.NewAdjustStockUseCase(&fakeTxRunner{repo: repo})

	_, err := uc.Adjust(context.Background(), "item-1", dto.StockAdjustmentRequest{
		Type:     "transfer",
		Quantity: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjust_CantidadNoPositiva(t *testing.T) {
	repo := newFakeItemRepo()
	seedItem(t, repo, 10, 0)
	uc := inventory.NewAdjustStockUseCase(&fakeTxRunner{repo: repo})

	_, err := uc.Adjust(context.Background(), "item-1", dto.StockAdjustmentRequest{
		Type:     entity.MovementTypeIn,
		Quantity: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjust_ItemInexistente(t *testing.T) {
	repo := newFakeItemRepo()
	uc := inventory.NewAdjustStockUseCase(&fakeTxRunner{repo: repo})

	_, err := uc.Adjust(context.Background(), "no-such-item", dto.StockAdjustmentRequest{
		Type:     entity.MovementTypeIn,
		Quantity: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
