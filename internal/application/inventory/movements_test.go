package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stoqr-api/internal/application/dto"
	appinv "github.com/jhoicas/stoqr-api/internal/application/inventory"
	"github.com/jhoicas/stoqr-api/internal/domain/entity"
)

func TestMovementRecorder_ListByStockEnOrden(t *testing.T) {
	f := newLedger()
	created := f.mustCreate(t, "ABC1", 10, 5)
	_, err := f.ledger.AdjustCount(context.Background(), testActor, created.ID, dto.AdjustCountRequest{StockChange: i64(2)})
	require.NoError(t, err)
	f.mustCreate(t, "OTR1", 1, 1)

	rec := appinv.NewMovementRecorder(&stubMovementRepo{store: f.store})
	out, err := rec.ListByStock(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, entity.MovementTypeCreate, out.Items[0].Type)
	assert.Equal(t, entity.MovementTypeIncrease, out.Items[1].Type)
	assert.Equal(t, "ABC1", out.Items[1].Stock.Code)
	assert.Equal(t, "Ana", out.Items[1].CreatedByName)
}

func TestMovementRecorder_ListRecent(t *testing.T) {
	f := newLedger()
	f.mustCreate(t, "AAA1", 1, 1)
	f.mustCreate(t, "BBB1", 1, 1)
	f.mustCreate(t, "CCC1", 1, 1)

	repo := &stubMovementRepo{store: f.store}
	rec := appinv.NewMovementRecorder(repo)

	out, err := rec.ListRecent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, f.store.movements[2].ID, out.Items[0].ID)
	assert.Equal(t, f.store.movements[1].ID, out.Items[1].ID)

	for _, limit := range []int{0, -3} {
		out, err = rec.ListRecent(context.Background(), limit)
		require.NoError(t, err)
		assert.Empty(t, out.Items)
	}
	assert.Equal(t, 1, repo.recentCall, "limit <= 0 no consulta el repositorio")
}
