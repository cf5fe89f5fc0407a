package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stoqr-api/internal/domain/entity"
	"github.com/jhoicas/stoqr-api/internal/domain/repository"
)

func TestGenerateLabel_ProducesPDF(t *testing.T) {
	stock := &repository.StockDetail{
		Stock: entity.Stock{
			Code:         "CELIK1",
			Name:         "Tornillo de acero",
			SellingPrice: 25000,
		},
		CategoryName: "Ferretería",
		LocationName: "Bodega A",
	}

	out, err := NewMarotoLabelGenerator().GenerateLabel(context.Background(), stock, "https://stoqr.test/CELIK1")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "999", formatMoney("999"))
	assert.Equal(t, "25.000", formatMoney("25000"))
	assert.Equal(t, "1.000.000", formatMoney("1000000"))
}
