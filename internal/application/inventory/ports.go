package inventory

import (
	"context"

	"github.com/jhoicas/stoqr-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que la escritura del stock y el movimiento del libro se confirmen juntos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
	) error) error
}

// QREncoder codifica un payload como imagen QR (data URL).
type QREncoder interface {
	Encode(ctx context.Context, payload string) (string, error)
}

// LabelGenerator genera la etiqueta imprimible (PDF) de un stock.
type LabelGenerator interface {
	GenerateLabel(ctx context.Context, stock *repository.StockDetail, qrPayload string) ([]byte, error)
}
