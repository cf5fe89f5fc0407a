package inventory

import (
	"context"

	"github.com/jhoicas/stoqr-api/internal/domain"
	"github.com/jhoicas/stoqr-api/internal/domain/repository"
)

// LabelUseCase genera la etiqueta imprimible de un stock activo.
type LabelUseCase struct {
	stockRepo repository.StockRepository
	generator LabelGenerator
	qrHost    string
}

// NewLabelUseCase construye el caso de uso. qrHost debe coincidir con el del StockLedger.
func NewLabelUseCase(stockRepo repository.StockRepository, generator LabelGenerator, qrHost string) *LabelUseCase {
	return &LabelUseCase{stockRepo: stockRepo, generator: generator, qrHost: qrHost}
}

// DownloadLabel devuelve (pdfBytes, filename, nil); domain.ErrNotFound si el stock no existe o está inactivo.
func (uc *LabelUseCase) DownloadLabel(ctx context.Context, id string) (pdfBytes []byte, filename string, err error) {
	stock, err := uc.stockRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, "", domain.Dependency("obtener stock", err)
	}
	if stock == nil || !stock.IsActive() {
		return nil, "", domain.ErrNotFound
	}
	pdfBytes, err = uc.generator.GenerateLabel(ctx, stock, uc.qrHost+stock.Code)
	if err != nil {
		return nil, "", domain.Dependency("generar etiqueta", err)
	}
	return pdfBytes, "etiqueta-" + stock.Code + ".pdf", nil
}
