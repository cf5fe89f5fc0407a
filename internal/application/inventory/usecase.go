package inventory

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stoqr-api/internal/application/dto"
	"github.com/jhoicas/stoqr-api/internal/application/validation"
	"github.com/jhoicas/stoqr-api/internal/domain"
	"github.com/jhoicas/stoqr-api/internal/domain/entity"
	"github.com/jhoicas/stoqr-api/internal/domain/inventory"
	"github.com/jhoicas/stoqr-api/internal/domain/repository"
	"github.com/jhoicas/stoqr-api/pkg/logger"
)

// StockLedger administra el ciclo de vida de los stocks. Cada mutación escribe el stock
// y su movimiento en una misma transacción, con la fila bloqueada (SELECT FOR UPDATE).
type StockLedger struct {
	txRunner  TxRunner
	stockRepo repository.StockRepository
	qr        QREncoder
	qrHost    string
	log       *logger.Logger
}

// NewStockLedger construye el caso de uso. qrHost es el prefijo del payload QR (host + código).
func NewStockLedger(
	txRunner TxRunner,
	stockRepo repository.StockRepository,
	qr QREncoder,
	qrHost string,
	log *logger.Logger,
) *StockLedger {
	return &StockLedger{
		txRunner:  txRunner,
		stockRepo: stockRepo,
		qr:        qr,
		qrHost:    qrHost,
		log:       log,
	}
}

// Create normaliza y valida la entrada, genera el QR y persiste el stock con un movimiento Create.
func (uc *StockLedger) Create(ctx context.Context, actorID string, in dto.StockRequest) (*dto.StockResponse, error) {
	in.Code = inventory.NormalizeCode(in.Code)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	qrCode, err := uc.qr.Encode(ctx, uc.qrHost+in.Code)
	if err != nil {
		return nil, uc.dependency("codificar QR", err)
	}

	now := time.Now().UTC()
	stock := &entity.Stock{
		ID:                uuid.New().String(),
		Code:              in.Code,
		Name:              in.Name,
		Status:            entity.StockStatusActive,
		CategoryID:        in.CategoryID,
		LocationID:        in.LocationID,
		CriticalityLevel:  *in.CriticalityLevel,
		CriticalityStatus: inventory.CriticalityStatus(*in.StockCount, *in.CriticalityLevel),
		StockCount:        *in.StockCount,
		BuyingPrice:       *in.BuyingPrice,
		SellingPrice:      *in.SellingPrice,
		QRCode:            qrCode,
		CreatedBy:         actorID,
		UpdatedBy:         actorID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	mov := newMovement(stock, entity.MovementTypeCreate, stock.StockCount, stock.StockCount, actorID, now)

	err = uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, movRepo repository.MovementRepository) error {
		if err := stockRepo.Create(ctx, stock); err != nil {
			return err
		}
		return movRepo.Create(ctx, mov)
	})
	if err != nil {
		return nil, uc.persistence("crear stock", err)
	}
	uc.logMovement(mov, stock.Code)
	return toStockResponse(stock), nil
}

// FullUpdate reemplaza todos los campos editables. El delta del movimiento Update es
// nuevo conteo - conteo anterior. CreatedBy y CreatedAt se conservan.
func (uc *StockLedger) FullUpdate(ctx context.Context, actorID, id string, in dto.StockRequest) (*dto.StockResponse, error) {
	in.Code = inventory.NormalizeCode(in.Code)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	qrCode, err := uc.qr.Encode(ctx, uc.qrHost+in.Code)
	if err != nil {
		return nil, uc.dependency("codificar QR", err)
	}

	now := time.Now().UTC()
	var (
		stock *entity.Stock
		mov   *entity.Movement
	)
	err = uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, movRepo repository.MovementRepository) error {
		current, err := stockRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		change := inventory.StockChange(current.StockCount, *in.StockCount)

		current.Code = in.Code
		current.Name = in.Name
		current.CategoryID = in.CategoryID
		current.LocationID = in.LocationID
		current.CriticalityLevel = *in.CriticalityLevel
		current.StockCount = *in.StockCount
		current.BuyingPrice = *in.BuyingPrice
		current.SellingPrice = *in.SellingPrice
		current.CriticalityStatus = inventory.CriticalityStatus(current.StockCount, current.CriticalityLevel)
		current.QRCode = qrCode
		current.UpdatedBy = actorID
		current.UpdatedAt = now
		if err := stockRepo.Update(ctx, current); err != nil {
			return err
		}
		stock = current
		mov = newMovement(current, entity.MovementTypeUpdate, change, current.StockCount, actorID, now)
		return movRepo.Create(ctx, mov)
	})
	if err != nil {
		return nil, uc.persistence("actualizar stock", err)
	}
	uc.logMovement(mov, stock.Code)
	return toStockResponse(stock), nil
}

// AdjustCount aplica un delta con signo al conteo. Solo cambian StockCount y CriticalityStatus.
// Si el resultado fuera negativo devuelve *domain.StockUnderflowError y el stock no cambia.
// El movimiento es Increase si delta > 0; en otro caso (incluido 0) es Decrease.
func (uc *StockLedger) AdjustCount(ctx context.Context, actorID, id string, in dto.AdjustCountRequest) (*dto.StockResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	delta := *in.StockChange

	now := time.Now().UTC()
	var (
		stock *entity.Stock
		mov   *entity.Movement
	)
	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, movRepo repository.MovementRepository) error {
		current, err := stockRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		if current.StockCount+delta < 0 {
			return &domain.StockUnderflowError{Code: current.Code, MaxDecrease: current.StockCount}
		}

		current.StockCount += delta
		current.CriticalityStatus = inventory.CriticalityStatus(current.StockCount, current.CriticalityLevel)
		if err := stockRepo.Update(ctx, current); err != nil {
			return err
		}

		movType := entity.MovementTypeDecrease
		if delta > 0 {
			movType = entity.MovementTypeIncrease
		}
		stock = current
		mov = newMovement(current, movType, delta, current.StockCount, actorID, now)
		return movRepo.Create(ctx, mov)
	})
	if err != nil {
		return nil, uc.persistence("ajustar stock", err)
	}
	uc.logMovement(mov, stock.Code)
	return toStockResponse(stock), nil
}

// Deactivate da de baja lógica el stock: solo cambia Status a Inactive y conserva el conteo.
// El movimiento Delete registra -conteo y un conteo posterior de 0.
func (uc *StockLedger) Deactivate(ctx context.Context, actorID, id string) (*dto.StockResponse, error) {
	now := time.Now().UTC()
	var (
		stock *entity.Stock
		mov   *entity.Movement
	)
	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, movRepo repository.MovementRepository) error {
		current, err := stockRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		if !current.IsActive() {
			return domain.ErrInvalidStateTransition
		}

		current.Status = entity.StockStatusInactive
		if err := stockRepo.Update(ctx, current); err != nil {
			return err
		}
		stock = current
		mov = newMovement(current, entity.MovementTypeDelete, -current.StockCount, 0, actorID, now)
		return movRepo.Create(ctx, mov)
	})
	if err != nil {
		return nil, uc.persistence("desactivar stock", err)
	}
	uc.logMovement(mov, stock.Code)
	return toStockResponse(stock), nil
}

// Lookup devuelve el stock con los nombres de categoría, ubicación y autor.
// Un stock inactivo se trata como inexistente.
func (uc *StockLedger) Lookup(ctx context.Context, id string) (*dto.StockResponse, error) {
	detail, err := uc.stockRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, uc.persistence("obtener stock", err)
	}
	if detail == nil || !detail.IsActive() {
		return nil, domain.ErrNotFound
	}
	return toStockDetailResponse(detail), nil
}

// List lista stocks ordenados por código. Status vacío equivale a Active; pattern es una
// expresión regular evaluada contra código o nombre; limit <= 0 no limita.
func (uc *StockLedger) List(ctx context.Context, filter repository.StockFilter) (*dto.StockListResponse, error) {
	if filter.Status == "" {
		filter.Status = entity.StockStatusActive
	}
	if filter.Pattern != "" {
		if _, err := regexp.Compile(filter.Pattern); err != nil {
			return nil, domain.NewValidationError("s", "expresión regular inválida")
		}
	}
	list, err := uc.stockRepo.List(ctx, filter)
	if err != nil {
		return nil, uc.persistence("listar stocks", err)
	}
	items := make([]dto.StockResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toStockDetailResponse(d))
	}
	return &dto.StockListResponse{Items: items}, nil
}

func newMovement(stock *entity.Stock, movType string, change, countAfter int64, actorID string, now time.Time) *entity.Movement {
	return &entity.Movement{
		ID:                     uuid.New().String(),
		Type:                   movType,
		StockChange:            change,
		StockCountAfter:        countAfter,
		CriticalityStatusAfter: stock.CriticalityStatus,
		StockID:                stock.ID,
		CreatedBy:              actorID,
		CreatedAt:              now,
	}
}

func (uc *StockLedger) logMovement(mov *entity.Movement, code string) {
	uc.log.Info().
		Str("stock_id", mov.StockID).
		Str("code", code).
		Str("movement", mov.Type).
		Int64("change", mov.StockChange).
		Int64("count_after", mov.StockCountAfter).
		Msg("movimiento registrado")
}

// persistence deja pasar los errores de negocio y envuelve el resto como DependencyError.
func (uc *StockLedger) persistence(op string, err error) error {
	if isBusinessError(err) {
		return err
	}
	return uc.dependency(op, err)
}

func (uc *StockLedger) dependency(op string, err error) error {
	uc.log.Error().Err(err).Str("op", op).Msg("fallo de dependencia")
	return domain.Dependency(op, err)
}

func isBusinessError(err error) bool {
	for _, target := range []error{
		domain.ErrNotFound,
		domain.ErrInvalidInput,
		domain.ErrConflict,
		domain.ErrInvalidStateTransition,
		domain.ErrDependency,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func toStockResponse(s *entity.Stock) *dto.StockResponse {
	if s == nil {
		return nil
	}
	return &dto.StockResponse{
		ID:                s.ID,
		Code:              s.Code,
		Name:              s.Name,
		Status:            s.Status,
		CategoryID:        s.CategoryID,
		LocationID:        s.LocationID,
		CriticalityLevel:  s.CriticalityLevel,
		CriticalityStatus: s.CriticalityStatus,
		StockCount:        s.StockCount,
		BuyingPrice:       s.BuyingPrice,
		SellingPrice:      s.SellingPrice,
		QRCode:            s.QRCode,
		CreatedBy:         s.CreatedBy,
		UpdatedBy:         s.UpdatedBy,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func toStockDetailResponse(d *repository.StockDetail) *dto.StockResponse {
	out := toStockResponse(&d.Stock)
	out.CategoryName = d.CategoryName
	out.LocationName = d.LocationName
	out.CreatedByName = d.CreatedByName
	return out
}
