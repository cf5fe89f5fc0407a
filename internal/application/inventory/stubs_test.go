package inventory_test

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/jhoicas/stoqr-api/internal/domain/entity"
	"github.com/jhoicas/stoqr-api/internal/domain/repository"
)

// ── Almacén en memoria ───────────────────────────────────────────────────────

type memStore struct {
	stocks    map[string]entity.Stock
	movements []entity.Movement
	// failMovements hace fallar la inserción de movimientos (simula caída de la BD).
	failMovements error
}

func newMemStore() *memStore {
	return &memStore{stocks: map[string]entity.Stock{}}
}

func (m *memStore) clone() *memStore {
	c := &memStore{
		stocks:        make(map[string]entity.Stock, len(m.stocks)),
		movements:     append([]entity.Movement(nil), m.movements...),
		failMovements: m.failMovements,
	}
	for k, v := range m.stocks {
		c.stocks[k] = v
	}
	return c
}

func (m *memStore) movementsOf(stockID string) []entity.Movement {
	var out []entity.Movement
	for _, mv := range m.movements {
		if mv.StockID == stockID {
			out = append(out, mv)
		}
	}
	return out
}

// ── TxRunner: aplica los cambios solo si fn termina sin error ────────────────

type stubTxRunner struct {
	store *memStore
}

func (r *stubTxRunner) Run(_ context.Context, fn func(repository.StockRepository, repository.MovementRepository) error) error {
	staged := r.store.clone()
	if err := fn(&stubStockRepo{store: staged}, &stubMovementRepo{store: staged}); err != nil {
		return err
	}
	*r.store = *staged
	return nil
}

// ── StockRepository ──────────────────────────────────────────────────────────

type stubStockRepo struct {
	store      *memStore
	lastFilter repository.StockFilter
}

func (r *stubStockRepo) Create(_ context.Context, s *entity.Stock) error {
	r.store.stocks[s.ID] = *s
	return nil
}

func (r *stubStockRepo) get(id string) (*entity.Stock, error) {
	s, ok := r.store.stocks[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *stubStockRepo) GetDetail(ctx context.Context, id string) (*repository.StockDetail, error) {
	s, _ := r.get(id)
	if s == nil {
		return nil, nil
	}
	return &repository.StockDetail{Stock: *s, CategoryName: "cat-" + s.CategoryID, LocationName: "loc-" + s.LocationID, CreatedByName: "Ana"}, nil
}

func (r *stubStockRepo) GetForUpdate(ctx context.Context, id string) (*entity.Stock, error) {
	return r.get(id)
}

func (r *stubStockRepo) Update(_ context.Context, s *entity.Stock) error {
	if _, ok := r.store.stocks[s.ID]; !ok {
		return errors.New("update: fila inexistente")
	}
	r.store.stocks[s.ID] = *s
	return nil
}

func (r *stubStockRepo) List(_ context.Context, f repository.StockFilter) ([]*repository.StockDetail, error) {
	r.lastFilter = f
	var out []*repository.StockDetail
	for _, s := range r.store.stocks {
		if f.Status != "" && s.Status != f.Status {
			continue
		}
		if f.Pattern != "" && !strings.Contains(s.Code, f.Pattern) && !strings.Contains(s.Name, f.Pattern) {
			continue
		}
		out = append(out, &repository.StockDetail{Stock: s})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

// ── MovementRepository ───────────────────────────────────────────────────────

type stubMovementRepo struct {
	store      *memStore
	recentCall int
}

func (r *stubMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	if r.store.failMovements != nil {
		return r.store.failMovements
	}
	r.store.movements = append(r.store.movements, *m)
	return nil
}

func (r *stubMovementRepo) ListByStock(_ context.Context, stockID string) ([]*repository.MovementDetail, error) {
	var out []*repository.MovementDetail
	for _, m := range r.store.movementsOf(stockID) {
		s := r.store.stocks[m.StockID]
		out = append(out, &repository.MovementDetail{
			Movement:      m,
			Stock:         repository.MovementStock{Code: s.Code, Name: s.Name, StockCount: s.StockCount, Status: s.Status},
			CreatedByName: "Ana",
		})
	}
	return out, nil
}

func (r *stubMovementRepo) ListRecent(_ context.Context, limit int) ([]*repository.MovementDetail, error) {
	r.recentCall++
	var out []*repository.MovementDetail
	for i := len(r.store.movements) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, &repository.MovementDetail{Movement: r.store.movements[i]})
	}
	return out, nil
}

// ── QREncoder ────────────────────────────────────────────────────────────────

type stubQR struct {
	payloads []string
	err      error
}

func (q *stubQR) Encode(_ context.Context, payload string) (string, error) {
	q.payloads = append(q.payloads, payload)
	if q.err != nil {
		return "", q.err
	}
	return "data:image/png;base64,QR(" + payload + ")", nil
}
