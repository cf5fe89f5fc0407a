package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stoqr-api/internal/application/analytics"
	"github.com/jhoicas/stoqr-api/internal/application/auth"
	"github.com/jhoicas/stoqr-api/internal/application/dto"
	"github.com/jhoicas/stoqr-api/internal/application/inventory"
	"github.com/jhoicas/stoqr-api/internal/application/usecase"
	"github.com/jhoicas/stoqr-api/internal/domain/entity"
	"github.com/jhoicas/stoqr-api/internal/domain/repository"
	apphttp "github.com/jhoicas/stoqr-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/stoqr-api/pkg/jwt"
	"github.com/jhoicas/stoqr-api/pkg/logger"
)

// ── Fakes en memoria ─────────────────────────────────────────────────────────

type fakeStocks struct {
	stocks    map[string]entity.Stock
	movements []entity.Movement
}

func (f *fakeStocks) Create(_ context.Context, s *entity.Stock) error {
	f.stocks[s.ID] = *s
	return nil
}

func (f *fakeStocks) get(id string) (*entity.Stock, error) {
	s, ok := f.stocks[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeStocks) GetDetail(ctx context.Context, id string) (*repository.StockDetail, error) {
	s, _ := f.get(id)
	if s == nil {
		return nil, nil
	}
	return &repository.StockDetail{Stock: *s}, nil
}

func (f *fakeStocks) GetForUpdate(ctx context.Context, id string) (*entity.Stock, error) {
	return f.get(id)
}

func (f *fakeStocks) Update(_ context.Context, s *entity.Stock) error {
	f.stocks[s.ID] = *s
	return nil
}

func (f *fakeStocks) List(_ context.Context, filter repository.StockFilter) ([]*repository.StockDetail, error) {
	out := []*repository.StockDetail{}
	for _, s := range f.stocks {
		if filter.Status == "" || s.Status == filter.Status {
			out = append(out, &repository.StockDetail{Stock: s})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

type fakeMovements struct{ store *fakeStocks }

func (f *fakeMovements) Create(_ context.Context, m *entity.Movement) error {
	f.store.movements = append(f.store.movements, *m)
	return nil
}

func (f *fakeMovements) ListByStock(_ context.Context, stockID string) ([]*repository.MovementDetail, error) {
	out := []*repository.MovementDetail{}
	for _, m := range f.store.movements {
		if m.StockID == stockID {
			out = append(out, &repository.MovementDetail{Movement: m})
		}
	}
	return out, nil
}

func (f *fakeMovements) ListRecent(_ context.Context, limit int) ([]*repository.MovementDetail, error) {
	out := []*repository.MovementDetail{}
	for i := len(f.store.movements) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, &repository.MovementDetail{Movement: f.store.movements[i]})
	}
	return out, nil
}

type fakeTx struct{ store *fakeStocks }

func (f *fakeTx) Run(_ context.Context, fn func(repository.StockRepository, repository.MovementRepository) error) error {
	return fn(f.store, &fakeMovements{store: f.store})
}

type fakeQR struct{ err error }

func (f *fakeQR) Encode(_ context.Context, payload string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "data:image/png;base64," + payload, nil
}

type fakeLabel struct{}

func (fakeLabel) GenerateLabel(_ context.Context, _ *repository.StockDetail, _ string) ([]byte, error) {
	return []byte("%PDF-1.3 etiqueta"), nil
}

type fakeStats struct {
	repository.StatsRepository
}

func (fakeStats) ListCritical(context.Context) ([]*repository.StockDetail, error) {
	return []*repository.StockDetail{}, nil
}

type fakeCatalog struct{ items []*entity.CatalogItem }

func (f *fakeCatalog) Create(_ context.Context, item *entity.CatalogItem) error {
	f.items = append(f.items, item)
	return nil
}

func (f *fakeCatalog) GetByID(_ context.Context, id string) (*entity.CatalogItem, error) {
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) GetByName(_ context.Context, name string) (*entity.CatalogItem, error) {
	for _, it := range f.items {
		if it.Name == name {
			return it, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) Update(context.Context, *entity.CatalogItem) error { return nil }

func (f *fakeCatalog) List(context.Context, string) ([]*entity.CatalogItem, error) {
	return f.items, nil
}

type fakeUsers struct{ users map[string]*entity.User }

func (f *fakeUsers) Create(_ context.Context, u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) Update(_ context.Context, u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUsers) List(context.Context) ([]*entity.User, error) {
	out := []*entity.User{}
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

// ── App de prueba ────────────────────────────────────────────────────────────

type testAPI struct {
	app    *fiber.App
	stocks *fakeStocks
	qr     *fakeQR
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	stocks := &fakeStocks{stocks: map[string]entity.Stock{}}
	qr := &fakeQR{}
	users := &fakeUsers{users: map[string]*entity.User{
		testUserID: {ID: testUserID, Name: testUserName, Email: "ana@stoqr.test", Role: entity.RoleAdmin, Status: entity.UserStatusActive},
	}}
	stats := analytics.NewStatsUseCase(fakeStats{})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Ledger:        inventory.NewStockLedger(&fakeTx{store: stocks}, stocks, qr, "https://stoqr.test/", logger.Nop()),
		Recorder:      inventory.NewMovementRecorder(&fakeMovements{store: stocks}),
		Labels:        inventory.NewLabelUseCase(stocks, fakeLabel{}, "https://stoqr.test/"),
		Replenishment: inventory.NewReplenishmentUseCase(fakeStats{}),
		Stats:         stats,
		CategoryUC:    usecase.NewCatalogUseCase(&fakeCatalog{}),
		LocationUC:    usecase.NewCatalogUseCase(&fakeCatalog{}),
		UserUC:        usecase.NewUserUseCase(users),
		AuthUC:        auth.NewAuthUseCase(users, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		JWTSecret:     testJWTSecret,
	})
	return &testAPI{app: app, stocks: stocks, qr: qr}
}

func (a *testAPI) do(t *testing.T, method, path, authHeader string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func stockBody(code string, count int64) map[string]interface{} {
	return map[string]interface{}{
		"code":              code,
		"name":              "Tornillo",
		"category_id":       "cat-1",
		"location_id":       "loc-1",
		"criticality_level": 5,
		"stock_count":       count,
		"buying_price":      100,
		"selling_price":     150,
	}
}

func (a *testAPI) createStock(t *testing.T, code string, count int64) dto.StockResponse {
	t.Helper()
	resp, body := a.do(t, http.MethodPost, "/api/v1/stocks", tokenForRole(t, entity.RoleUser), stockBody(code, count))
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var out dto.StockResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestRouter_StocksRequiereToken(t *testing.T) {
	api := newTestAPI(t)
	resp, _ := api.do(t, http.MethodGet, "/api/v1/stocks", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_CreateStock_NormalizaYRegistraMovimiento(t *testing.T) {
	api := newTestAPI(t)

	out := api.createStock(t, "çelik1", 6)

	assert.Equal(t, "CELIK1", out.Code)
	assert.Equal(t, entity.CriticalityCritical, out.CriticalityStatus)
	assert.Equal(t, "data:image/png;base64,https://stoqr.test/CELIK1", out.QRCode)
	assert.Equal(t, testUserID, out.CreatedBy)
	require.Len(t, api.stocks.movements, 1)
	assert.Equal(t, entity.MovementTypeCreate, api.stocks.movements[0].Type)
}

func TestRouter_CreateStock_ValidacionDevuelveCampos(t *testing.T) {
	api := newTestAPI(t)

	resp, body := api.do(t, http.MethodPost, "/api/v1/stocks", tokenForRole(t, entity.RoleUser), stockBody("ab", 1))

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "VALIDATION", out.Code)
	require.NotEmpty(t, out.Fields)
	assert.Equal(t, "code", out.Fields[0].Field)
	assert.Empty(t, api.stocks.stocks)
}

func TestRouter_CreateStock_FalloQRDevuelve502(t *testing.T) {
	api := newTestAPI(t)
	api.qr.err = errors.New("encoder caído")

	resp, _ := api.do(t, http.MethodPost, "/api/v1/stocks", tokenForRole(t, entity.RoleUser), stockBody("ABC", 1))

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Empty(t, api.stocks.stocks)
	assert.Empty(t, api.stocks.movements)
}

func TestRouter_AdjustCount_Underflow409(t *testing.T) {
	api := newTestAPI(t)
	created := api.createStock(t, "ABC", 3)

	resp, body := api.do(t, http.MethodPatch, "/api/v1/stocks/"+created.ID, tokenForRole(t, entity.RoleUser),
		map[string]int64{"stockchange": -4})

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "INVALID_STATE", out.Code)
	assert.Contains(t, out.Message, "3")
	assert.Equal(t, int64(3), api.stocks.stocks[created.ID].StockCount)
}

func TestRouter_AdjustCount_Incrementa(t *testing.T) {
	api := newTestAPI(t)
	created := api.createStock(t, "ABC", 3)

	resp, body := api.do(t, http.MethodPatch, "/api/v1/stocks/"+created.ID, tokenForRole(t, entity.RoleUser),
		map[string]int64{"stockchange": 5})

	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var out dto.StockResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, int64(8), out.StockCount)
	assert.Equal(t, entity.CriticalityGood, out.CriticalityStatus)
}

func TestRouter_PostSobreIDEsFullUpdate(t *testing.T) {
	api := newTestAPI(t)
	created := api.createStock(t, "ABC", 3)

	resp, body := api.do(t, http.MethodPost, "/api/v1/stocks/"+created.ID, tokenForRole(t, entity.RoleUser), stockBody("XYZ", 10))

	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	require.Len(t, api.stocks.movements, 2)
	assert.Equal(t, entity.MovementTypeUpdate, api.stocks.movements[1].Type)
	assert.Equal(t, int64(7), api.stocks.movements[1].StockChange)
}

func TestRouter_DeactivateYLookup404(t *testing.T) {
	api := newTestAPI(t)
	created := api.createStock(t, "ABC", 3)
	tok := tokenForRole(t, entity.RoleUser)

	resp, _ := api.do(t, http.MethodDelete, "/api/v1/stocks/"+created.ID, tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = api.do(t, http.MethodGet, "/api/v1/stocks/"+created.ID, tok, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = api.do(t, http.MethodDelete, "/api/v1/stocks/"+created.ID, tok, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRouter_MovementsRecientesRespetaLimite(t *testing.T) {
	api := newTestAPI(t)
	api.createStock(t, "AAA", 1)
	api.createStock(t, "BBB", 2)
	tok := tokenForRole(t, entity.RoleUser)

	_, body := api.do(t, http.MethodGet, "/api/v1/movements?l=1", tok, nil)
	var out dto.MovementListResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Len(t, out.Items, 1)

	_, body = api.do(t, http.MethodGet, "/api/v1/movements", tok, nil)
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Empty(t, out.Items)
}

func TestRouter_LabelDevuelvePDF(t *testing.T) {
	api := newTestAPI(t)
	created := api.createStock(t, "ABC", 3)

	resp, body := api.do(t, http.MethodGet, "/api/v1/stocks/"+created.ID+"/label", tokenForRole(t, entity.RoleUser), nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "etiqueta-ABC.pdf")
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestRouter_ReplenishmentVacio(t *testing.T) {
	api := newTestAPI(t)

	resp, body := api.do(t, http.MethodGet, "/api/v1/stocks/replenishment", tokenForRole(t, entity.RoleUser), nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "[]", string(body))
}

func TestRouter_RegistroPublicoYLogin(t *testing.T) {
	api := newTestAPI(t)

	resp, body := api.do(t, http.MethodPost, "/api/v1/users", "", map[string]string{
		"name": "Luis", "email": "luis@stoqr.test", "password": "secreto1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, body = api.do(t, http.MethodPost, "/api/v1/auth", "", map[string]string{
		"email": "luis@stoqr.test", "password": "secreto1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var tok dto.TokenResponse
	require.NoError(t, json.Unmarshal(body, &tok))
	assert.NotEmpty(t, tok.Token)

	resp, _ = api.do(t, http.MethodPost, "/api/v1/auth", "", map[string]string{
		"email": "nadie@stoqr.test", "password": "secreto1",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_RegistroPublicoIgnoraRol(t *testing.T) {
	api := newTestAPI(t)

	resp, body := api.do(t, http.MethodPost, "/api/v1/users", "", map[string]string{
		"name": "Eva", "email": "eva@stoqr.test", "password": "secreto1", "role": entity.RoleAdmin,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var tok dto.TokenResponse
	require.NoError(t, json.Unmarshal(body, &tok))

	_, _, role, err := pkgjwt.Parse(testJWTSecret, tok.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, role)

	resp, _ = api.do(t, http.MethodGet, "/api/v1/users", "Bearer "+tok.Token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRouter_ListarUsuariosSoloAdmin(t *testing.T) {
	api := newTestAPI(t)

	resp, _ := api.do(t, http.MethodGet, "/api/v1/users", tokenForRole(t, entity.RoleUser), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = api.do(t, http.MethodGet, "/api/v1/users", tokenForRole(t, entity.RoleAdmin), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := api.do(t, http.MethodGet, "/api/v1/users/self", tokenForRole(t, entity.RoleUser), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "ana@stoqr.test")
}

func TestRouter_CategoriaDuplicada409(t *testing.T) {
	api := newTestAPI(t)
	tok := tokenForRole(t, entity.RoleUser)

	resp, _ := api.do(t, http.MethodPost, "/api/v1/categories", tok, map[string]string{"name": "Ferretería"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := api.do(t, http.MethodPost, "/api/v1/categories", tok, map[string]string{"name": "Ferretería"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "CONFLICT", out.Code)

	// Las ubicaciones son un catálogo independiente.
	resp, _ = api.do(t, http.MethodPost, "/api/v1/locations", tok, map[string]string{"name": "Ferretería"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}
