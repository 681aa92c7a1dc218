package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MKhiriev/silabos-admin/internal/app"
	"github.com/MKhiriev/silabos-admin/internal/logger"
	"github.com/MKhiriev/silabos-admin/internal/service"
	"github.com/MKhiriev/silabos-admin/internal/store"
	"github.com/MKhiriev/silabos-admin/internal/utils"
	"github.com/MKhiriev/silabos-admin/models"
	"github.com/stretchr/testify/require"
)

const testCookieName = "test_session"

// ---- Service fakes ----

type fakeAuthService struct {
	parseToken       func(ctx context.Context, token string) (models.Claims, error)
	resolvePrincipal func(ctx context.Context, claims models.Claims) (models.Principal, error)
	createToken      func(ctx context.Context, principal models.Principal) (models.Token, error)

	mu           sync.Mutex
	parsedTokens []string
}

func (f *fakeAuthService) CreateToken(ctx context.Context, principal models.Principal) (models.Token, error) {
	if f.createToken == nil {
		return models.Token{SignedString: "new-token"}, nil
	}
	return f.createToken(ctx, principal)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, token string) (models.Claims, error) {
	f.mu.Lock()
	f.parsedTokens = append(f.parsedTokens, token)
	f.mu.Unlock()
	if f.parseToken == nil {
		return models.Claims{ExternalID: "oid-1", TenantID: "tid-1"}, nil
	}
	return f.parseToken(ctx, token)
}

func (f *fakeAuthService) ResolvePrincipal(ctx context.Context, claims models.Claims) (models.Principal, error) {
	if f.resolvePrincipal == nil {
		return testPrincipal(app.RoleAdministrador), nil
	}
	return f.resolvePrincipal(ctx, claims)
}

// acceptAs returns an auth fake that admits any token as an active user of
// the given category.
func acceptAs(category string) *fakeAuthService {
	return &fakeAuthService{
		resolvePrincipal: func(context.Context, models.Claims) (models.Principal, error) {
			return testPrincipal(category), nil
		},
	}
}

type fakeDocenteService struct {
	docentes map[int64]models.Docente
	err      error
}

func (f *fakeDocenteService) GetDocente(_ context.Context, id int64) (models.Docente, error) {
	if f.err != nil {
		return models.Docente{}, f.err
	}
	docente, ok := f.docentes[id]
	if !ok {
		return models.Docente{}, store.ErrDocenteNotFound
	}
	return docente, nil
}

func (f *fakeDocenteService) ListDocentes(context.Context) ([]models.Docente, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make([]models.Docente, 0, len(f.docentes))
	for _, d := range f.docentes {
		result = append(result, d)
	}
	return result, nil
}

type fakeSyllabusService struct {
	syllabus models.Syllabus
	aportes  []models.Aporte
	err      error

	created []models.CreateAporteRequest
}

func (f *fakeSyllabusService) GetSyllabus(_ context.Context, id int64) (models.Syllabus, error) {
	if f.err != nil {
		return models.Syllabus{}, f.err
	}
	s := f.syllabus
	s.ID = id
	return s, nil
}

func (f *fakeSyllabusService) ListAportes(context.Context, int64) ([]models.Aporte, error) {
	return f.aportes, f.err
}

func (f *fakeSyllabusService) CreateAporte(_ context.Context, syllabusID int64, req models.CreateAporteRequest) (models.Aporte, error) {
	if f.err != nil {
		return models.Aporte{}, f.err
	}
	f.created = append(f.created, req)
	return models.Aporte{
		ID:                      int64(len(f.created)),
		SyllabusID:              syllabusID,
		ResultadoProgramaCodigo: req.ResultadoProgramaCodigo,
		TipoAporte:              req.TipoAporte,
	}, nil
}

type fakeAppInfoService struct {
	version models.AppVersion
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) models.AppVersion {
	return f.version
}

// ---- Helpers ----

func testPrincipal(category string) models.Principal {
	return models.Principal{
		ID:         7,
		ExternalID: "oid-1",
		TenantID:   "tid-1",
		Name:       "Ana Pérez",
		Email:      "ana@example.edu",
		Active:     true,
		Category:   models.Category{ID: 1, Name: category},
	}
}

func newTestHandler(services *service.Services) *Handler {
	return &Handler{
		services:          services,
		sessionCookieName: testCookieName,
		traceIDGenerator:  utils.NewUUIDGenerator(),
		logger:            logger.Nop(),
	}
}

// newTestRouter binds a copy of the package route table, so every test gets
// its own router.
func newTestRouter(t *testing.T, services *service.Services) http.Handler {
	t.Helper()

	router, err := newTestHandler(services).initRouter(controllers.Clone())
	require.NoError(t, err)

	return router
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().Logger.WithContext(r.Context()))
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) models.Response {
	t.Helper()

	var resp models.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp
}
