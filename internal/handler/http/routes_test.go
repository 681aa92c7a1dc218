package http

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/MKhiriev/silabos-admin/internal/app"
	"github.com/MKhiriev/silabos-admin/internal/config"
	"github.com/MKhiriev/silabos-admin/internal/logger"
	"github.com/MKhiriev/silabos-admin/internal/registry"
	"github.com/MKhiriev/silabos-admin/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler_ReadsConfig(t *testing.T) {
	cfg := &config.StructuredConfig{
		App: config.App{SessionCookieName: "cookie", TokenDuration: time.Hour},
		Server: config.Server{
			RequestTimeout: 5 * time.Second,
			AllowedOrigins: []string{"https://silabos.example.edu"},
		},
	}
	svc := &service.Services{}

	h := NewHandler(svc, cfg, logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Equal(t, "cookie", h.sessionCookieName)
	assert.Equal(t, time.Hour, h.tokenDuration)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
	assert.Equal(t, []string{"https://silabos.example.edu"}, h.allowedOrigins)
	assert.NotNil(t, h.traceIDGenerator)
}

func TestInitRouter_BindsEveryRegisteredRoute(t *testing.T) {
	reg := controllers.Clone()

	want := make([]string, 0)
	for _, c := range reg.Controllers() {
		for _, route := range c.Routes {
			want = append(want, route.Key(c.Prefix))
		}
	}

	router, err := newTestHandler(&service.Services{}).initRouter(reg)
	require.NoError(t, err)

	got := make([]string, 0)
	err = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got = append(got, method+" "+route)
		return nil
	})
	require.NoError(t, err)

	sort.Strings(want)
	sort.Strings(got)
	assert.Equal(t, want, got)
	assert.ElementsMatch(t, []string{
		"GET /docente/{docenteId}",
		"GET /docente",
		"GET /syllabus/{id}",
		"GET /syllabus/{id}/aporte",
		"POST /syllabus/{id}/aporte",
		"GET /auth/me",
		"POST /auth/refresh",
		"POST /auth/logout",
		"GET /version",
	}, got)
}

func TestInitRouter_RegistryCanBeBoundOnce(t *testing.T) {
	reg := controllers.Clone()
	h := newTestHandler(&service.Services{})

	_, err := h.initRouter(reg)
	require.NoError(t, err)

	_, err = h.initRouter(reg)
	assert.ErrorIs(t, err, registry.ErrAlreadyBound)
}

func TestInitRouter_RejectsCollidingRoutes(t *testing.T) {
	reg := controllers.Clone()
	_, err := reg.Register("shadow", "/docente", newDocenteController,
		registry.Get("/{otherId}", "getDocente"),
	)
	require.NoError(t, err)

	router, err := newTestHandler(&service.Services{}).initRouter(reg)

	assert.Nil(t, router)
	assert.ErrorIs(t, err, registry.ErrRouteCollision)
}

func TestRouter_GuardedRoutesRequireSession(t *testing.T) {
	router := newTestRouter(t, &service.Services{AuthService: &fakeAuthService{}})

	routes := []struct{ method, path string }{
		{http.MethodGet, "/docente"},
		{http.MethodGet, "/syllabus/1"},
		{http.MethodGet, "/syllabus/1/aporte"},
		{http.MethodPost, "/syllabus/1/aporte"},
		{http.MethodGet, "/auth/me"},
		{http.MethodPost, "/auth/refresh"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(route.method, route.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, app.MsgMissingSessionToken, decodeResponse(t, rr).Message)
		})
	}
}

func TestRouter_UnknownRoutesReturn404(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	tests := []struct{ method, path string }{
		{http.MethodGet, "/"},
		{http.MethodGet, "/unknown"},
		{http.MethodGet, "/syllabus/1/unknown"},
		{http.MethodDelete, "/version"},
		{http.MethodPut, "/syllabus/1/aporte"},
		{http.MethodGet, "/auth/logout"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusNotFound, rr.Code)
			resp := decodeResponse(t, rr)
			assert.False(t, resp.Success)
			assert.Equal(t, app.MsgNotFound, resp.Message)
		})
	}
}

func TestRouter_TraceIDHeader(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/unknown", nil))
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))
}

func TestRouter_CORSPreflight(t *testing.T) {
	h := newTestHandler(&service.Services{})
	h.allowedOrigins = []string{"https://silabos.example.edu"}
	router, err := h.initRouter(controllers.Clone())
	require.NoError(t, err)

	tests := []struct {
		name       string
		origin     string
		wantOrigin string
	}{
		{name: "allowed origin", origin: "https://silabos.example.edu", wantOrigin: "https://silabos.example.edu"},
		{name: "foreign origin", origin: "https://evil.example.com", wantOrigin: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/syllabus/1/aporte", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRouter_NoCORSWithoutAllowedOrigins(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	req := httptest.NewRequest(http.MethodOptions, "/syllabus/1/aporte", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Credentials"))
}
