// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/silabos-admin/internal/logger"
	"github.com/MKhiriev/silabos-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(Config{BaseURL: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, resp models.Response) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(resp))
}

// ── Construction ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "https with trailing slash", raw: "https://silabos.example.edu/", want: "https://silabos.example.edu"},
		{name: "surrounding spaces", raw: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{name: "empty", raw: "", wantErr: true},
		{name: "scheme only", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidBaseURL(t *testing.T) {
	a, err := NewHTTPServerAdapter(Config{}, logger.Nop())

	assert.ErrorIs(t, err, ErrInvalidBaseURL)
	assert.Nil(t, a)
}

// ── Requests ────────────────────────────────────────────────────────────────

func TestGetDocente_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/docente/3", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		writeEnvelope(t, w, http.StatusOK, models.Response{Success: true, Data: models.Docente{ID: 3, Codigo: "D003"}})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetDocente(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, models.Docente{ID: 3, Codigo: "D003"}, got)
}

func TestGetDocente_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusNotFound, models.Response{Message: "docente no encontrado"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetDocente(context.Background(), 999999)

	require.ErrorIs(t, err, ErrNotFound)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "docente no encontrado", apiErr.Message)
}

func TestCreateAporte_SendsTokenAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/syllabus/12/aporte", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var body models.CreateAporteRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "RP1", body.ResultadoProgramaCodigo)

		writeEnvelope(t, w, http.StatusCreated, models.Response{Success: true, Data: models.Aporte{ID: 9, SyllabusID: 12}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" tok ")

	got, err := a.CreateAporte(context.Background(), 12, models.CreateAporteRequest{
		ResultadoProgramaCodigo: "RP1",
		TipoAporte:              models.AporteIntermedio,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(9), got.ID)
}

func TestCreateAporte_ValidationFailure(t *testing.T) {
	fields := []models.FieldError{{Field: "resultadoProgramaCodigo", Message: "requerido"}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusBadRequest, models.Response{Message: "datos de entrada inválidos", Errors: fields})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateAporte(context.Background(), 1, models.CreateAporteRequest{})

	require.ErrorIs(t, err, ErrBadRequest)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, fields, apiErr.Fields)
}

func TestRefreshSession_StoresNewToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/refresh", r.URL.Path)
		assert.Equal(t, "Bearer old", r.Header.Get("Authorization"))

		w.Header().Set("Authorization", "Bearer new")
		writeEnvelope(t, w, http.StatusOK, models.Response{Success: true, Data: models.Session{
			Principal: models.Principal{ID: 1, ExternalID: "oid"},
		}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("old")

	session, err := a.RefreshSession(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "oid", session.Principal.ExternalID)
	assert.Equal(t, "new", a.Token())
}

func TestRefreshSession_MissingHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, models.Response{Success: true, Data: models.Session{}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("old")

	_, err := a.RefreshSession(context.Background())

	require.Error(t, err)
	assert.Equal(t, "old", a.Token())
}

func TestLogout_ForgetsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, models.Response{Success: true, Message: "sesión cerrada"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	require.NoError(t, a.Logout(context.Background()))
	assert.Empty(t, a.Token())
}

func TestRequests_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "401", status: http.StatusUnauthorized, body: `{"success":false,"message":"sesión no iniciada"}`, wantErr: ErrUnauthorized, wantMsg: "sesión no iniciada"},
		{name: "403", status: http.StatusForbidden, body: `{"success":false,"message":"usuario inactivo"}`, wantErr: ErrForbidden, wantMsg: "usuario inactivo"},
		{name: "409", status: http.StatusConflict, body: `{"success":false,"message":"duplicado"}`, wantErr: ErrConflict, wantMsg: "duplicado"},
		{name: "500", status: http.StatusInternalServerError, body: `{"success":false,"message":"error interno del servidor"}`, wantErr: ErrInternalServerError},
		{name: "503", status: http.StatusServiceUnavailable, body: `{"success":false,"message":"x"}`, wantErr: ErrServiceUnavailable},
		{name: "plain text body", status: http.StatusBadGateway, body: "upstream down\n", wantErr: ErrUnexpectedResponse, wantMsg: "upstream down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).ListDocentes(context.Background())

			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, tt.wantMsg, apiErr.Message)
			}
		})
	}
}

func TestRequests_UnexpectedSuccessBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "ok"},
		{name: "no data", body: `{"success":true}`},
		{name: "wrong data type", body: `{"success":true,"data":"text"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).GetSyllabus(context.Background(), 1)

			assert.ErrorIs(t, err, ErrUnexpectedResponse)
		})
	}
}

func TestGetServerVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/version", r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, models.Response{Success: true, Data: models.AppVersion{Version: "1.0.0"}})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetServerVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", got.Version)
}
