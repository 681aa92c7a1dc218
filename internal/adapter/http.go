package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/silabos-admin/internal/logger"
	"github.com/MKhiriev/silabos-admin/internal/utils"
	"github.com/MKhiriev/silabos-admin/models"
	"github.com/go-resty/resty/v2"
)

const defaultRequestTimeout = 15 * time.Second

// Config configures [NewHTTPServerAdapter].
type Config struct {
	// BaseURL is the server address. A missing scheme defaults to http.
	BaseURL string

	// RequestTimeout bounds every request. Zero means 15s.
	RequestTimeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// It returns [ErrInvalidBaseURL] when cfg.BaseURL is empty or has no host.
func NewHTTPServerAdapter(cfg Config, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.Session, error) {
	var session models.Session
	if err := h.do(h.authedRequest(ctx), http.MethodGet, "/auth/me", &session); err != nil {
		return models.Session{}, fmt.Errorf("me request: %w", err)
	}
	return session, nil
}

// RefreshSession implements [ServerAdapter]. The new token is read from the
// Authorization response header.
func (h *httpServerAdapter) RefreshSession(ctx context.Context) (models.Session, error) {
	req := h.authedRequest(ctx)

	var session models.Session
	resp, err := h.send(req, http.MethodPost, "/auth/refresh", &session)
	if err != nil {
		return models.Session{}, fmt.Errorf("refresh request: %w", err)
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Session{}, fmt.Errorf("refresh parse bearer token: %w", err)
	}

	h.SetToken(token)
	return session, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	if err := h.do(h.authedRequest(ctx), http.MethodPost, "/auth/logout", nil); err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) GetDocente(ctx context.Context, id int64) (models.Docente, error) {
	var docente models.Docente
	if err := h.do(h.authedRequest(ctx), http.MethodGet, "/docente/"+strconv.FormatInt(id, 10), &docente); err != nil {
		return models.Docente{}, fmt.Errorf("get docente request: %w", err)
	}
	return docente, nil
}

func (h *httpServerAdapter) ListDocentes(ctx context.Context) ([]models.Docente, error) {
	var docentes []models.Docente
	if err := h.do(h.authedRequest(ctx), http.MethodGet, "/docente", &docentes); err != nil {
		return nil, fmt.Errorf("list docentes request: %w", err)
	}
	return docentes, nil
}

func (h *httpServerAdapter) GetSyllabus(ctx context.Context, id int64) (models.Syllabus, error) {
	var syllabus models.Syllabus
	if err := h.do(h.authedRequest(ctx), http.MethodGet, syllabusPath(id), &syllabus); err != nil {
		return models.Syllabus{}, fmt.Errorf("get syllabus request: %w", err)
	}
	return syllabus, nil
}

func (h *httpServerAdapter) ListAportes(ctx context.Context, syllabusID int64) ([]models.Aporte, error) {
	var aportes []models.Aporte
	if err := h.do(h.authedRequest(ctx), http.MethodGet, syllabusPath(syllabusID)+"/aporte", &aportes); err != nil {
		return nil, fmt.Errorf("list aportes request: %w", err)
	}
	return aportes, nil
}

func (h *httpServerAdapter) CreateAporte(ctx context.Context, syllabusID int64, body models.CreateAporteRequest) (models.Aporte, error) {
	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)

	var aporte models.Aporte
	if err := h.do(req, http.MethodPost, syllabusPath(syllabusID)+"/aporte", &aporte); err != nil {
		return models.Aporte{}, fmt.Errorf("create aporte request: %w", err)
	}
	return aporte, nil
}

func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (models.AppVersion, error) {
	var version models.AppVersion
	if err := h.do(h.client.R().SetContext(ctx), http.MethodGet, "/version", &version); err != nil {
		return models.AppVersion{}, fmt.Errorf("get server version request: %w", err)
	}
	return version, nil
}

func (h *httpServerAdapter) do(req *resty.Request, method, path string, data any) error {
	_, err := h.send(req, method, path, data)
	return err
}

// send executes req, maps failures and decodes the "data" member of the
// success envelope into data (when data is not nil).
func (h *httpServerAdapter) send(req *resty.Request, method, path string, data any) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, err
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("method", method).Str("path", path).Msg("server rejected request")
		return nil, err
	}

	if data == nil {
		return resp, nil
	}

	envelope := struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}{}
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	if !envelope.Success || len(envelope.Data) == 0 {
		return nil, fmt.Errorf("%w: envelope without data", ErrUnexpectedResponse)
	}
	if err = json.Unmarshal(envelope.Data, data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}

	return resp, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func syllabusPath(id int64) string {
	return "/syllabus/" + strconv.FormatInt(id, 10)
}
