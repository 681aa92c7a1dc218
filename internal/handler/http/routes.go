package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/silabos-admin/internal/registry"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// controllers is filled by the init functions of the controller files.
var controllers = registry.New[*Handler]()

// Init builds the router and binds every registered controller. A
// misconfigured route table is returned as an error and must abort start-up.
//
// Unmatched paths and verbs not bound on a matched path (HEAD on a GET route
// included) both answer 404 with the JSON error envelope, never 405. CORS
// headers are only sent when allowed origins are configured; without them the
// API serves same-origin clients only.
func (h *Handler) Init() (*chi.Mux, error) {
	return h.initRouter(controllers)
}

func (h *Handler) initRouter(reg *registry.Registry[*Handler]) (*chi.Mux, error) {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	// go-chi/cors treats an empty origin list as "*", which browsers refuse
	// together with credentials.
	if len(h.allowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.allowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
			ExposedHeaders:   []string{"Authorization", traceIDHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	router.Use(h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	bindings, err := reg.Bind(router, h, registry.BindOptions{
		Guard: h.guard,
		OnBind: func(b registry.Binding) {
			h.logger.Debug().
				Str("binding", b.Name).
				Str("method", b.Method).
				Str("pattern", b.Pattern).
				Bool("guarded", b.Guarded).
				Msg("route bound")
		},
	})
	if err != nil {
		h.logger.Err(err).Msg("binding routes failed")
		return nil, fmt.Errorf("error binding routes: %w", err)
	}
	h.logger.Info().Int("routes", len(bindings)).Msg("routes bound")

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router, nil
}
