package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/silabos-admin/internal/app"
	"github.com/MKhiriev/silabos-admin/internal/registry"
	"github.com/MKhiriev/silabos-admin/internal/utils"
	"github.com/MKhiriev/silabos-admin/models"
)

func init() {
	controllers.MustRegister("session", "/auth", newSessionController,
		registry.Get("/me", "me").WithRoles(app.AllRoles...),
		registry.Post("/refresh", "refresh").WithRoles(app.AllRoles...),
		registry.Post("/logout", "logout"),
	)
}

type sessionController struct {
	*Handler
}

func newSessionController(h *Handler) registry.Controller {
	return &sessionController{Handler: h}
}

func (c *sessionController) Handlers() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"me":      c.me,
		"refresh": c.refresh,
		"logout":  c.logout,
	}
}

// me returns the principal the guard resolved for the current session.
func (c *sessionController) me(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoPrincipal)
		return
	}

	utils.WriteData(w, models.Session{Principal: principal}, http.StatusOK)
}

// refresh issues a new session token for the current principal and returns
// it both as the session cookie and in the Authorization header.
func (c *sessionController) refresh(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoPrincipal)
		return
	}

	token, err := c.services.AuthService.CreateToken(r.Context(), principal)
	if err != nil {
		writeError(w, r, err)
		return
	}

	expiresAt := token.Claims.ExpiresAtTime()
	http.SetCookie(w, c.sessionCookie(r, token.String(), expiresAt))
	w.Header().Set("Authorization", "Bearer "+token.String())

	utils.WriteData(w, models.Session{Principal: principal, ExpiresAt: expiresAt}, http.StatusOK)
}

func (c *sessionController) logout(w http.ResponseWriter, r *http.Request) {
	cookie := c.sessionCookie(r, "", time.Unix(0, 0))
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)

	utils.WriteJSON(w, models.Response{Success: true, Message: app.MsgLoggedOut}, http.StatusOK)
}

func (c *sessionController) sessionCookie(r *http.Request, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     c.sessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	}
}
