package http

import (
	"net/http"

	"github.com/MKhiriev/silabos-admin/internal/app"
	"github.com/MKhiriev/silabos-admin/internal/registry"
	"github.com/MKhiriev/silabos-admin/internal/utils"
)

func init() {
	controllers.MustRegister("docente", "/docente", newDocenteController,
		registry.Get("/{docenteId}", "getDocente"),
		registry.Get("", "listDocentes").WithRoles(app.RoleAdministrador, app.RoleCoordinador),
	)
}

type docenteController struct {
	*Handler
}

func newDocenteController(h *Handler) registry.Controller {
	return &docenteController{Handler: h}
}

func (c *docenteController) Handlers() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"getDocente":   c.getDocente,
		"listDocentes": c.listDocentes,
	}
}

func (c *docenteController) getDocente(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "docenteId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	docente, err := c.services.DocenteService.GetDocente(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, docente, http.StatusOK)
}

func (c *docenteController) listDocentes(w http.ResponseWriter, r *http.Request) {
	docentes, err := c.services.DocenteService.ListDocentes(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, docentes, http.StatusOK)
}
