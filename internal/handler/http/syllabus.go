package http

import (
	"net/http"

	"github.com/MKhiriev/silabos-admin/internal/app"
	"github.com/MKhiriev/silabos-admin/internal/registry"
	"github.com/MKhiriev/silabos-admin/internal/utils"
	"github.com/MKhiriev/silabos-admin/models"
)

func init() {
	controllers.MustRegister("syllabus", "/syllabus", newSyllabusController,
		registry.Get("/{id}", "getSyllabus").WithRoles(app.AllRoles...),
		registry.Get("/{id}/aporte", "listAportes").WithRoles(app.AllRoles...),
		registry.Post("/{id}/aporte", "createAporte").WithRoles(app.RoleAdministrador, app.RoleDocente),
	)
}

type syllabusController struct {
	*Handler
}

func newSyllabusController(h *Handler) registry.Controller {
	return &syllabusController{Handler: h}
}

func (c *syllabusController) Handlers() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"getSyllabus":  c.getSyllabus,
		"listAportes":  c.listAportes,
		"createAporte": c.createAporte,
	}
}

func (c *syllabusController) getSyllabus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	syllabus, err := c.services.SyllabusService.GetSyllabus(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, syllabus, http.StatusOK)
}

func (c *syllabusController) listAportes(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	aportes, err := c.services.SyllabusService.ListAportes(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, aportes, http.StatusOK)
}

// createAporte declares the contribution of a syllabus to a program
// outcome. The body is validated by the service before anything is stored.
func (c *syllabusController) createAporte(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.CreateAporteRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	aporte, err := c.services.SyllabusService.CreateAporte(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, aporte, http.StatusCreated)
}
