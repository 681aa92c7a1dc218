package http

import (
	"net/http"

	"github.com/MKhiriev/silabos-admin/internal/registry"
	"github.com/MKhiriev/silabos-admin/internal/utils"
)

func init() {
	controllers.MustRegister("version", "/version", newVersionController,
		registry.Get("", "getVersion"),
	)
}

type versionController struct {
	*Handler
}

func newVersionController(h *Handler) registry.Controller {
	return &versionController{Handler: h}
}

func (c *versionController) Handlers() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{"getVersion": c.getServerVersion}
}

func (c *versionController) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteData(w, c.services.AppInfoService.GetAppVersion(r.Context()), http.StatusOK)
}
