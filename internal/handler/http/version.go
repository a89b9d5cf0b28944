package http

import (
	"net/http"

	"github.com/MKhiriev/osphor/internal/utils"
	"github.com/MKhiriev/osphor/models"
)

const rootBanner = "Root Instances of Osphor API"

type versionResponse struct {
	AppVersion string              `json:"app_version"`
	Build      models.AppBuildInfo `json:"build"`
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, rootBanner, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	utils.WriteJSON(w, versionResponse{
		AppVersion: h.services.AppInfoService.GetAppVersion(ctx),
		Build:      h.services.AppInfoService.GetBuildInfo(ctx),
	}, http.StatusOK)
}
