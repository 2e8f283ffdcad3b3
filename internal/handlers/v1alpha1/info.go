package v1alpha1

import (
	"net/http"

	"github.com/agri-econ/farm-income-planner/api/v1alpha1"
	"github.com/agri-econ/farm-income-planner/pkg/version"
	"github.com/go-chi/render"
)

// (GET /api/v1/info)
func (h *ServiceHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	versionInfo := version.Get()

	_ = render.Render(w, r, InfoReply{Info: v1alpha1.Info{
		GitCommit:   versionInfo.GitCommit,
		VersionName: versionInfo.GitVersion,
	}})
}

// (GET /health)
func (h *ServiceHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
