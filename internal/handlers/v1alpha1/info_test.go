package v1alpha1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agri-econ/farm-income-planner/api/v1alpha1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInfo(t *testing.T) {
	handler := &ServiceHandler{}

	rec := httptest.NewRecorder()
	handler.GetInfo(rec, httptest.NewRequest(http.MethodGet, "/api/v1/info", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var info v1alpha1.Info
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	// GitVersion should at least have the default "unknown" value
	assert.NotEmpty(t, info.VersionName)
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	(&ServiceHandler{}).Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
