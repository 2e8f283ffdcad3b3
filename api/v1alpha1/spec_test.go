package v1alpha1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	swagger, err := GetSwagger()
	require.NoError(t, err)

	for _, path := range []string{
		"/api/v1/simulations",
		"/api/v1/simulations/defaults",
		"/api/v1/simulations/report",
		"/api/v1/info",
	} {
		assert.NotNil(t, swagger.Paths.Find(path), "missing path %s", path)
	}
}
