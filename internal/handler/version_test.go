package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleVersion(t *testing.T) {
	w := httptest.NewRecorder()
	HandleVersion("catering-planner", "1.2.0").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var info VersionInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "catering-planner", info.Service)
	assert.Equal(t, "1.2.0", info.Version)
	assert.NotEmpty(t, info.GoVersion)
}

func TestResolveVersion(t *testing.T) {
	assert.Equal(t, "dev", resolveVersion(""))
	assert.Equal(t, "0.3.1", resolveVersion("0.3.1"))
}
