package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestHandleSolveTriangleIntoTriangleIsSatisfiable(t *testing.T) {
	body, err := json.Marshal(SolveRequest{
		Format:  "lad",
		Pattern: "3\n2 1 2\n2 0 2\n2 0 1\n",
		Target:  "3\n2 1 2\n2 0 2\n2 0 1\n",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	New(testLogger()).Mux().ServeHTTP(rec, req)

	var resp SolveResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Satisfiable", resp.Result)
	assert.Len(t, resp.Mapping, 3)
}

func TestHandleSolveRejectsMalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()

	New(testLogger()).Mux().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSolveTriangleIntoPathIsUnsatisfiable(t *testing.T) {
	body, err := json.Marshal(SolveRequest{
		Format:  "prolog",
		Pattern: "edge(0,1).\nedge(1,0).\nedge(1,2).\nedge(2,1).\nedge(2,0).\nedge(0,2).\n",
		Target:  "edge(0,1).\nedge(1,0).\nedge(1,2).\nedge(2,1).\n",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	New(testLogger()).Mux().ServeHTTP(rec, req)

	var resp SolveResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Unsatisfiable", resp.Result)
	assert.Empty(t, resp.Mapping)
}
