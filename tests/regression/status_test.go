package regression_test

import (
	"testing"
)

// TestStatus_ReturnsOK verifies that GET /api/status returns 200.
func TestStatus_ReturnsOK(t *testing.T) {
	ts := newTestServer(t)
	resp := ts.get(t, "/api/status")
	defer resp.Body.Close()
	requireStatus(t, resp, 200)
	requireContentType(t, resp, "application/json")
}

// TestStatus_Shape verifies the response reports a version and store check.
func TestStatus_Shape(t *testing.T) {
	ts := newTestServer(t)
	resp := ts.get(t, "/api/status")

	var body struct {
		Version string `json:"version"`
		Store   *struct {
			Path string `json:"path"`
		} `json:"store"`
	}
	decodeJSON(t, resp, &body)

	if body.Version == "" {
		t.Error("expected version to be non-empty")
	}
	if body.Store == nil || body.Store.Path == "" {
		t.Error("expected store check with a path")
	}
}
