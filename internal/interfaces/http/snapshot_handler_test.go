package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/stock"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain/entity"
	apphttp "github.com/rbgumti/nh-stock-billing-software-sub003/internal/interfaces/http"
)

func buildSnapshotApp(verifier *fakeVerifier, invoker *fakeInvoker) *fiber.App {
	uc := stock.NewSnapshotUseCase(verifier, invoker)
	handler := apphttp.NewSnapshotHandler(uc, nil)

	app := fiber.New()
	app.Use(apphttp.CORSMiddleware())
	app.All("/api/stock/snapshots/capture", handler.Capture)
	return app
}

func captureRequest(t *testing.T, app *fiber.App, authHeader string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/stock/snapshots/capture", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	return resp, body
}

func TestCaptureEndpoint_Preflight(t *testing.T) {
	app := buildSnapshotApp(&fakeVerifier{}, &fakeInvoker{})

	req := httptest.NewRequest(http.MethodOptions, "/api/stock/snapshots/capture", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestCaptureEndpoint_MissingAuthorization(t *testing.T) {
	invoker := &fakeInvoker{}
	app := buildSnapshotApp(&fakeVerifier{user: &entity.User{ID: "u1"}}, invoker)

	resp, body := captureRequest(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Authorization required", body["error"])
	assert.Equal(t, 0, invoker.calls)
}

func TestCaptureEndpoint_InvalidToken(t *testing.T) {
	invoker := &fakeInvoker{}
	app := buildSnapshotApp(&fakeVerifier{err: errors.New("bad signature")}, invoker)

	resp, body := captureRequest(t, app, "Bearer not-a-real-token")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Unauthorized: invalid or expired session", body["error"])
	assert.Equal(t, 0, invoker.calls)
}

func TestCaptureEndpoint_Success(t *testing.T) {
	invoker := &fakeInvoker{}
	app := buildSnapshotApp(&fakeVerifier{user: &entity.User{ID: "u1", Role: entity.RoleAdmin}}, invoker)

	resp, body := captureRequest(t, app, "Bearer good-token")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Opening stock snapshot captured successfully", body["message"])
	assert.Equal(t, 1, invoker.calls)
}

func TestCaptureEndpoint_StoreError(t *testing.T) {
	storeErr := errors.New("deadlock detected")
	app := buildSnapshotApp(&fakeVerifier{user: &entity.User{ID: "u1"}}, &fakeInvoker{err: storeErr})

	resp, body := captureRequest(t, app, "Bearer good-token")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "deadlock detected", body["error"])
}
