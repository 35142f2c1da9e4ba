package http_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/application/usecase"
	"github.com/rbgumti/nh-stock-billing-software-sub003/internal/domain"
	apphttp "github.com/rbgumti/nh-stock-billing-software-sub003/internal/interfaces/http"
)

func buildCatalogueApp(stockRepo *fakeStockRepo, supplierRepo *fakeSupplierRepo) *fiber.App {
	stockHandler := apphttp.NewStockHandler(usecase.NewStockUseCase(stockRepo, nil))
	supplierHandler := apphttp.NewSupplierHandler(usecase.NewSupplierUseCase(supplierRepo))

	app := fiber.New()
	app.Post("/api/stock/items", stockHandler.Create)
	app.Post("/api/suppliers", supplierHandler.Create)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestCreateStockItem_Success(t *testing.T) {
	app := buildCatalogueApp(newFakeStockRepo(), newFakeSupplierRepo())

	resp := postJSON(t, app, "/api/stock/items", `{"id":18,"name":"Pregabalin 75mg","unit":"tab"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.EqualValues(t, 18, body["id"])
	assert.Equal(t, "Pregabalin 75mg", body["name"])
}

func TestCreateStockItem_DuplicateIDConflicts(t *testing.T) {
	stockRepo := newFakeStockRepo()
	stockRepo.createErr = fmt.Errorf("insert stock item 18: %w", domain.ErrDuplicate)
	app := buildCatalogueApp(stockRepo, newFakeSupplierRepo())

	resp := postJSON(t, app, "/api/stock/items", `{"id":18,"name":"Pregabalin 75mg"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "DUPLICATE", body["code"])
}

func TestCreateStockItem_Validation(t *testing.T) {
	app := buildCatalogueApp(newFakeStockRepo(), newFakeSupplierRepo())

	resp := postJSON(t, app, "/api/stock/items", `{"name":"no id"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestCreateSupplier_DuplicateConflicts(t *testing.T) {
	supplierRepo := newFakeSupplierRepo()
	supplierRepo.createErr = fmt.Errorf("insert supplier: %w", domain.ErrDuplicate)
	app := buildCatalogueApp(newFakeStockRepo(), supplierRepo)

	resp := postJSON(t, app, "/api/suppliers", `{"name":"Nairobi Pharma Wholesale"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "DUPLICATE", body["code"])
}
