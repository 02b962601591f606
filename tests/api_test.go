package tests

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamerecharge/internal/adapter/api"
	"gamerecharge/internal/adapter/api/handler"
	"gamerecharge/internal/usecase"
)

// Route-level smoke tests go through real handlers wired to nothing but a
// validator, checking the surface contract: envelope shape, status codes,
// the session header requirement.

func newTestServer() *echo.Echo {
	e := echo.New()
	e.Validator = api.NewValidator()
	return e
}

func TestCheckoutRejectsMissingSessionHeader(t *testing.T) {
	e := newTestServer()

	orderHandler := handler.NewOrderHandler(usecase.NewOrderUseCase(nil, nil, nil, nil, 0, ""))

	body := `{"customer_name":"Carlos","customer_email":"carlos@example.com","game_id":"987","game":"lords-mobile","payment_method":"zelle"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/checkout", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, orderHandler.Checkout(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, rec.Body.String(), "X-Cart-Session")
}

func TestCheckoutRejectsIncompleteBody(t *testing.T) {
	e := newTestServer()

	orderHandler := handler.NewOrderHandler(usecase.NewOrderUseCase(nil, nil, nil, nil, 0, ""))

	// customer_email and payment_method missing
	body := `{"customer_name":"Carlos","game_id":"987","game":"lords-mobile"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/checkout", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("X-Cart-Session", "sess-1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, orderHandler.Checkout(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
