package handler

import (
	"gamerecharge/internal/infrastructure/firebase"
	"gamerecharge/pkg/errors"
	"gamerecharge/pkg/response"

	"github.com/labstack/echo/v4"
)

// DevTokenHandler mints test tokens for local development. Its routes are
// only registered when ENVIRONMENT=development.
type DevTokenHandler struct {
	firebaseAuth *firebase.FirebaseAuthClient
}

var devTokenHandler *DevTokenHandler

func NewDevTokenHandler(firebaseAuth *firebase.FirebaseAuthClient) *DevTokenHandler {
	return &DevTokenHandler{
		firebaseAuth: firebaseAuth,
	}
}

func SetupDevTokenHandler(firebaseAuth *firebase.FirebaseAuthClient) {
	devTokenHandler = NewDevTokenHandler(firebaseAuth)
}

func GetDevTokenHandler() *DevTokenHandler {
	return devTokenHandler
}

func (h *DevTokenHandler) GenerateAdminToken(c echo.Context) error {
	uid := c.QueryParam("uid")
	if uid == "" {
		return response.Error(c, errors.Validation("uid", "uid query parameter is required"))
	}

	ctx := c.Request().Context()

	if err := h.firebaseAuth.SetAdminClaim(ctx, uid, true); err != nil {
		return response.Error(c, err)
	}

	token, err := h.firebaseAuth.GenerateLongLivedToken(ctx, uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"token": token,
		"uid":   uid,
		"admin": true,
	})
}
