package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler exposes login and logout. Login is identification, not password
// authentication: the professional states who they are and receives a token
// binding that identity to every session they open.
type Handler struct {
	cfg   JWTConfig
	store *TokenRevocationStore
}

func NewHandler(cfg JWTConfig, store *TokenRevocationStore) *Handler {
	return &Handler{cfg: cfg, store: store}
}

func (h *Handler) RegisterRoutes(api *echo.Group, protected *echo.Group) {
	api.POST("/auth/login", h.Login)
	protected.POST("/auth/logout", h.Logout)
}

type loginRequest struct {
	Name        string `json:"name"`
	Profession  string `json:"profession"`
	Institution string `json:"institution"`
}

type loginResponse struct {
	Token        string       `json:"token"`
	ExpiresAt    int64        `json:"expiresAt"`
	Professional Professional `json:"professional"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if req.Profession == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "profession is required")
	}
	p := Professional{Name: req.Name, Profession: req.Profession, Institution: req.Institution}
	token, claims, err := IssueToken(h.cfg, p)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, loginResponse{
		Token:        token,
		ExpiresAt:    claims.ExpiresAt.Unix(),
		Professional: p,
	})
}

func (h *Handler) Logout(c echo.Context) error {
	claims, ok := c.Get("claims").(*Claims)
	if !ok || claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "no token")
	}
	h.store.Revoke(claims.ID, claims.ExpiresAt.Time)
	return c.NoContent(http.StatusNoContent)
}
