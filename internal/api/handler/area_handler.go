package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AreaHandler serves the role-gated welcome pages.
type AreaHandler struct{}

func NewAreaHandler() *AreaHandler {
	return &AreaHandler{}
}

// Admin handles GET /admin.
//
// @Summary      Admin area
// @Tags         areas
// @Produce      plain
// @Security     BasicAuth
// @Success      200  {string}  string
// @Failure      401  {string}  string
// @Failure      403  {string}  string
// @Router       /admin [get]
func (h *AreaHandler) Admin(c echo.Context) error {
	return h.welcome(c)
}

// User handles GET /user.
//
// @Summary      User area
// @Tags         areas
// @Produce      plain
// @Security     BasicAuth
// @Success      200  {string}  string
// @Failure      401  {string}  string
// @Router       /user [get]
func (h *AreaHandler) User(c echo.Context) error {
	return h.welcome(c)
}

func (h *AreaHandler) welcome(c echo.Context) error {
	p, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	return c.String(http.StatusOK, "Welcome "+p.LoginID)
}
