package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sowmya-komirishetti-7/entity-mapping/internal/api/metrics"
	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/domain"
	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register creates a new ROLE_USER identity.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      plain
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {string}  string  "User Registered Successfully!"
// @Failure      400   {string}  string
// @Failure      409   {string}  string
// @Failure      500   {string}  string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return fmt.Errorf("%w: invalid payload", domain.ErrValidation)
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return err
	}

	_, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(registrationOutcome(err)).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.String(http.StatusOK, "User Registered Successfully!")
}

// Login checks an email/password pair sent in the body. No session is
// created; protected routes still need credentials on every call.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      plain
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {string}  string  "Login successful for user: {email}"
// @Failure      400   {string}  string
// @Failure      401   {string}  string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return fmt.Errorf("%w: invalid payload", domain.ErrValidation)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	_, err := h.authService.Authenticate(c.Request().Context(), req.Email, req.Password)
	metrics.AuthAttemptsTotal.WithLabelValues(AuthOutcome(err)).Inc()
	if err != nil {
		return err
	}

	return c.String(http.StatusOK, "Login successful for user: "+req.Email)
}

// LandingRedirect sends a caller who presented Basic credentials to the area
// matching their role. Anonymous callers get a short usage hint.
//
// @Summary      Role based landing page
// @Tags         auth
// @Produce      plain
// @Security     BasicAuth
// @Success      200  {string}  string
// @Success      302  {string}  string
// @Router       /login [get]
func (h *AuthHandler) LandingRedirect(c echo.Context) error {
	p := PrincipalFrom(c)
	switch {
	case p == nil:
		return c.String(http.StatusOK, "Send credentials with HTTP Basic or POST /login")
	case p.HasCapability(domain.RoleAdmin):
		return c.Redirect(http.StatusFound, "/admin")
	default:
		return c.Redirect(http.StatusFound, "/user")
	}
}

// AuthOutcome labels an Authenticate result for metrics.
func AuthOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	default:
		return "error"
	}
}

func registrationOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	default:
		return "error"
	}
}
