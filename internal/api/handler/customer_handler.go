package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sowmya-komirishetti-7/entity-mapping/internal/api/metrics"
	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/domain"
	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/ports"
)

const (
	headerIdempotencyKey = "Idempotency-Key"
	headerReplayed       = "Idempotent-Replayed"
)

// CustomerHandler handles HTTP requests for the customer aggregate.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// Add handles POST /addCustomer.
//
// @Summary      Create a customer with its person and gadgets
// @Tags         customers
// @Accept       json
// @Produce      plain
// @Security     BasicAuth
// @Param        Idempotency-Key  header    string           false  "Client supplied key; a repeated key replays the first result"
// @Param        body             body      customerRequest  true   "Customer aggregate"
// @Success      200              {string}  string  "Successfully Inserted"
// @Failure      400              {string}  string
// @Failure      401              {string}  string
// @Failure      409              {string}  string
// @Failure      500              {string}  string
// @Router       /addCustomer [post]
func (h *CustomerHandler) Add(c echo.Context) error {
	req, err := bindCustomer(c)
	if err != nil {
		metrics.CustomerOperationsTotal.WithLabelValues("create", "invalid").Inc()
		return err
	}

	res, err := h.service.Create(c.Request().Context(), ports.CreateCustomerInput{
		Customer:       toDomainCustomer(req),
		IdempotencyKey: c.Request().Header.Get(headerIdempotencyKey),
	})
	if err != nil {
		metrics.CustomerOperationsTotal.WithLabelValues("create", operationResult(err)).Inc()
		return err
	}

	result := "ok"
	if res.AlreadyExisted {
		result = "replayed"
		c.Response().Header().Set(headerReplayed, "true")
	}
	metrics.CustomerOperationsTotal.WithLabelValues("create", result).Inc()

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/getCustomer/%d", res.Customer.ID))
	return c.String(http.StatusOK, "Successfully Inserted")
}

// List handles GET /getAllCustomers.
//
// @Summary      List all customers
// @Tags         customers
// @Produce      json
// @Security     BasicAuth
// @Success      200  {array}   customerResponse
// @Failure      401  {string}  string
// @Failure      500  {string}  string
// @Router       /getAllCustomers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.service.List(c.Request().Context())
	metrics.CustomerOperationsTotal.WithLabelValues("list", operationResult(err)).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerResponses(customers))
}

// Get handles GET /getCustomer/:id.
//
// @Summary      Get a customer by id
// @Tags         customers
// @Produce      json
// @Security     BasicAuth
// @Param        id   path      int  true  "Customer id"
// @Success      200  {object}  customerResponse
// @Failure      400  {string}  string
// @Failure      401  {string}  string
// @Failure      404  {string}  string
// @Router       /getCustomer/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := customerID(c)
	if err != nil {
		return err
	}

	customer, err := h.service.Get(c.Request().Context(), id)
	metrics.CustomerOperationsTotal.WithLabelValues("get", operationResult(err)).Inc()
	if err != nil {
		return notFoundAs(err, id)
	}
	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// Update handles PUT /updateCustomer/:id.
//
// @Summary      Replace a customer's fields and gadgets
// @Description  Name, phone number and gadgets are replaced wholesale. Only the gender of the existing person changes; its id is kept.
// @Tags         customers
// @Accept       json
// @Produce      plain
// @Security     BasicAuth
// @Param        id    path      int              true  "Customer id"
// @Param        body  body      customerRequest  true  "Customer aggregate"
// @Success      200   {string}  string  "Data Saved"
// @Failure      400   {string}  string
// @Failure      401   {string}  string
// @Failure      404   {string}  string
// @Router       /updateCustomer/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := customerID(c)
	if err != nil {
		return err
	}
	req, err := bindCustomer(c)
	if err != nil {
		metrics.CustomerOperationsTotal.WithLabelValues("update", "invalid").Inc()
		return err
	}

	_, err = h.service.Update(c.Request().Context(), id, toDomainCustomer(req))
	metrics.CustomerOperationsTotal.WithLabelValues("update", operationResult(err)).Inc()
	if err != nil {
		return notFoundAs(err, id)
	}
	return c.String(http.StatusOK, "Data Saved")
}

// Delete handles DELETE /deleteCustomer/:id.
//
// @Summary      Delete a customer with its person and gadgets
// @Tags         customers
// @Produce      plain
// @Security     BasicAuth
// @Param        id   path      int  true  "Customer id"
// @Success      200  {string}  string  "Deleted Customer id is {id}"
// @Failure      401  {string}  string
// @Failure      404  {string}  string
// @Router       /deleteCustomer/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := customerID(c)
	if err != nil {
		return err
	}

	err = h.service.Delete(c.Request().Context(), id)
	metrics.CustomerOperationsTotal.WithLabelValues("delete", operationResult(err)).Inc()
	if err != nil {
		return notFoundAs(err, id)
	}
	return c.String(http.StatusOK, fmt.Sprintf("Deleted Customer id is %d", id))
}

func bindCustomer(c echo.Context) (customerRequest, error) {
	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return req, fmt.Errorf("%w: invalid payload", domain.ErrValidation)
	}
	if err := c.Validate(&req); err != nil {
		return req, err
	}
	return req, nil
}

func customerID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid customer id %q", domain.ErrValidation, c.Param("id"))
	}
	return id, nil
}

func notFoundAs(err error, id int64) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: customer %d", domain.ErrNotFound, id)
	}
	return err
}

func operationResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	case errors.Is(err, domain.ErrInProgress):
		return "in_progress"
	default:
		return "error"
	}
}
