package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestRequestLogger_SeesHandlerErrors(t *testing.T) {
	var buf bytes.Buffer
	handled := 0

	e := echo.New()
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		handled++
		if c.Response().Committed {
			return
		}
		_ = c.String(http.StatusNotFound, err.Error())
	}
	e.Use(RequestLogger(zerolog.New(&buf)))
	e.Use(Instrument())
	e.GET("/getCustomer/:id", func(c echo.Context) error {
		return errors.New("customer 5 not found")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/getCustomer/5", nil))

	if rec.Code != http.StatusNotFound || rec.Body.String() != "customer 5 not found" {
		t.Fatalf("unexpected response: %d %q", rec.Code, rec.Body.String())
	}
	if handled == 0 {
		t.Fatalf("error handler never ran")
	}

	var event map[string]any
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("expected one JSON log line, got %q: %v", buf.String(), err)
	}
	if event["level"] != "warn" || event["error"] != "customer 5 not found" {
		t.Fatalf("handler error missing from access log: %v", event)
	}
	if status, _ := event["status"].(float64); status != http.StatusNotFound {
		t.Fatalf("logged status = %v, want 404", event["status"])
	}
}
