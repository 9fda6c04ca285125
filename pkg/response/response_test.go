package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgErrors "date-arithmetic-service/pkg/errors"
	"date-arithmetic-service/pkg/response"
)

func TestResponses(t *testing.T) {
	// Setup Gin test mode
	gin.SetMode(gin.TestMode)

	t.Run("OK", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.OK(c, map[string]string{"result": "2024-02-01"})

		if w.Code != http.StatusOK {
			t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if body["result"] != "2024-02-01" {
			t.Errorf("unexpected body: %v", body)
		}
	})

	t.Run("ValidationFailed", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.ValidationFailed(c, []pkgErrors.FieldError{
			pkgErrors.NewQueryFieldError("days", "abc", "days must be an integer"),
		})

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected %d, got %d", http.StatusBadRequest, w.Code)
		}
		var resp response.ValidationResp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if len(resp.Errors) != 1 || resp.Errors[0].Path != "days" {
			t.Errorf("unexpected errors: %+v", resp.Errors)
		}
	})

	t.Run("ValidationFailed Nil Fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.ValidationFailed(c, nil)

		if w.Body.String() != `{"errors":[]}` {
			t.Errorf("expected empty errors array, got %s", w.Body.String())
		}
	})

	t.Run("Error dispatches wrapped ValidationError", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		verr := pkgErrors.NewValidationError(pkgErrors.NewQueryFieldError("date", "x", "bad"))
		response.Error(c, fmt.Errorf("wrap: %w", verr))

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("InternalError", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, errors.New("formatter crash"))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
		var resp response.ErrorResp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Error != "Internal server error" || resp.Message != "formatter crash" {
			t.Errorf("unexpected body: %+v", resp)
		}
	})

	t.Run("InternalError Redacted", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set(response.KeyRedactErrors, true)

		response.InternalError(c, errors.New("secret dsn"))

		var resp response.ErrorResp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Message != response.DefaultErrorMessage {
			t.Errorf("expected redacted message, got %q", resp.Message)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/nope", nil)

		response.NotFound(c)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("TooManyRequests", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.TooManyRequests(c)

		if w.Code != http.StatusTooManyRequests || !c.IsAborted() {
			t.Errorf("expected aborted 429, got %d", w.Code)
		}
	})
}
