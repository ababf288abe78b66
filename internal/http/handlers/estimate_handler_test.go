// README: Handler tests for the calculate endpoint.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"courier/internal/http/handlers"
	"courier/internal/maps"
	"courier/internal/modules/category"
	"courier/internal/modules/estimate"
)

// stubDistance is a test double for estimate.DistanceProvider.
type stubDistance struct {
	dist maps.Distance
	err  error
}

func (s *stubDistance) Distance(_ context.Context, _, _ string) (maps.Distance, error) {
	return s.dist, s.err
}

type stubCategories struct{}

func (stubCategories) Resolve(_ context.Context, name string) category.Resolution {
	return category.Resolution{Modifier: 1.0}
}

type stubFuel struct{}

func (stubFuel) CurrentPrice(_ context.Context) float64 { return 1.7 }

// buildTestRouter wires a minimal Gin engine with the estimate handler.
func buildTestRouter(distErr error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := estimate.NewService(
		&stubDistance{dist: maps.Distance{Meters: 10000, HumanReadable: "10.0 km"}, err: distErr},
		stubCategories{},
		stubFuel{},
		zap.NewNop(),
	)
	r := gin.New()
	h := handlers.NewEstimateHandler(svc)
	r.GET("/", h.Root)
	r.POST("/api/calculate", h.Calculate)
	return r
}

func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validBody() map[string]any {
	return map[string]any{
		"pickup_address":    "100 Queen St W, Toronto",
		"delivery_address":  "1 Yonge St, Toronto",
		"vehicle_type":      "Car",
		"delivery_category": "STANDARD DELIVERY",
	}
}

func TestRoot(t *testing.T) {
	r := buildTestRouter(nil)
	w := doRequest(r, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["message"] != "Delivery Cost Calculator API" {
		t.Errorf("message = %q", resp["message"])
	}
}

func TestCalculate_OK(t *testing.T) {
	r := buildTestRouter(nil)
	w := doRequest(r, http.MethodPost, "/api/calculate", validBody())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Distance         string  `json:"distance"`
		CostPerKm        float64 `json:"cost_per_km"`
		TotalCost        float64 `json:"total_cost"`
		CategoryModifier float64 `json:"category_modifier"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Distance != "10.0 km" {
		t.Errorf("distance = %q", resp.Distance)
	}
	if resp.TotalCost != 99.81 {
		t.Errorf("total_cost = %v, want 99.81", resp.TotalCost)
	}
	if resp.CostPerKm != 9.98 {
		t.Errorf("cost_per_km = %v, want 9.98", resp.CostPerKm)
	}
	if resp.CategoryModifier != 1.0 {
		t.Errorf("category_modifier = %v, want 1.0", resp.CategoryModifier)
	}
}

func TestCalculate_InvalidJSON(t *testing.T) {
	r := buildTestRouter(nil)
	req := httptest.NewRequest(http.MethodPost, "/api/calculate", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCalculate_MissingFields(t *testing.T) {
	r := buildTestRouter(nil)
	body := validBody()
	delete(body, "pickup_address")
	w := doRequest(r, http.MethodPost, "/api/calculate", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCalculate_NoRoute(t *testing.T) {
	r := buildTestRouter(maps.ErrNoRoute)
	w := doRequest(r, http.MethodPost, "/api/calculate", validBody())
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["error"] == "" {
		t.Error("expected error message in body")
	}
}

func TestCalculate_TransportError(t *testing.T) {
	r := buildTestRouter(errors.New("connection refused"))
	w := doRequest(r, http.MethodPost, "/api/calculate", validBody())
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}
