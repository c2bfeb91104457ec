package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandlePortfolioAnalyze_Success(t *testing.T) {
	srv := newTestServerWithStorage(t)
	createTestAsset(t, srv, "alice", "Gold Bars")

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/analyze?owner=alice", nil)
	rec := httptest.NewRecorder()
	srv.handlePortfolioAnalyze(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]interface{}
	json.NewDecoder(rec.Body).Decode(&resp)
	metrics := resp["metrics"].(map[string]interface{})

	// One asset: 10 @ 100 costing 1000, worth 1200.
	if metrics["total_value"] != 1200.0 {
		t.Errorf("expected total_value 1200, got %v", metrics["total_value"])
	}
	if metrics["total_cost"] != 1000.0 {
		t.Errorf("expected total_cost 1000, got %v", metrics["total_cost"])
	}
	if metrics["total_gain"] != 200.0 {
		t.Errorf("expected total_gain 200, got %v", metrics["total_gain"])
	}
	if metrics["percentage_gain"] != 20.0 {
		t.Errorf("expected percentage_gain 20, got %v", metrics["percentage_gain"])
	}
}

func TestHandlePortfolioAnalyze_EmptyPortfolio(t *testing.T) {
	srv := newTestServerWithStorage(t)

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/analyze?owner=alice", nil)
	rec := httptest.NewRecorder()
	srv.handlePortfolioAnalyze(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]interface{}
	json.NewDecoder(rec.Body).Decode(&resp)
	metrics := resp["metrics"].(map[string]interface{})
	if metrics["total_value"] != 0.0 || metrics["total_gain"] != 0.0 {
		t.Errorf("expected zero metrics, got %v", metrics)
	}
}

func TestHandlePortfolioAnalyze_MissingOwner(t *testing.T) {
	srv := newTestServerWithStorage(t)

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/analyze", nil)
	rec := httptest.NewRecorder()
	srv.handlePortfolioAnalyze(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandlePortfolioChart_Success(t *testing.T) {
	srv := newTestServerWithStorage(t)
	createTestAsset(t, srv, "alice", "Gold Bars")
	createTestAsset(t, srv, "alice", "Index Fund")

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/chart?owner=alice", nil)
	rec := httptest.NewRecorder()
	srv.handlePortfolioChart(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("expected image/png, got %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte{0x89, 'P', 'N', 'G'}) {
		t.Error("expected PNG magic bytes")
	}
}

func TestHandlePortfolioChart_EmptyPortfolio(t *testing.T) {
	srv := newTestServerWithStorage(t)

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/chart?owner=alice", nil)
	rec := httptest.NewRecorder()
	srv.handlePortfolioChart(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
