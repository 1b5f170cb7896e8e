package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	httpctrl "github.com/thecontlab/continuity-sim/pkg/controller/http"
	"github.com/thecontlab/continuity-sim/pkg/domain/types"
	"github.com/thecontlab/continuity-sim/pkg/repository/memory"
	"github.com/thecontlab/continuity-sim/pkg/usecase"
)

func newTestServer() (*httpctrl.Server, *memory.Memory) {
	repo := memory.New()
	return httpctrl.New(usecase.New(repo)), repo
}

func postJSON(t *testing.T, server http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	gt.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	server, _ := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	gt.Value(t, rec.Code).Equal(http.StatusOK)
}

func TestGetIndustries(t *testing.T) {
	server, _ := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/catalog/industries", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var resp struct {
		Industries []string `json:"industries"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	gt.Array(t, resp.Industries).Length(10)
}

func TestGetScenario(t *testing.T) {
	server, _ := newTestServer()

	req := httptest.NewRequest(http.MethodGet,
		"/api/catalog/scenario?industry=Construction+%26+Real+Estate&category=Supply+Chain", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var resp struct {
		Category  string `json:"category"`
		Question1 struct {
			ID    string `json:"id"`
			Type  string `json:"type"`
			Label string `json:"label"`
		} `json:"question1"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	gt.Value(t, resp.Category).Equal("Supply Chain")
	gt.Value(t, resp.Question1.ID).Equal("supply_resilience")
	gt.Value(t, resp.Question1.Type).Equal("slider")
}

func TestGetScenarioInvalidCategory(t *testing.T) {
	server, _ := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/catalog/scenario?category=Cyber", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
}

func TestPostNextQuestion(t *testing.T) {
	server, _ := newTestServer()

	rec := postJSON(t, server, "/api/catalog/next-question", map[string]any{
		"industry": "Construction & Real Estate",
		"category": "Supply Chain",
		"answer1":  50,
	})

	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var resp struct {
		Question2 *struct {
			ID string `json:"id"`
		} `json:"question2"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	gt.Value(t, resp.Question2).NotNil()
	gt.Value(t, resp.Question2.ID).Equal("inventory_buffer")

	// Single-question scenarios respond with a null follow-up
	rec = postJSON(t, server, "/api/catalog/next-question", map[string]any{
		"industry": "default",
		"category": "Cash Flow",
		"answer1":  50,
	})
	gt.Value(t, rec.Code).Equal(http.StatusOK)
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	gt.Value(t, resp.Question2).Nil()
}

func auditRequestBody() map[string]any {
	return map[string]any{
		"industry": "Construction & Real Estate",
		"revenue":  5_000_000,
		"answers": []map[string]any{
			{"category": "Supply Chain", "answer1": 50, "answer2": "< 3 Days (JIT)"},
			{"category": "Cash Flow", "answer1": 50},
			{"category": "Weather & Physical", "answer1": 50},
			{"category": "Infrastructure & Tools", "answer1": 50},
			{"category": "Workforce", "answer1": 50},
		},
	}
}

func TestPostAudit(t *testing.T) {
	server, _ := newTestServer()

	rec := postJSON(t, server, "/api/audit", auditRequestBody())
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var resp struct {
		LeadID string `json:"leadId"`
		Report struct {
			AuditResults struct {
				PrimaryRAR          int64  `json:"primary_rar"`
				PrimaryRiskCategory string `json:"primary_risk_category"`
				VolatilityIndex     int    `json:"volatility_index"`
			} `json:"audit_results"`
		} `json:"report"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	gt.NoError(t, types.LeadID(resp.LeadID).Validate())
	gt.Value(t, resp.Report.AuditResults.PrimaryRAR).Equal(int64(3_200_000))
	gt.Value(t, resp.Report.AuditResults.PrimaryRiskCategory).Equal("Supply Chain")
	gt.Value(t, resp.Report.AuditResults.VolatilityIndex).Equal(56)
}

func TestPostAuditInvalid(t *testing.T) {
	server, _ := newTestServer()

	rec := postJSON(t, server, "/api/audit", map[string]any{"revenue": 100})
	gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
}

func TestFinalizeLead(t *testing.T) {
	server, repo := newTestServer()

	rec := postJSON(t, server, "/api/audit", auditRequestBody())
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var auditResp struct {
		LeadID string `json:"leadId"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &auditResp))

	// The draft is written in the background
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := repo.Lead().Get(context.Background(), types.LeadID(auditResp.LeadID)); err == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	rec = postJSON(t, server, fmt.Sprintf("/api/leads/%s/identity", auditResp.LeadID), map[string]any{
		"companyName": "Acme Corp",
		"email":       "owner@acme.example",
	})
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var resp struct {
		LeadID    string `json:"leadId"`
		Finalized bool   `json:"finalized"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	gt.Value(t, resp.LeadID).Equal(auditResp.LeadID)
	gt.B(t, resp.Finalized).True()
}

func TestFinalizeLeadNotFound(t *testing.T) {
	server, _ := newTestServer()

	rec := postJSON(t, server, fmt.Sprintf("/api/leads/%s/identity", types.NewLeadID()), map[string]any{
		"companyName": "Acme Corp",
		"email":       "owner@acme.example",
	})
	gt.Value(t, rec.Code).Equal(http.StatusNotFound)
}
