package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/thecontlab/continuity-sim/pkg/catalog"
	"github.com/thecontlab/continuity-sim/pkg/domain/types"
	"github.com/thecontlab/continuity-sim/pkg/utils/errutil"
)

type industriesResponse struct {
	Industries []string `json:"industries"`
}

func industriesHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, industriesResponse{Industries: cat.Industries()})
	}
}

type scenarioResponse struct {
	Industry    string             `json:"industry"`
	Category    types.RiskCategory `json:"category"`
	ContextTags []string           `json:"contextTags"`
	Question1   *catalog.Question  `json:"question1"`
}

// scenarioHandler returns the first question of a scenario. The second
// question depends on the first answer and is fetched via next-question.
func scenarioHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		industry := r.URL.Query().Get("industry")
		category := types.RiskCategory(r.URL.Query().Get("category"))

		scenario, err := cat.Lookup(industry, category)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		respondJSON(w, r, scenarioResponse{
			Industry:    industry,
			Category:    category,
			ContextTags: scenario.ContextTags,
			Question1:   &scenario.Q1,
		})
	}
}

type nextQuestionRequest struct {
	Industry string             `json:"industry"`
	Category types.RiskCategory `json:"category"`
	Answer1  any                `json:"answer1"`
}

type nextQuestionResponse struct {
	Question2 *catalog.Question `json:"question2"`
}

// nextQuestionHandler resolves the follow-up question for a first answer.
// A null question2 means the scenario ends after one question.
func nextQuestionHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req nextQuestionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
			return
		}

		scenario, err := cat.Lookup(req.Industry, req.Category)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		respondJSON(w, r, nextQuestionResponse{
			Question2: scenario.Q2(req.Answer1),
		})
	}
}
