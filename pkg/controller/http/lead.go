package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/thecontlab/continuity-sim/pkg/domain/interfaces"
	"github.com/thecontlab/continuity-sim/pkg/domain/types"
	"github.com/thecontlab/continuity-sim/pkg/usecase"
	"github.com/thecontlab/continuity-sim/pkg/utils/errutil"
)

type finalizeLeadRequest struct {
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
}

type finalizeLeadResponse struct {
	LeadID    types.LeadID `json:"leadId"`
	Finalized bool         `json:"finalized"`
}

// finalizeLeadHandler attaches the identity captured at the report gate
// to the lead drafted when the audit ran
func finalizeLeadHandler(uc *usecase.LeadUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := types.LeadID(chi.URLParam(r, "leadID"))

		var req finalizeLeadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
			return
		}

		lead, err := uc.FinalizeLead(r.Context(), id, req.CompanyName, req.Email)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, interfaces.ErrLeadNotFound) {
				status = http.StatusNotFound
			}
			errutil.HandleHTTP(r.Context(), w, err, status)
			return
		}

		respondJSON(w, r, finalizeLeadResponse{
			LeadID:    lead.ID,
			Finalized: lead.Finalized(),
		})
	}
}
