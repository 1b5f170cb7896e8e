package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/thecontlab/continuity-sim/pkg/domain/model"
	"github.com/thecontlab/continuity-sim/pkg/domain/types"
	"github.com/thecontlab/continuity-sim/pkg/usecase"
	"github.com/thecontlab/continuity-sim/pkg/utils/errutil"
)

type auditRequest struct {
	Industry string         `json:"industry"`
	Revenue  float64        `json:"revenue"`
	Answers  []model.Answer `json:"answers"`
}

type auditResponse struct {
	LeadID types.LeadID  `json:"leadId"`
	Report *model.Report `json:"report"`
}

func auditHandler(uc *usecase.AuditUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req auditRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
			return
		}

		foundation := model.Foundation{
			Industry: req.Industry,
			Revenue:  req.Revenue,
		}

		result, err := uc.RunAudit(r.Context(), foundation, req.Answers)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		respondJSON(w, r, auditResponse{
			LeadID: result.LeadID,
			Report: result.Report,
		})
	}
}
