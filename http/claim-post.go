package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/teamwork-challenge/backend/contestsrvc"
	"github.com/teamwork-challenge/backend/httpjson"
	"github.com/teamwork-challenge/backend/logger"
)

func (httpserver *HttpServer) claimTask(w http.ResponseWriter, r *http.Request) {
	log := httplog.LogEntry(r.Context())

	teamID, ok := requireTeam(w, r)
	if !ok {
		return
	}

	roundID, err := parseUuidParam(r, "roundId")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	type claimRequest struct {
		TypeCode string `json:"type_code,omitempty"`
	}
	request := claimRequest{}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
	}

	ctx := logger.WithRound(logger.WithTeam(r.Context(), teamID), roundID)
	task, err := httpserver.contestSrvc.Claim(ctx, contestsrvc.ClaimParams{
		RoundID:  roundID,
		TeamID:   teamID,
		TypeCode: request.TypeCode,
	})
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapTask(*task))
}
