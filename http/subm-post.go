package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/teamwork-challenge/backend/contestsrvc"
	"github.com/teamwork-challenge/backend/httpjson"
	"github.com/teamwork-challenge/backend/logger"
)

func (httpserver *HttpServer) createSubmission(w http.ResponseWriter, r *http.Request) {
	log := httplog.LogEntry(r.Context())

	teamID, ok := requireTeam(w, r)
	if !ok {
		return
	}

	taskID, err := parseUuidParam(r, "taskId")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	type submitRequest struct {
		Answer string `json:"answer"`
	}
	var request submitRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	ctx := logger.WithTeam(r.Context(), teamID)
	subm, err := httpserver.contestSrvc.Submit(ctx, contestsrvc.SubmitParams{
		TaskID: taskID,
		TeamID: teamID,
		Answer: request.Answer,
	})
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapSubm(*subm))
}
