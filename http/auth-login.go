package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/google/uuid"
	"github.com/teamwork-challenge/backend/auth"
	"github.com/teamwork-challenge/backend/httpjson"
)

func (httpserver *HttpServer) authLogin(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	type loginRequest struct {
		TeamID string `json:"team_id"`
		ApiKey string `json:"api_key"`
	}

	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	teamID, err := uuid.Parse(request.TeamID)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	logger.Info("received login request", "team_id", request.TeamID)

	team, err := httpserver.teamSrvc.Authenticate(r.Context(), teamID, request.ApiKey)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	token, err := auth.GenerateJWT(team.ID, team.ChallengeID, team.Name, httpserver.jwtKey)
	if err != nil {
		logger.Error("failed to generate JWT", "error", err)
		httpjson.WriteInternalErrorJson(w)
		return
	}

	httpjson.WriteSuccessJson(w, token)
}
