package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/teamwork-challenge/backend/httpjson"
)

func (httpserver *HttpServer) getDashboard(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	teamID, ok := requireTeam(w, r)
	if !ok {
		return
	}

	roundID, err := parseUuidParam(r, "roundId")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	view, err := httpserver.contestSrvc.GetDashboard(r.Context(), roundID, teamID)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapDashboard(*view))
}
