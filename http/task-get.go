package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/teamwork-challenge/backend/httpjson"
)

func (httpserver *HttpServer) getTask(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	teamID, ok := requireTeam(w, r)
	if !ok {
		return
	}

	taskID, err := parseUuidParam(r, "taskId")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	task, err := httpserver.contestSrvc.GetTask(r.Context(), taskID, teamID)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapTask(*task))
}
