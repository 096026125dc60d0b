package http

import (
	"net/http"
	"sort"

	"github.com/go-chi/httplog/v2"
	"github.com/teamwork-challenge/backend/httpjson"
)

func (httpserver *HttpServer) listSubmissions(w http.ResponseWriter, r *http.Request) {
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

	subms, err := httpserver.contestSrvc.ListSubmissions(r.Context(), taskID, teamID)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	sort.Slice(subms, func(i, j int) bool {
		return subms[i].SubmittedAt.Before(subms[j].SubmittedAt)
	})

	response := make([]submResponse, 0, len(subms))
	for _, subm := range subms {
		response = append(response, mapSubm(subm))
	}

	httpjson.WriteSuccessJson(w, response)
}
