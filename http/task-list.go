package http

import (
	"net/http"
	"sort"

	"github.com/go-chi/httplog/v2"
	"github.com/teamwork-challenge/backend/httpjson"
)

func (httpserver *HttpServer) listTasks(w http.ResponseWriter, r *http.Request) {
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

	tasks, err := httpserver.contestSrvc.ListTasks(r.Context(), roundID, teamID)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].ClaimedAt.Before(tasks[j].ClaimedAt)
	})

	response := make([]taskResponse, 0, len(tasks))
	for _, task := range tasks {
		response = append(response, mapTask(task))
	}

	httpjson.WriteSuccessJson(w, response)
}
