package gensrvc_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamwork-challenge/backend/gensrvc"
)

func TestGenerateSendsSecretAndDecodesResponse(t *testing.T) {
	var gotSecret string
	var gotReq gensrvc.GenerateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/generate", r.URL.Path)
		gotSecret = r.Header.Get("X-Api-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(gensrvc.GenerateResponse{
			Statement: "add the two numbers",
			Input:     "1 2",
		})
	}))
	defer srv.Close()

	client := gensrvc.NewClient(5 * time.Second)
	res, err := client.Generate(context.Background(),
		gensrvc.Endpoint{Url: srv.URL, Secret: "hunter2"},
		gensrvc.GenerateRequest{
			TaskID:   "t-1",
			Progress: gensrvc.Progress{TaskIndex: 0, TaskCount: 3},
		})
	require.NoError(t, err)

	assert.Equal(t, "hunter2", gotSecret)
	assert.Equal(t, "t-1", gotReq.TaskID)
	assert.Equal(t, 3, gotReq.Progress.TaskCount)
	assert.Equal(t, "add the two numbers", res.Statement)
	assert.Equal(t, "1 2", res.Input)
}

func TestCheckReturnsAllResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/check", r.URL.Path)
		json.NewEncoder(w).Encode([]gensrvc.CheckResult{
			{Status: "accepted", Score: 1},
			{Status: "accepted", Score: 0.5, TaskID: "other-task"},
		})
	}))
	defer srv.Close()

	client := gensrvc.NewClient(5 * time.Second)
	res, err := client.Check(context.Background(),
		gensrvc.Endpoint{Url: srv.URL, Secret: "hunter2"},
		gensrvc.CheckRequest{Input: "1 2", Answer: "3", TaskID: "t-1"})
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.True(t, res[0].Accepted())
	assert.Equal(t, "other-task", res[1].TaskID)
}

func TestCheckRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "http error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", http.StatusForbidden)
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("{not json"))
			},
		},
		{
			name: "empty result list",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("[]"))
			},
		},
		{
			name: "unknown status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode([]gensrvc.CheckResult{{Status: "maybe"}})
			},
		},
		{
			name: "score out of range",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode([]gensrvc.CheckResult{{Status: "accepted", Score: 1.5}})
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			client := gensrvc.NewClient(5 * time.Second)
			_, err := client.Check(context.Background(),
				gensrvc.Endpoint{Url: srv.URL},
				gensrvc.CheckRequest{Answer: "3"})
			require.Error(t, err)
		})
	}
}

func TestGenerateTransportError(t *testing.T) {
	client := gensrvc.NewClient(time.Second)
	_, err := client.Generate(context.Background(),
		gensrvc.Endpoint{Url: "http://127.0.0.1:1"},
		gensrvc.GenerateRequest{})
	require.Error(t, err)
}
