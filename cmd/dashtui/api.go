package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type apiClient struct {
	baseUrl    string
	token      string
	httpClient *http.Client
}

func newApiClient(baseUrl string, token string) *apiClient {
	return &apiClient{
		baseUrl:    baseUrl,
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type typeProgress struct {
	TypeCode  string `json:"type_code"`
	Pending   int    `json:"pending"`
	Accepted  int    `json:"ac"`
	Wrong     int    `json:"wa"`
	Remaining int    `json:"remaining"`
}

type dashboard struct {
	RoundID string         `json:"round_id"`
	TeamID  string         `json:"team_id"`
	Score   int            `json:"score"`
	Types   []typeProgress `json:"types"`
}

func (c *apiClient) getDashboard(roundID string) (*dashboard, error) {
	url := fmt.Sprintf("%s/rounds/%s/dashboard", c.baseUrl, roundID)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var envelope struct {
		Status  string    `json:"status"`
		Data    dashboard `json:"data"`
		ErrMsg  string    `json:"message"`
		ErrCode string    `json:"code"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode dashboard response: %w", err)
	}
	if envelope.Status != "success" {
		return nil, fmt.Errorf("api error %s: %s", envelope.ErrCode, envelope.ErrMsg)
	}
	return &envelope.Data, nil
}
