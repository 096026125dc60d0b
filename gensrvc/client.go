package gensrvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const secretHeader = "X-Api-Key"

// Client talks to external task generator services. Each task type
// configures its own endpoint + secret; the client is shared. All failures
// (transport, non-2xx, malformed body) come back as plain errors for the
// caller to wrap; the client never retries on its own.
type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Generate asks the generator for the content of a new task.
func (c *Client) Generate(ctx context.Context, ep Endpoint, req GenerateRequest) (*GenerateResponse, error) {
	res := &GenerateResponse{}
	err := c.post(ctx, ep, "/generate", req, res)
	if err != nil {
		return nil, err
	}
	if res.Statement == "" {
		return nil, fmt.Errorf("generator returned an empty statement")
	}
	return res, nil
}

// Check grades an answer. The response is a non-empty list of results; the
// first one is the verdict for the submitted task.
func (c *Client) Check(ctx context.Context, ep Endpoint, req CheckRequest) ([]CheckResult, error) {
	var res []CheckResult
	err := c.post(ctx, ep, "/check", req, &res)
	if err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("generator returned no check results")
	}
	for i, r := range res {
		if r.Status != CheckStatusAccepted && r.Status != CheckStatusRejected {
			return nil, fmt.Errorf("check result %d has unknown status %q", i, r.Status)
		}
		if r.Score < 0 || r.Score > 1 {
			return nil, fmt.Errorf("check result %d has score %f outside [0,1]", i, r.Score)
		}
	}
	return res, nil
}

func (c *Client) post(ctx context.Context, ep Endpoint, path string, reqBody any, resBody any) error {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		ep.Url+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(secretHeader, ep.Secret)

	httpRes, err := c.httpClient.Do(httpReq)
	if err != nil {
		// err may carry the full URL but never the secret header
		return fmt.Errorf("generator request failed: %w", err)
	}
	defer httpRes.Body.Close()

	if httpRes.StatusCode < 200 || httpRes.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(httpRes.Body, 1024))
		return fmt.Errorf("generator responded with status %d: %s",
			httpRes.StatusCode, string(body))
	}

	if err := json.NewDecoder(httpRes.Body).Decode(resBody); err != nil {
		return fmt.Errorf("failed to decode generator response: %w", err)
	}
	return nil
}
