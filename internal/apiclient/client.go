package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/showupapp/showup/internal/server"
	"github.com/showupapp/showup/pkg/resolution"
)

type Client struct {
	BaseURL   string
	AuthToken string
	HTTP      *http.Client
}

func New(base, token string) *Client {
	return &Client{
		BaseURL:   base,
		AuthToken: token,
		HTTP:      http.DefaultClient,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.AuthToken)
	}
	return c.HTTP.Do(req)
}

func (c *Client) ListResolutions(ctx context.Context) ([]resolution.Resolution, error) {
	res, err := c.do(ctx, http.MethodGet, "/resolutions/", nil)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list resolutions: %s", res.Status)
	}
	var response server.ResolutionListResponse
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return nil, err
	}
	return response.Resolutions, nil
}

func (c *Client) CheckIn(ctx context.Context, resolutionID, date, status string) (*resolution.CheckIn, error) {
	body := map[string]string{"date": date, "status": status}
	res, err := c.do(ctx, http.MethodPost, "/resolutions/"+resolutionID+"/checkins", body)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("check in %s: %s", resolutionID, res.Status)
	}
	var out resolution.CheckIn
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetSummary(ctx context.Context, resolutionID string) (*server.SummaryResponse, error) {
	res, err := c.do(ctx, http.MethodGet, "/resolutions/"+resolutionID+"/summary", nil)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("summary %s: %s", resolutionID, res.Status)
	}
	var out server.SummaryResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
