// Package oracle talks to the external nutrition analysis service. Every
// response is normalized here into a single tagged Result.
package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"caloreat/domain"
)

type Status int

const (
	// StatusResolved carries a canonical name and nutrient vector.
	StatusResolved Status = iota
	// StatusUnresolved means the service answered but had nothing usable.
	StatusUnresolved
	// StatusTransportError covers timeouts, non-2xx answers and undecodable bodies.
	StatusTransportError
)

func (s Status) String() string {
	switch s {
	case StatusResolved:
		return "resolved"
	case StatusUnresolved:
		return "unresolved"
	case StatusTransportError:
		return "transport_error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

var ErrNotConfigured = errors.New("nutrition analysis URL not configured")

type Result struct {
	Status     Status
	FoodName   string
	Nutritions domain.Nutritions
	Err        error
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type (
	Client interface {
		Analyze(ctx context.Context, foodName string) Result
	}

	client struct {
		endpoint   string
		httpClient *http.Client
	}
)

func NewClient(cfg Config) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	endpoint := ""
	if cfg.BaseURL != "" {
		endpoint = strings.TrimRight(cfg.BaseURL, "/") + "/nutrition"
	}
	return &client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type analyzeRequest struct {
	FoodName string `json:"food_name"`
}

type analyzeResponse struct {
	FoodName   string             `json:"foodname"`
	Nutritions *domain.Nutritions `json:"nutritions"`
}

func (c *client) Analyze(ctx context.Context, foodName string) Result {
	if c.endpoint == "" {
		return transportError(ErrNotConfigured)
	}

	body, err := json.Marshal(analyzeRequest{FoodName: foodName})
	if err != nil {
		return transportError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return transportError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return transportError(fmt.Errorf("nutrition analysis error: %s - %s", resp.Status, string(bodyBytes)))
	}

	var decoded analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return transportError(fmt.Errorf("failed to decode nutrition analysis response: %w", err))
	}

	name := strings.TrimSpace(decoded.FoodName)
	if name == "" {
		name = foodName
	}
	if decoded.Nutritions == nil {
		return Result{Status: StatusUnresolved, FoodName: name}
	}
	return Result{Status: StatusResolved, FoodName: name, Nutritions: *decoded.Nutritions}
}

func transportError(err error) Result {
	return Result{Status: StatusTransportError, Err: err}
}
