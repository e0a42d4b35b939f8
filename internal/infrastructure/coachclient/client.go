package coachclient

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

	"career-coach/internal/config"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 30 * time.Second
	maxErrorBody   = 4096
)

// Client calls the career-coach HTTP API. Successful responses are returned as
// the raw JSON body.
type Client interface {
	Health(ctx context.Context) (json.RawMessage, error)
	IngestResume(ctx context.Context, text string) (json.RawMessage, error)
	MatchJobs(ctx context.Context, req MatchJobsRequest) (json.RawMessage, error)
	Roadmap(ctx context.Context, skills []string) (json.RawMessage, error)
	Ask(ctx context.Context, question string) (json.RawMessage, error)
}

type MatchJobsRequest struct {
	Skills     []string `json:"skills"`
	TopK       *int     `json:"top_k,omitempty"`
	JobType    string   `json:"job_type,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

// StatusError is returned for non-2xx backend responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend error %d: %s", e.StatusCode, e.Body)
}

type httpClient struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

func New(cfg config.BackendConfig, logger *zap.Logger) (Client, error) {
	baseURL := strings.TrimSpace(cfg.URL)
	if baseURL == "" {
		return nil, errors.New("empty backend URL")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var limiter *rate.Limiter
	if cfg.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RPS), 1)
	}

	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		limiter: limiter,
		logger:  logger,
	}, nil
}

func (c *httpClient) Health(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/health", nil)
}

func (c *httpClient) IngestResume(ctx context.Context, text string) (json.RawMessage, error) {
	return c.post(ctx, "/ingest/resume", struct {
		Text string `json:"text"`
	}{Text: text})
}

func (c *httpClient) MatchJobs(ctx context.Context, req MatchJobsRequest) (json.RawMessage, error) {
	if req.Skills == nil {
		req.Skills = []string{}
	}
	return c.post(ctx, "/match/jobs", req)
}

func (c *httpClient) Roadmap(ctx context.Context, skills []string) (json.RawMessage, error) {
	if skills == nil {
		skills = []string{}
	}
	return c.post(ctx, "/planner/roadmap", skills)
}

func (c *httpClient) Ask(ctx context.Context, question string) (json.RawMessage, error) {
	return c.post(ctx, "/qa/ask", struct {
		Question string `json:"question"`
	}{Question: question})
}

func (c *httpClient) post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, path, b)
}

func (c *httpClient) do(ctx context.Context, method, path string, body []byte) (json.RawMessage, error) {
	if c == nil || c.client == nil {
		return nil, errors.New("nil backend client")
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	endpoint := c.baseURL + path
	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, rdr)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed", zap.String("method", method), zap.String("endpoint", endpoint), zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		bodyStr := strings.TrimSpace(string(rb))
		c.logger.Warn("backend returned error",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("body", bodyStr),
		)
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: bodyStr}
	}

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if !json.Valid(rb) {
		return nil, fmt.Errorf("backend returned invalid JSON from %s", path)
	}
	c.logger.Debug("backend request",
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)
	return json.RawMessage(rb), nil
}

var _ Client = (*httpClient)(nil)
