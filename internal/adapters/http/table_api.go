package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/smartkickers/kicker/internal/domain"
	"github.com/smartkickers/kicker/internal/ports"
)

const (
	goalEndpoint  = "/goal"
	resetEndpoint = "/reset"

	// maxErrorBody bounds how much of an error response is kept.
	maxErrorBody = 4 << 10
)

// ServerError is a failure reported by the table API.
// Error returns the message alone so it can be shown to the operator as is.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return e.Message
}

// TableAPI implements ports.TableAPI over HTTP.
type TableAPI struct {
	baseURL string
	client  ports.HTTPClient
	logger  ports.Logger
}

// NewTableAPI creates a new HTTP table API client for baseURL.
func NewTableAPI(baseURL string, client ports.HTTPClient, logger ports.Logger) *TableAPI {
	return &TableAPI{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
		logger:  logger,
	}
}

// UpdateGoal sends POST /goal?action={add|sub}&team={0|1}.
// The response body is ignored on success.
func (a *TableAPI) UpdateGoal(ctx context.Context, team domain.TeamID, action domain.ScoreAction) error {
	q := url.Values{}
	q.Set("action", string(action))
	q.Set("team", strconv.Itoa(int(team)))

	resp, err := a.post(ctx, goalEndpoint+"?"+q.Encode())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return statusError(resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// resetResponse is the body returned by POST /reset.
type resetResponse struct {
	Error string `json:"error,omitempty"`
}

// ResetGame sends POST /reset. A non-empty "error" in the body is returned
// verbatim, whatever the status code.
func (a *TableAPI) ResetGame(ctx context.Context) error {
	resp, err := a.post(ctx, resetEndpoint)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var rr resetResponse
	if len(body) > 0 && json.Unmarshal(body, &rr) == nil && rr.Error != "" {
		return &ServerError{StatusCode: resp.StatusCode, Message: rr.Error}
	}
	if resp.StatusCode/100 != 2 {
		return &ServerError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}
	return nil
}

func (a *TableAPI) post(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	a.logger.Debug("table api request", ports.String("url", req.URL.String()))

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	return resp, nil
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &ServerError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
	}
}
