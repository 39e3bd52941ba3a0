package tracking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/domain"
	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/pkg/logger"
)

// Doer executes HTTP requests; *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Forwarder posts open events to the analytics webhook as JSON.
// Delivery is fire-and-forget with a bounded timeout and no retry: tracking
// events trade guaranteed delivery for beacon responsiveness.
type Forwarder struct {
	webhookURL string
	client     Doer
	timeout    time.Duration
}

// NewForwarder creates a webhook forwarder. A nil client selects a default
// http.Client; a non-positive timeout selects 5s.
func NewForwarder(webhookURL string, client Doer, timeout time.Duration) *Forwarder {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &Forwarder{webhookURL: webhookURL, client: client, timeout: timeout}
}

// Forward relays the event without blocking the caller. Failures are logged
// with enough context for operators and otherwise dropped.
func (f *Forwarder) Forward(evt domain.OpenEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
		defer cancel()
		if err := f.post(ctx, evt); err != nil {
			logger.Error("analytics forward failed", "email", evt.Email, "error", err)
		}
	}()
}

// post is the synchronous core of Forward.
func (f *Forwarder) post(ctx context.Context, evt domain.OpenEvent) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	// The response body is not interpreted beyond success/failure.
	if resp.StatusCode >= 400 {
		return &webhookError{status: resp.StatusCode}
	}
	return nil
}

type webhookError struct{ status int }

func (e *webhookError) Error() string {
	return fmt.Sprintf("analytics webhook returned status %d", e.status)
}
