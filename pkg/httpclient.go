package pkg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/propagation"
)

// TraceClient posts JSON payloads to in-container endpoints with W3C trace
// context and a request-correlation header attached.
type TraceClient struct {
	client     *http.Client
	propagator propagation.TextMapPropagator
}

func NewTraceClient(timeout time.Duration) *TraceClient {
	return &TraceClient{
		client:     &http.Client{Timeout: timeout},
		propagator: propagation.TraceContext{},
	}
}

// PostJSON sends body to url and returns the response status code and body.
// The caller decides what a non-200 means.
func (c *TraceClient) PostJSON(ctx context.Context, url string, body []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	c.propagator.Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, data, nil
}
