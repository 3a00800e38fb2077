package seed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
)

// HTTPSource fetches a seed document from a remote URL.
type HTTPSource struct {
	client        *resty.Client
	url           string
	retryAttempts uint
}

// NewHTTPSource creates an HTTPSource for the given URL.
func NewHTTPSource(url string, timeout time.Duration, retryAttempts uint) *HTTPSource {
	client := resty.New()
	client.SetTimeout(timeout)

	return &HTTPSource{
		client:        client,
		url:           url,
		retryAttempts: retryAttempts,
	}
}

// Load fetches and parses the remote seed document, retrying server-side
// failures with backoff. Client-side failures are not retried.
func (s *HTTPSource) Load(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	if err := retry.Do(
		func() error {
			res, err := s.client.R().
				SetContext(ctx).
				Get(s.url)
			if err != nil {
				return fmt.Errorf("client.R.Get > %w", err)
			}
			if res.StatusCode() != http.StatusOK {
				statusErr := fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
				if res.StatusCode() < http.StatusInternalServerError {
					return retry.Unrecoverable(statusErr)
				}
				return statusErr
			}

			parsed, err := parseDocument(res.Body())
			if err != nil {
				return retry.Unrecoverable(err)
			}
			entries = parsed
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(s.retryAttempts+1),
		retry.LastErrorOnly(true),
	); err != nil {
		return nil, err
	}
	return entries, nil
}
