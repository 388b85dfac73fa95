package network

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"mission-stats/src/helpers"
	"mission-stats/src/logger"
	"mission-stats/src/models"
)

const (
	defaultUserAgent    = "mission-stats/1.0"
	defaultMaxBodyBytes = 8 << 20
)

type AsyncNetworkManager struct {
	Config       *models.MConfig
	Client       *http.Client
	Logger       *logger.Logger
	Backoff      time.Duration // base delay, multiplied by attempt^2
	MaxBodyBytes int64         // responses larger than this are rejected
}

// -----------------------------------------------------------------------------

func NewAsyncNetworkManager(cfg *models.MConfig, log *logger.Logger) *AsyncNetworkManager {
	return &AsyncNetworkManager{
		Config: cfg,
		Logger: log,
		Client: &http.Client{
			Timeout: time.Duration(cfg.Network.RequestTimeout) * time.Second,
		},
		Backoff:      time.Second,
		MaxBodyBytes: defaultMaxBodyBytes,
	}
}

// -----------------------------------------------------------------------------

func (nm *AsyncNetworkManager) userAgent() string {
	if nm.Config.Network.UserAgent != "" {
		return nm.Config.Network.UserAgent
	}
	return defaultUserAgent
}

// -----------------------------------------------------------------------------

// Get performs a GET request with retries and quadratic backoff.
func (nm *AsyncNetworkManager) Get(ctx context.Context, urlStr string, params map[string]string) ([]byte, error) {
	reqUrl, err := url.Parse(urlStr)
	if err != nil {
		return nil, helpers.NewNetworkError(err, "invalid url %q", urlStr)
	}

	q := reqUrl.Query()
	for k, v := range params {
		q.Add(k, v)
	}
	reqUrl.RawQuery = q.Encode()

	finalUrl := reqUrl.String()

	maxRetries := nm.Config.Network.MaxRetries
	var lastErr error

	for i := 0; i <= maxRetries; i++ {
		if i > 0 {
			select {
			case <-time.After(time.Duration(i*i) * nm.Backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		body, retry, err := nm.do(ctx, finalUrl)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		nm.Logger.Info("Request failed (attempt %d/%d): %v", i+1, maxRetries+1, err)
		if !retry {
			break
		}
	}

	return nil, helpers.NewNetworkError(lastErr, "GET %s failed", urlStr)
}

// -----------------------------------------------------------------------------

// do performs a single attempt. retry is false for responses that will not
// change on a second try.
func (nm *AsyncNetworkManager) do(ctx context.Context, finalUrl string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, finalUrl, nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("User-Agent", nm.userAgent())
	req.Header.Set("Accept", "application/json")

	resp, err := nm.Client.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusBadRequest {
		return nil, false, fmt.Errorf("bad status: %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, true, fmt.Errorf("bad status: %d", resp.StatusCode)
	}

	limit := nm.MaxBodyBytes
	if limit <= 0 {
		limit = defaultMaxBodyBytes
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, true, err
	}
	if int64(len(body)) > limit {
		return nil, false, fmt.Errorf("response body exceeds %d bytes", limit)
	}
	return body, false, nil
}
