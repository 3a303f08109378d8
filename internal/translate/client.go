package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lingualearn/linguaflash/internal/logger"
)

const defaultBaseURL = "https://api.mymemory.translated.net"

// HTTPClient is a MyMemory translation API client. The free tier needs no API
// key for light usage.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the client.
type Option func(*HTTPClient)

// WithBaseURL overrides the API base URL (used in tests).
func WithBaseURL(u string) Option {
	return func(c *HTTPClient) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithTimeout sets the HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.httpClient.Timeout = d }
}

// New creates a translation client.
func New(opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type myMemoryResponse struct {
	ResponseStatus  json.Number `json:"responseStatus"`
	ResponseDetails string      `json:"responseDetails"`
	ResponseData    struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
}

// Translate looks up a translation. A translation identical to the input
// (case-insensitive) is treated as not found and returned as empty.
func (c *HTTPClient) Translate(ctx context.Context, text, from, to string) (string, error) {
	log := logger.FromContext(ctx).WithPrefix("translate")

	if text == "" {
		return "", nil
	}

	endpoint := fmt.Sprintf("%s/get?q=%s&langpair=%s", c.baseURL,
		url.QueryEscape(text), url.QueryEscape(from+"|"+to))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("translation request failed: %v", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation API returned status %d", resp.StatusCode)
	}

	var body myMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode translation response: %w", err)
	}

	if status, _ := body.ResponseStatus.Int64(); status != http.StatusOK {
		return "", fmt.Errorf("translation API error: %s", body.ResponseDetails)
	}

	translated := strings.TrimSpace(body.ResponseData.TranslatedText)
	if strings.EqualFold(translated, text) {
		// Echoed input usually means the term was not found.
		return "", nil
	}
	return translated, nil
}
