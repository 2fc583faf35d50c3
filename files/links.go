package files

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"drama-bot/models"
)

// AttachmentResolver validates an attachment URL by issuing a HEAD request.
// Platform CDN links expire; a dead link must not end up on the website.
type AttachmentResolver struct {
	client *http.Client
}

// NewAttachmentResolver creates a resolver. A nil client gets a default with
// a short timeout.
func NewAttachmentResolver(client *http.Client) *AttachmentResolver {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &AttachmentResolver{client: client}
}

// Resolve checks that the reference's URL is still reachable and returns it.
func (r *AttachmentResolver) Resolve(ctx context.Context, ref models.UploadRef) (string, error) {
	if ref.URL == "" {
		return "", fmt.Errorf("reference %s has no download URL", ref.ID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, ref.URL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach download URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download URL returned status %d", resp.StatusCode)
	}

	return ref.URL, nil
}

// OuoShortener shortens URLs through the ouo.io quick-shorten API.
type OuoShortener struct {
	apiKey  string
	enabled bool
	client  *http.Client
}

// NewOuoShortener creates a shortener. When disabled or without an API key
// it passes URLs through unchanged.
func NewOuoShortener(apiKey string, enabled bool, client *http.Client) *OuoShortener {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &OuoShortener{apiKey: apiKey, enabled: enabled, client: client}
}

// Shorten returns the shortened URL, or the input unchanged when shortening
// is disabled.
func (s *OuoShortener) Shorten(ctx context.Context, target string) (string, error) {
	if !s.enabled || s.apiKey == "" {
		return target, nil
	}

	api := fmt.Sprintf("https://ouo.io/api/%s?s=%s", s.apiKey, url.QueryEscape(target))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, api, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("shortener request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("shortener returned status %d", resp.StatusCode)
	}

	// The quick-shorten endpoint redirects to the shortened URL.
	final := resp.Request.URL.String()
	if final == "" {
		return "", fmt.Errorf("shortener returned an empty URL")
	}
	return final, nil
}
