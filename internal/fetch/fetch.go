// Package fetch downloads coordinate files from the RCSB archive.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultBaseURL is the RCSB file download endpoint.
const DefaultBaseURL = "https://files.rcsb.org/download"

// Client fetches entries by PDB identifier.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client against the RCSB archive.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 2 * time.Minute},
		baseURL:    DefaultBaseURL,
	}
}

// NewClientWithBaseURL creates a client against an alternate mirror.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// Fetch downloads one entry and returns its raw text.
func (c *Client) Fetch(ctx context.Context, id string) ([]byte, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	if id == "" {
		return nil, fmt.Errorf("empty pdb id")
	}

	url := fmt.Sprintf("%s/%s.pdb", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: HTTP status %d", id, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", id, err)
	}
	return body, nil
}

// FetchToFile downloads one entry into dir and returns the written path.
// An already-downloaded entry is not fetched again.
func (c *Client) FetchToFile(ctx context.Context, id, dir string) (string, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	dest := filepath.Join(dir, id+".pdb")
	if _, err := os.Stat(dest); err == nil {
		return dest, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create download directory: %w", err)
	}

	body, err := c.Fetch(ctx, id)
	if err != nil {
		return "", err
	}

	tmp := dest + ".tmp"
	if err := os.WriteFile(tmp, body, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", dest, err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		return "", fmt.Errorf("rename %s: %w", dest, err)
	}
	return dest, nil
}
