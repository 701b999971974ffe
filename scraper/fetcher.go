// backend/scraper/fetcher.go
package scraper

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gewnthar/eaterhistory/backend/config"
)

// FetchText retrieves the body of the given URL as a string. Any non-2xx
// status is an error; callers decide whether that failure is skippable (a
// historical capture) or fatal (the mandatory live capture).
func FetchText(url string) (string, error) {
	client := http.Client{Timeout: config.AppConfig.Sync.FetchTimeout}

	resp, err := client.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to make GET request to %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("failed to fetch %s: received status code %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body from %s: %w", url, err)
	}
	return string(body), nil
}
