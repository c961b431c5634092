// Package feed implements the external data collaborators of the schedule
// engine: the course catalog, the instructor directory, the historical grade
// archive and the live seat tracker. Each client satisfies the matching
// scheduler interface and owns its own caching policy.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("feed: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("feed: %s returned status %d", req.URL.Path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("feed: decode %s: %w", req.URL.Path, err)
	}
	return nil
}

func trimBaseURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/")
}
