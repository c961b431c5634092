package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/example/course-scheduler/internal/catalog"
)

// CatalogClient fetches course records from the catalog API. Responses are
// cached per fetch hint for the configured TTL; course data changes rarely
// within a term, so a stale-for-minutes answer is acceptable.
type CatalogClient struct {
	baseURL string
	client  *http.Client
	cache   *ttlCache[[]catalog.Course]
}

// NewCatalogClient builds a catalog client rooted at baseURL.
func NewCatalogClient(baseURL string, client *http.Client, ttl time.Duration) *CatalogClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &CatalogClient{
		baseURL: trimBaseURL(baseURL),
		client:  client,
		cache:   newTTLCache[[]catalog.Course](ttl, 256, nil),
	}
}

// Courses returns every course whose code starts with hint. An empty hint
// asks the API for the full catalog.
func (c *CatalogClient) Courses(ctx context.Context, hint string) ([]catalog.Course, error) {
	if cached, ok := c.cache.Get(hint); ok {
		return cached, nil
	}

	endpoint := fmt.Sprintf("%s/v0/courses?courseCodes=%s", c.baseURL, url.QueryEscape(hint))
	var courses []catalog.Course
	if err := getJSON(ctx, c.client, endpoint, &courses); err != nil {
		return nil, fmt.Errorf("catalog fetch %q: %w", hint, err)
	}

	c.cache.Store(hint, courses)
	return courses, nil
}
