package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/example/course-scheduler/internal/catalog"
)

// InstructorClient resolves instructor directory records, batching unknown
// names into a single API call. Names the directory does not know are cached
// as bare records so they are never refetched.
type InstructorClient struct {
	baseURL string
	client  *http.Client
	cache   *lru.Cache[string, catalog.InstructorRecord]
}

// NewInstructorClient builds a directory client rooted at baseURL. cacheSize
// bounds the number of remembered instructor records.
func NewInstructorClient(baseURL string, client *http.Client, cacheSize int) (*InstructorClient, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if cacheSize <= 0 {
		cacheSize = 1024
	}
	cache, err := lru.New[string, catalog.InstructorRecord](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("feed: instructor cache: %w", err)
	}
	return &InstructorClient{baseURL: trimBaseURL(baseURL), client: client, cache: cache}, nil
}

// Instructors returns one record per requested name, fetching only names not
// already cached.
func (c *InstructorClient) Instructors(ctx context.Context, names []string) ([]catalog.InstructorRecord, error) {
	records := make([]catalog.InstructorRecord, 0, len(names))
	var missing []string
	for _, name := range names {
		if record, ok := c.cache.Get(name); ok {
			records = append(records, record)
			continue
		}
		missing = append(missing, name)
	}
	if len(missing) == 0 {
		return records, nil
	}

	endpoint := fmt.Sprintf("%s/v0/instructors?instructorNames=%s", c.baseURL, url.QueryEscape(strings.Join(missing, ",")))
	var fetched []catalog.InstructorRecord
	if err := getJSON(ctx, c.client, endpoint, &fetched); err != nil {
		return nil, fmt.Errorf("instructor fetch: %w", err)
	}

	byName := make(map[string]catalog.InstructorRecord, len(fetched))
	for _, record := range fetched {
		byName[record.Name] = record
	}
	for _, name := range missing {
		record, ok := byName[name]
		if !ok {
			record = catalog.InstructorRecord{Name: name}
		}
		c.cache.Add(name, record)
		records = append(records, record)
	}
	return records, nil
}
