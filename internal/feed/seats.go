package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/example/course-scheduler/internal/catalog"
)

// SeatsScraper reads live seat counts out of the schedule-of-classes HTML.
// Seat counts move constantly during registration, so the scraper never
// caches; every generation call sees the page as it is right now.
type SeatsScraper struct {
	baseURL string
	term    string
	client  *http.Client
}

// NewSeatsScraper builds a scraper against the schedule-of-classes pages for
// one term identifier.
func NewSeatsScraper(baseURL, term string, client *http.Client) *SeatsScraper {
	if client == nil {
		client = http.DefaultClient
	}
	return &SeatsScraper{baseURL: trimBaseURL(baseURL), term: term, client: client}
}

// Seats scrapes the seat counts of every listed section of course, keyed by
// section ID.
func (s *SeatsScraper) Seats(ctx context.Context, course string) (map[string]catalog.SeatCount, error) {
	endpoint := fmt.Sprintf("%s/soc/%s/sections?courseIds=%s", s.baseURL, url.PathEscape(s.term), url.QueryEscape(course))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("feed: build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed: seat fetch for %s: %w", course, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed: seat page for %s returned status %d", course, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("feed: parse seat page for %s: %w", course, err)
	}

	counts := make(map[string]catalog.SeatCount)
	var scrapeErr error
	doc.Find(fmt.Sprintf("#%s .section", course)).Each(func(_ int, section *goquery.Selection) {
		if scrapeErr != nil {
			return
		}
		id := strings.TrimSpace(section.Find(".section-id").First().Text())
		if id == "" {
			scrapeErr = fmt.Errorf("feed: section without an ID on seat page for %s", course)
			return
		}
		seats, err := seatField(section, ".total-seats-count")
		if err != nil {
			scrapeErr = fmt.Errorf("feed: section %s %s: %w", course, id, err)
			return
		}
		open, err := seatField(section, ".open-seats-count")
		if err != nil {
			scrapeErr = fmt.Errorf("feed: section %s %s: %w", course, id, err)
			return
		}
		waitlist, err := seatField(section, ".waitlist-count")
		if err != nil {
			scrapeErr = fmt.Errorf("feed: section %s %s: %w", course, id, err)
			return
		}
		counts[id] = catalog.SeatCount{Seats: seats, OpenSeats: open, Waitlist: waitlist}
	})
	if scrapeErr != nil {
		return nil, scrapeErr
	}
	return counts, nil
}

func seatField(section *goquery.Selection, selector string) (int, error) {
	text := strings.TrimSpace(section.Find(selector).First().Text())
	if text == "" {
		return 0, fmt.Errorf("missing %s", selector)
	}
	count, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("malformed %s %q", selector, text)
	}
	return count, nil
}
