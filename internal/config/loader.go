package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config captures environment driven configuration values for the schedule
// service.
type Config struct {
	HTTPPort int

	CatalogURL    string
	InstructorURL string
	GradesURL     string
	SeatsURL      string
	Term          string

	FetchTimeout       time.Duration
	CatalogTTL         time.Duration
	DirectoryCacheSize int
	GradeCacheSize     int

	TermStart time.Time
	TermEnd   time.Time

	InstructorsCSV string
	GradesCSV      string
}

// Load parses configuration values from the current process environment. A
// .env file in the working directory is read first when present.
//
// The loader applies defaults for optional fields while validating required
// values, accumulating every missing or invalid entry into one error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPPort:           8080,
		FetchTimeout:       15 * time.Second,
		CatalogTTL:         time.Hour,
		DirectoryCacheSize: 1024,
		GradeCacheSize:     1024,
	}

	missing := make([]string, 0, 4)
	invalid := make([]string, 0, 4)

	if portValue := strings.TrimSpace(os.Getenv("SCHEDULER_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "SCHEDULER_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	requiredURL := func(name string, target *string) {
		value := strings.TrimSpace(os.Getenv(name))
		if value == "" {
			missing = append(missing, name)
			return
		}
		*target = value
	}
	requiredURL("SCHEDULER_CATALOG_URL", &cfg.CatalogURL)
	requiredURL("SCHEDULER_INSTRUCTOR_URL", &cfg.InstructorURL)
	requiredURL("SCHEDULER_GRADES_URL", &cfg.GradesURL)
	requiredURL("SCHEDULER_SEATS_URL", &cfg.SeatsURL)

	if term := strings.TrimSpace(os.Getenv("SCHEDULER_TERM")); term == "" {
		missing = append(missing, "SCHEDULER_TERM")
	} else {
		cfg.Term = term
	}

	if value := strings.TrimSpace(os.Getenv("SCHEDULER_FETCH_TIMEOUT")); value != "" {
		timeout, err := time.ParseDuration(value)
		if err != nil || timeout <= 0 {
			invalid = append(invalid, "SCHEDULER_FETCH_TIMEOUT")
		} else {
			cfg.FetchTimeout = timeout
		}
	}

	if value := strings.TrimSpace(os.Getenv("SCHEDULER_CATALOG_TTL")); value != "" {
		ttl, err := time.ParseDuration(value)
		if err != nil || ttl <= 0 {
			invalid = append(invalid, "SCHEDULER_CATALOG_TTL")
		} else {
			cfg.CatalogTTL = ttl
		}
	}

	cacheSize := func(name string, target *int) {
		value := strings.TrimSpace(os.Getenv(name))
		if value == "" {
			return
		}
		size, err := strconv.Atoi(value)
		if err != nil || size <= 0 {
			invalid = append(invalid, name)
			return
		}
		*target = size
	}
	cacheSize("SCHEDULER_DIRECTORY_CACHE", &cfg.DirectoryCacheSize)
	cacheSize("SCHEDULER_GRADE_CACHE", &cfg.GradeCacheSize)

	if value := strings.TrimSpace(os.Getenv("SCHEDULER_TERM_START")); value != "" {
		start, err := time.Parse("2006-01-02", value)
		if err != nil {
			invalid = append(invalid, "SCHEDULER_TERM_START")
		} else {
			cfg.TermStart = start
		}
	}
	if cfg.TermStart.IsZero() {
		now := time.Now().UTC()
		cfg.TermStart = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	if value := strings.TrimSpace(os.Getenv("SCHEDULER_TERM_END")); value != "" {
		end, err := time.Parse("2006-01-02", value)
		if err != nil || !end.After(cfg.TermStart) {
			invalid = append(invalid, "SCHEDULER_TERM_END")
		} else {
			cfg.TermEnd = end
		}
	}
	if cfg.TermEnd.IsZero() {
		cfg.TermEnd = cfg.TermStart.AddDate(0, 0, 7*16)
	}

	cfg.InstructorsCSV = strings.TrimSpace(os.Getenv("SCHEDULER_INSTRUCTORS_CSV"))
	cfg.GradesCSV = strings.TrimSpace(os.Getenv("SCHEDULER_GRADES_CSV"))

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables are not set: %s", strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("environment variables have invalid values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
