package cfg

import (
	"cmp"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Dataset source
	Source       string `long:"source" env:"SOURCE" default:"sample" choice:"sample" choice:"file" choice:"feed" choice:"sqlite" description:"Dataset source kind"`
	SourcePath   string `long:"source-path" env:"SOURCE_PATH" description:"Dataset file, feed path/URL or SQLite database path"`
	FetchTimeout int    `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"30" description:"Timeout in seconds for fetching a remote feed"`

	// HTTP server
	Port         string  `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	BaseUrl      string  `long:"base-url" env:"BASE_URL" description:"Public base URL for the service (e.g., https://search.example.com)"`
	APIAccessKey string  `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for /api endpoints (optional)"`
	RateLimit    float64 `long:"rate-limit" env:"RATE_LIMIT" default:"0" description:"Requests per second allowed across all clients, 0 disables limiting"`
	RateBurst    int     `long:"rate-burst" env:"RATE_BURST" default:"20" description:"Burst size for the rate limiter"`

	// Presentation
	PreviewLength int `long:"preview-length" env:"PREVIEW_LENGTH" default:"150" description:"Number of characters shown in content previews"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Blog Search/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

// Load parses the process arguments and environment. It returns nil, nil when help was requested.
func Load() (*Cfg, error) {
	return LoadArgs(os.Args[1:])
}

func LoadArgs(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Source:        raw.Source,
		SourcePath:    raw.SourcePath,
		FetchTimeout:  time.Duration(raw.FetchTimeout) * time.Second,
		Port:          raw.Port,
		BaseUrl:       raw.BaseUrl,
		APIAccessKey:  raw.APIAccessKey,
		RateLimit:     raw.RateLimit,
		RateBurst:     raw.RateBurst,
		PreviewLength: raw.PreviewLength,
		UserAgent:     raw.UserAgent,
		Timezone:      raw.Timezone,
		Debug:         raw.Debug,
		Version:       GetVersion(),
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func validate(cfg *Cfg) error {
	if cfg.Source != "sample" && cfg.SourcePath == "" {
		return fmt.Errorf("source path is required for source %q", cfg.Source)
	}

	nonNegativeFields := map[string]int{
		"fetch timeout":  int(cfg.FetchTimeout),
		"rate burst":     cfg.RateBurst,
		"preview length": cfg.PreviewLength,
	}

	for fieldName, fieldValue := range nonNegativeFields {
		if fieldValue < 0 {
			return fmt.Errorf("%s must be non-negative", fieldName)
		}
	}

	if cfg.RateLimit < 0 {
		return fmt.Errorf("rate limit must be non-negative")
	}

	return nil
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
