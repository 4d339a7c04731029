package cfg

import (
	"time"
)

type Cfg struct {
	// Dataset source
	Source       string
	SourcePath   string
	FetchTimeout time.Duration

	// HTTP server
	Port         string
	BaseUrl      string
	APIAccessKey string
	RateLimit    float64
	RateBurst    int

	// Presentation
	PreviewLength int

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
