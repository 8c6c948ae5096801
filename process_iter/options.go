package process_iter

import (
	"github.com/Moonlight-Companies/gologger/logger"
)

// DefaultRoot is the process-information filesystem scanned by the Unix backend.
const DefaultRoot = "/proc"

type config struct {
	root string
	log  *logger.Logger
}

// Option configures Begin and All.
type Option func(*config)

// WithRoot scans root instead of DefaultRoot. Useful for containers that mount the
// host's proc filesystem elsewhere. Ignored by the snapshot backend.
func WithRoot(root string) Option {
	return func(c *config) {
		if root != "" {
			c.root = root
		}
	}
}

// WithLogger replaces the package logger for one enumeration.
func WithLogger(l *logger.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		root: DefaultRoot,
		log:  log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
