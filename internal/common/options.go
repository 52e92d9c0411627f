package common

import (
	"time"

	"go.uber.org/zap"
)

// ServiceOptions defines common options for service constructors
type ServiceOptions struct {
	Logger      *zap.Logger
	ConfigPath  string
	DomainsFile string
	Now         func() time.Time
}

// Option defines a service option modifier
type Option func(*ServiceOptions)

func NewServiceOptions(opts ...Option) *ServiceOptions {
	options := &ServiceOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}
	if options.Now == nil {
		options.Now = func() time.Time { return time.Now().UTC() }
	}

	return options
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *ServiceOptions) {
		o.Logger = logger
	}
}

// WithConfigPath overrides CONFIG_PATH
func WithConfigPath(path string) Option {
	return func(o *ServiceOptions) {
		o.ConfigPath = path
	}
}

// WithDomainsFile overrides both the config file and DOMAIN_FILE
func WithDomainsFile(path string) Option {
	return func(o *ServiceOptions) {
		o.DomainsFile = path
	}
}

// WithClock fixes the evaluation instant of a run
func WithClock(now func() time.Time) Option {
	return func(o *ServiceOptions) {
		o.Now = now
	}
}
