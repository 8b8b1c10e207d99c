package catalog

import "github.com/rs/zerolog"

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used for load events. Defaults to zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(loader *Loader) {
		loader.logger = l
	}
}

// WithValidationOptions overrides DefaultValidationOptions.
func WithValidationOptions(opts ValidationOptions) Option {
	return func(loader *Loader) {
		loader.validation = opts
	}
}
