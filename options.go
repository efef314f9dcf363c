package getresult

import "github.com/viant/getresult/token"

// Option mutates assembly options.
type Option interface{ apply(*Options) }

type optionFn func(*Options)

func (o optionFn) apply(opts *Options) { o(opts) }

// Options defines assembly behavior.
type Options struct {
	Logger         *Logger
	CompressSource bool
	ScannerOptions []token.Option
}

// WithLogger enables debug logging of skipped structures and assembled results.
func WithLogger(logger *Logger) Option {
	return optionFn(func(o *Options) { o.Logger = logger })
}

// WithSourceCompression stores the captured source as a zstd frame.
func WithSourceCompression(enabled bool) Option {
	return optionFn(func(o *Options) { o.CompressSource = enabled })
}

// WithScannerOptions configures the scanner built by Unmarshal and Decode.
func WithScannerOptions(opts ...token.Option) Option {
	return optionFn(func(o *Options) { o.ScannerOptions = append(o.ScannerOptions, opts...) })
}

func resolveOptions(opts []Option) Options {
	var result Options
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(&result)
	}
	return result
}
