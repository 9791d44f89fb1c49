package template

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-fieldfmt/pkg/style"
)

// Option configures compilation.
type Option func(*config)

type config struct {
	styles     *style.Styles
	transforms []func(string) string
}

// WithStyles compiles against a specific Styles instance instead of
// style.Default().
func WithStyles(styles *style.Styles) Option {
	return func(cfg *config) {
		cfg.styles = styles
	}
}

// WithTransform post-processes the output of every placeholder. Literal text
// is left untouched. Transforms run in registration order.
func WithTransform(fn func(string) string) Option {
	return func(cfg *config) {
		if fn == nil {
			return
		}
		cfg.transforms = append(cfg.transforms, fn)
	}
}

// WithSanitizer runs placeholder output through a bluemonday policy.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy == nil {
			return
		}
		WithTransform(policy.Sanitize)(cfg)
	}
}

// WithHTMLSanitizer strips markup from placeholder output with bluemonday's
// strict policy, for templates that produce HTML.
func WithHTMLSanitizer() Option {
	return WithSanitizer(bluemonday.StrictPolicy())
}

func (cfg config) transform() func(string) string {
	switch len(cfg.transforms) {
	case 0:
		return nil
	case 1:
		return cfg.transforms[0]
	}
	transforms := append([]func(string) string(nil), cfg.transforms...)
	return func(s string) string {
		for _, fn := range transforms {
			s = fn(s)
		}
		return s
	}
}
