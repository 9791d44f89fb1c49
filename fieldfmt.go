package fieldfmt

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-fieldfmt/internal/logging"
	"github.com/goliatone/go-fieldfmt/pkg/field"
	"github.com/goliatone/go-fieldfmt/pkg/style"
	"github.com/goliatone/go-fieldfmt/pkg/template"
)

// Option aliases template.Option.
type Option = template.Option

// UnknownFieldError aliases field.UnknownFieldError.
type UnknownFieldError = field.UnknownFieldError

var (
	// ErrInvalidFormat reports template text the grammar cannot accept.
	ErrInvalidFormat = template.ErrInvalidFormat
	// ErrUnknownField reports a placeholder naming no field of the schema.
	ErrUnknownField = field.ErrUnknownField
)

// Compile parses text against schema into a reusable template.
func Compile[R any](schema field.Schema[R], text string, options ...Option) (*template.Template[R], error) {
	return template.Compile(schema, text, options...)
}

// MustCompile is like Compile but panics on error.
func MustCompile[R any](schema field.Schema[R], text string, options ...Option) *template.Template[R] {
	return template.MustCompile(schema, text, options...)
}

// WithStyles re-exports template.WithStyles.
func WithStyles(styles *style.Styles) Option {
	return template.WithStyles(styles)
}

// WithHTMLSanitizer re-exports template.WithHTMLSanitizer.
func WithHTMLSanitizer() Option {
	return template.WithHTMLSanitizer()
}

// SetLogger installs the logger used for debug events across the module.
// Passing nil restores the no-op logger.
func SetLogger(logger *zap.Logger) {
	logging.SetLogger(logger)
}
