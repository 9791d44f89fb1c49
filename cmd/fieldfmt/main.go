// Command fieldfmt renders a placeholder template against a YAML or JSON
// record.
//
//	fieldfmt -template '$name joined $joined|medium' -record user.yaml
//	fieldfmt -catalog ./templates -name receipt -record order.json
//	fieldfmt -record user.yaml -interactive
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	fieldfmt "github.com/goliatone/go-fieldfmt"
	"github.com/goliatone/go-fieldfmt/internal/prompt"
	"github.com/goliatone/go-fieldfmt/pkg/catalog"
	"github.com/goliatone/go-fieldfmt/pkg/field"
	"github.com/goliatone/go-fieldfmt/pkg/style"
	"github.com/goliatone/go-fieldfmt/pkg/template"
)

type options struct {
	template    string
	record      string
	catalogDir  string
	name        string
	locale      string
	timezone    string
	currency    string
	list        bool
	interactive bool
	verbose     bool
}

func main() {
	err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, prompt.NewSurvey())
	if errors.Is(err, flag.ErrHelp) || errors.Is(err, prompt.ErrAborted) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "fieldfmt: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("fieldfmt", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.template, "template", "", "template text to render")
	fs.StringVar(&opts.record, "record", "", "YAML or JSON record file (- for stdin)")
	fs.StringVar(&opts.catalogDir, "catalog", "", "directory of catalog files")
	fs.StringVar(&opts.name, "name", "", "catalog template to render")
	fs.StringVar(&opts.locale, "locale", "", "BCP 47 locale for number styles")
	fs.StringVar(&opts.timezone, "tz", "", "IANA time zone for dates")
	fs.StringVar(&opts.currency, "currency", "", "ISO 4217 currency code")
	fs.BoolVar(&opts.list, "list", false, "list catalog templates and exit")
	fs.BoolVar(&opts.interactive, "interactive", false, "prompt for templates or catalog entries")
	fs.BoolVar(&opts.verbose, "verbose", false, "log debug events to stderr")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, driver prompt.Driver) error {
	opts, err := parseFlags(args, stdout)
	if err != nil {
		return err
	}

	if opts.verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()
		fieldfmt.SetLogger(logger)
		defer fieldfmt.SetLogger(nil)
	}

	record, err := readRecord(opts.record, stdin)
	if err != nil {
		return err
	}
	schema := field.Dynamic(record)

	if opts.catalogDir != "" {
		return runCatalog(ctx, opts, schema, record, stdout, driver)
	}

	styleOpts, err := flagStyleOptions(opts)
	if err != nil {
		return err
	}
	styles := style.New(styleOpts...)

	switch {
	case opts.template != "":
		tmpl, err := template.Compile[map[string]any](schema, opts.template, template.WithStyles(styles))
		if err != nil {
			return err
		}
		return tmpl.Execute(lineWriter{stdout}, record)
	case opts.interactive:
		return interactive(ctx, schema, styles, record, stdout, driver)
	default:
		return errors.New("one of -template, -catalog or -interactive is required")
	}
}

func runCatalog(ctx context.Context, opts options, schema field.MapSchema, record map[string]any, stdout io.Writer, driver prompt.Driver) error {
	store, err := catalog.LoadFS(os.DirFS(opts.catalogDir))
	if err != nil {
		return err
	}
	if opts.list {
		for _, name := range store.Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	catalogOpts, err := store.StyleOptions()
	if err != nil {
		return err
	}
	flagOpts, err := flagStyleOptions(opts)
	if err != nil {
		return err
	}
	styles := style.New(append(catalogOpts, flagOpts...)...)

	set, err := catalog.Compile[map[string]any](store, schema, template.WithStyles(styles))
	if err != nil {
		return err
	}

	name := opts.name
	if name == "" && opts.interactive {
		names := set.Names()
		if len(names) == 0 {
			return errors.New("catalog has no templates")
		}
		idx, err := driver.Select(ctx, prompt.SelectConfig{Message: "Template", Options: names})
		if err != nil {
			return err
		}
		name = names[idx]
	}
	if name == "" {
		return errors.New("-name is required with -catalog")
	}

	out, err := set.Render(name, record)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}

// interactive prompts for templates until an empty answer or an interrupt.
func interactive(ctx context.Context, schema field.MapSchema, styles *style.Styles, record map[string]any, stdout io.Writer, driver prompt.Driver) error {
	compile := func(text string) (*template.Template[map[string]any], error) {
		return template.Compile[map[string]any](schema, text, template.WithStyles(styles))
	}

	for {
		text, err := driver.Input(ctx, prompt.InputConfig{
			Message: "Template",
			Help:    "use $field or $field|style; leave empty to quit",
			Validator: func(s string) error {
				if strings.TrimSpace(s) == "" {
					return nil
				}
				_, err := compile(s)
				return err
			},
		})
		if errors.Is(err, prompt.ErrAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(text) == "" {
			return nil
		}

		tmpl, err := compile(text)
		if err != nil {
			fmt.Fprintf(stdout, "error: %v\n", err)
			continue
		}
		if err := tmpl.Execute(lineWriter{stdout}, record); err != nil {
			return err
		}
	}
}

func flagStyleOptions(opts options) ([]style.Option, error) {
	var out []style.Option
	if opts.locale != "" {
		tag, err := language.Parse(opts.locale)
		if err != nil {
			return nil, fmt.Errorf("invalid -locale %q: %w", opts.locale, err)
		}
		out = append(out, style.WithLocale(tag))
	}
	if opts.timezone != "" {
		loc, err := time.LoadLocation(opts.timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid -tz %q: %w", opts.timezone, err)
		}
		out = append(out, style.WithLocation(loc))
	}
	if opts.currency != "" {
		unit, err := currency.ParseISO(opts.currency)
		if err != nil {
			return nil, fmt.Errorf("invalid -currency %q: %w", opts.currency, err)
		}
		out = append(out, style.WithCurrency(unit))
	}
	return out, nil
}

// lineWriter terminates each write with a newline.
type lineWriter struct {
	w io.Writer
}

func (lw lineWriter) Write(p []byte) (int, error) {
	if _, err := lw.w.Write(append(p[:len(p):len(p)], '\n')); err != nil {
		return 0, err
	}
	return len(p), nil
}
