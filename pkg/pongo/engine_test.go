package pongo_test

import (
	"strings"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"golang.org/x/text/language"

	"github.com/goliatone/go-fieldfmt/pkg/pongo"
	"github.com/goliatone/go-fieldfmt/pkg/style"
)

var stamp = time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)

func TestFilters(t *testing.T) {
	t.Parallel()

	engine := pongo.New()
	cases := []struct {
		tpl  string
		want string
	}{
		{`{{ n|numfmt:"pct" }}`, "25%"},
		{`{{ n|numfmt }}`, "0.25"},
		{`{{ count|numfmt:"ord" }}`, "3rd"},
		{`{{ when|datefmt:"yyyy-MM-dd" }}`, "2024-03-05"},
		{`{{ when|datefmt:"short" }}`, "3/5/24, 2:07 pm"},
	}
	data := map[string]any{"n": 0.25, "count": 3, "when": stamp}

	for _, tc := range cases {
		got, err := engine.RenderString(tc.tpl, data)
		if err != nil {
			t.Fatalf("render %s: %v", tc.tpl, err)
		}
		if got != tc.want {
			t.Errorf("render %s = %q, want %q", tc.tpl, got, tc.want)
		}
	}
}

func TestFilterRejectsWrongType(t *testing.T) {
	t.Parallel()

	engine := pongo.New()
	if _, err := engine.RenderString(`{{ s|numfmt:"d" }}`, map[string]any{"s": "nope"}); err == nil {
		t.Fatalf("expected error for non-number input")
	}
	if _, err := engine.RenderString(`{{ s|datefmt:"y" }}`, map[string]any{"s": 12}); err == nil {
		t.Fatalf("expected error for non-time input")
	}
}

func TestEngineFunctionsUseOwnStyles(t *testing.T) {
	t.Parallel()

	styles := style.New(
		style.WithLocale(language.German),
		style.WithLocation(time.FixedZone("", 3600)),
	)
	engine := pongo.New(pongo.WithStyles(styles), pongo.WithGlobalData(map[string]any{"shop": "Laden"}))

	got, err := engine.RenderString(`{{ shop }}: {{ number(total, "d") }} um {{ date(when, "HH:mm") }}`,
		map[string]any{"total": 1234.5, "when": stamp})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Laden: 1.234,5 um 15:07" {
		t.Fatalf("render = %q", got)
	}
	if styles.NumberCache().Len() != 1 || styles.DateCache().Len() != 1 {
		t.Fatalf("expected engine helpers to use the bound styles caches")
	}
}

func TestRenderStringConcurrent(t *testing.T) {
	t.Parallel()

	engine := pongo.New(pongo.WithStyles(style.New(style.WithLocale(language.German))))

	var wg sync.WaitGroup
	for i := 1; i <= 16; i++ {
		wg.Add(1)
		go func(day int) {
			defer wg.Done()
			when := time.Date(2024, time.March, day, 9, 0, 0, 0, time.UTC)
			got, err := engine.RenderString(`{{ when|datefmt:"EEEE, d. MMMM" }}`, map[string]any{"when": when})
			if err != nil {
				t.Errorf("render: %v", err)
				return
			}
			want := when.Format("2") + ". März"
			if !strings.HasSuffix(got, want) {
				t.Errorf("day %d: render = %q, want suffix %q", day, got, want)
			}
		}(i)
	}
	wg.Wait()
}

func TestRenderTemplateFromFS(t *testing.T) {
	t.Parallel()

	files := fstest.MapFS{
		"receipt.tpl": {Data: []byte(`{{ name }} owes {{ amount|numfmt:"ciso" }}`)},
	}
	engine := pongo.New(pongo.WithFS(files))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := engine.RenderTemplate("receipt.tpl", map[string]any{"name": "Ada", "amount": 12})
			if err != nil {
				t.Errorf("render: %v", err)
				return
			}
			if got != "Ada owes USD 12.00" {
				t.Errorf("render = %q", got)
			}
		}()
	}
	wg.Wait()

	if _, err := engine.RenderTemplate("missing.tpl", nil); err == nil || !strings.Contains(err.Error(), "missing.tpl") {
		t.Fatalf("expected load error, got %v", err)
	}
}
