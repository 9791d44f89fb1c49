package catalog_test

import (
	"errors"
	"os"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldfmt/pkg/catalog"
	"github.com/goliatone/go-fieldfmt/pkg/testsupport"
)

func TestLoadFSMergesFiles(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte("styles:\n  locale: en-GB\ntemplates:\n  greet: \"Hi $title\"\n")},
		"nested/b.json": {Data: []byte(`{"styles":{"timezone":"UTC","dateAliases":{"day":"yyyy-MM-dd"}},"templates":{"count":"$count|so"}}`)},
		"README.md":     {Data: []byte("# ignored")},
	}

	store, err := catalog.LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if diff := cmp.Diff([]string{"count", "greet"}, store.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	entry, ok := store.Template("count")
	if !ok || entry.Source != "nested/b.json" || entry.Text != "$count|so" {
		t.Fatalf("unexpected entry %+v", entry)
	}

	want := catalog.Settings{
		Locale:      "en-GB",
		Timezone:    "UTC",
		DateAliases: map[string]string{"day": "yyyy-MM-dd"},
	}
	if diff := cmp.Diff(want, store.Settings()); diff != "" {
		t.Fatalf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFSNil(t *testing.T) {
	t.Parallel()

	store, err := catalog.LoadFS(nil)
	if err != nil {
		t.Fatalf("LoadFS(nil): %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
}

func TestLoadFSErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		fsys fstest.MapFS
		want string
	}{
		{
			name: "duplicate template",
			fsys: fstest.MapFS{
				"a.yaml": {Data: []byte("templates:\n  x: a\n")},
				"b.yaml": {Data: []byte("templates:\n  x: b\n")},
			},
			want: `duplicate template "x"`,
		},
		{
			name: "conflicting locale",
			fsys: fstest.MapFS{
				"a.yaml": {Data: []byte("styles:\n  locale: en\n")},
				"b.yaml": {Data: []byte("styles:\n  locale: de\n")},
			},
			want: "conflicting",
		},
		{
			name: "redefined alias",
			fsys: fstest.MapFS{
				"a.yaml": {Data: []byte("styles:\n  dateAliases:\n    day: yyyy\n")},
				"b.yaml": {Data: []byte("styles:\n  dateAliases:\n    day: MM\n")},
			},
			want: `redefines date alias "day"`,
		},
		{
			name: "empty file",
			fsys: fstest.MapFS{"a.yaml": {Data: []byte("  \n")}},
			want: "is empty",
		},
		{
			name: "invalid document",
			fsys: fstest.MapFS{"a.json": {Data: []byte("templates: [unclosed")}},
			want: "invalid JSON or YAML",
		},
		{
			name: "empty name",
			fsys: fstest.MapFS{"a.yaml": {Data: []byte("templates:\n  \" \": x\n")}},
			want: "empty name",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := catalog.LoadFS(tc.fsys)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestStyleOptionsErrors(t *testing.T) {
	t.Parallel()

	for _, doc := range []string{
		"styles:\n  locale: \"not a locale!\"\n",
		"styles:\n  timezone: Not/AZone\n",
		"styles:\n  currency: XXXX\n",
	} {
		store, err := catalog.Parse([]byte(doc), "inline.yaml")
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if _, err := store.Styles(); err == nil {
			t.Errorf("expected styles error for %q", doc)
		}
	}
}

func TestCompileSet(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile("testdata/receipts.yaml")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	store, err := catalog.Parse(data, "receipts.yaml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	set, err := catalog.Compile[testsupport.Info](store, testsupport.InfoSchema())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	info := testsupport.SampleInfo()
	info.Date = time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	got, err := set.Render("summary", info)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "hello: 1.234,5 (5th)" {
		t.Fatalf("summary = %q", got)
	}

	got, _ = set.Render("stamped", info)
	if got != "hello am 05.03.2024" {
		t.Fatalf("stamped = %q", got)
	}

	if _, err := set.Render("missing", info); !errors.Is(err, catalog.ErrUnknownTemplate) {
		t.Fatalf("expected ErrUnknownTemplate, got %v", err)
	}
	if diff := cmp.Diff([]string{"stamped", "summary"}, set.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if tmpl, ok := set.Template("summary"); !ok || tmpl.Source() != "$title: $score|d ($count|ord)" {
		t.Fatalf("Template lookup failed")
	}
}

func TestCompileSetReportsTemplate(t *testing.T) {
	t.Parallel()

	store, err := catalog.Parse([]byte(`{"templates":{"bad":"$jumbo"}}`), "bad.json")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, err = catalog.Compile[testsupport.Info](store, testsupport.InfoSchema())
	if err == nil || !strings.Contains(err.Error(), `"bad"`) || !strings.Contains(err.Error(), "bad.json") {
		t.Fatalf("expected error naming template and file, got %v", err)
	}
}
