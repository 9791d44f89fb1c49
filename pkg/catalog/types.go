package catalog

// Settings holds the style configuration declared by catalog files.
type Settings struct {
	Locale      string            `json:"locale" yaml:"locale"`
	Timezone    string            `json:"timezone" yaml:"timezone"`
	Currency    string            `json:"currency" yaml:"currency"`
	DateAliases map[string]string `json:"dateAliases" yaml:"dateAliases"`
}

// Entry is one named template.
type Entry struct {
	Name   string
	Text   string
	Source string
}

// Store is the parsed, uncompiled catalog.
type Store struct {
	settings  Settings
	templates map[string]Entry
}

type documentFile struct {
	Styles    Settings          `json:"styles" yaml:"styles"`
	Templates map[string]string `json:"templates" yaml:"templates"`
}
