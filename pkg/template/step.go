package template

// StepKind tells literal steps from extraction steps.
type StepKind uint8

const (
	StepLiteral StepKind = iota + 1
	StepExtract
)

func (k StepKind) String() string {
	switch k {
	case StepLiteral:
		return "literal"
	case StepExtract:
		return "extract"
	default:
		return "unknown"
	}
}

// Step is one unit of compiled output: fixed text or a field extraction.
// Steps are immutable.
type Step[R any] struct {
	kind    StepKind
	text    string
	ref     string
	extract func(R) string
}

// Literal returns a step that always renders text.
func Literal[R any](text string) Step[R] {
	return Step[R]{kind: StepLiteral, text: text}
}

// Extract returns a step rendering fn(record). ref is the placeholder
// reference the step was compiled from.
func Extract[R any](ref string, fn func(R) string) Step[R] {
	return Step[R]{kind: StepExtract, ref: ref, extract: fn}
}

// Kind returns the step variant.
func (s Step[R]) Kind() StepKind {
	return s.kind
}

// Text returns the literal text of a literal step.
func (s Step[R]) Text() string {
	return s.text
}

// Ref returns the field reference of an extraction step.
func (s Step[R]) Ref() string {
	return s.ref
}

// Render produces the step output for rec.
func (s Step[R]) Render(rec R) string {
	if s.kind == StepExtract {
		return s.extract(rec)
	}
	return s.text
}
