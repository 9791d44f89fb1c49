package style

// Qualifier is the optional style hint attached to a placeholder
// (`$field|qualifier`). The zero value is the absent qualifier, which is a
// different cache key from every present qualifier, including Q("").
type Qualifier struct {
	name string
	set  bool
}

// NoQualifier is the absent qualifier.
var NoQualifier = Qualifier{}

// Q returns a present qualifier carrying name verbatim.
func Q(name string) Qualifier {
	return Qualifier{name: name, set: true}
}

// Value returns the qualifier text and whether the qualifier is present.
func (q Qualifier) Value() (string, bool) {
	return q.name, q.set
}

// IsSet reports whether the qualifier is present.
func (q Qualifier) IsSet() bool {
	return q.set
}

// String renders the qualifier for logs and error messages.
func (q Qualifier) String() string {
	if !q.set {
		return "<none>"
	}
	return q.name
}
