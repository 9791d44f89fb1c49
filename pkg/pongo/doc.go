// Package pongo exposes the style formatters to pongo2 templates.
//
// Two global filters are registered, both backed by style.Default():
//
//	{{ total|numfmt:"c" }}
//	{{ created|datefmt:"medium" }}
//
// An Engine additionally provides `number(value, qualifier)` and
// `date(value, qualifier)` functions bound to its own Styles instance, so
// templates can use a locale other than the process default.
package pongo
