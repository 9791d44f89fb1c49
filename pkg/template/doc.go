// Package template compiles placeholder templates such as
//
//	Posted $date|medium by $author ($count|d views)
//
// into reusable render functions for a record type.
//
// Grammar:
//   - `$name` or `$name|qualifier` is a placeholder. Names are made of
//     letters, '_', '.' and '|'; qualifiers may also hold digits, so
//     `$date|iso8601` is one placeholder while `$count1` is `$count`
//     followed by "1". The first other character ends the placeholder. The
//     reference is split on its first '|'.
//   - `$$` renders a single '$'.
//   - `\` renders the next character literally, whatever it is.
//   - A '$' not followed by a placeholder character renders as '$', and so
//     does a trailing '$'. A trailing lone `\` is dropped.
//
// Compilation fails with ErrInvalidFormat when a placeholder has an empty
// field name: `$|x` is an error, not the literal text "$|x", so write `$$|x`
// or `\$|x` to print it. Compilation fails with field.ErrUnknownField when a
// name matches no extractor. Rendering never fails.
package template
