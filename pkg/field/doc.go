// Package field describes how a record type exposes typed values by field
// name, and resolves a field reference (`name` or `name|qualifier`) into a
// string-producing extractor.
//
// A record type declares at most one extractor per value kind for a field
// name. When several kinds answer for the same name the first one in the
// fixed priority order wins: string, int, float, double, date.
package field
