// Package catalog loads named templates and their style settings from JSON
// or YAML files and compiles them against a schema.
//
// A catalog file looks like:
//
//	styles:
//	  locale: de-DE
//	  timezone: Europe/Berlin
//	  currency: EUR
//	  dateAliases:
//	    day: dd.MM.yyyy
//	templates:
//	  receipt: "$customer paid $total|c on $paid|day"
//
// Several files may contribute templates; names must be unique across all of
// them, and style settings must agree when more than one file sets them.
package catalog
