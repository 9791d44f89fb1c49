package pongo

import (
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-fieldfmt/pkg/style"
)

const (
	FilterNumber = "numfmt"
	FilterDate   = "datefmt"
)

var registerOnce sync.Once

// RegisterFilters installs the numfmt and datefmt filters. Filters already
// registered under those names are left alone. Safe to call repeatedly.
func RegisterFilters() {
	registerOnce.Do(func() {
		if !pongo2.FilterExists(FilterNumber) {
			_ = pongo2.RegisterFilter(FilterNumber, filterNumber)
		}
		if !pongo2.FilterExists(FilterDate) {
			_ = pongo2.RegisterFilter(FilterDate, filterDate)
		}
	})
}

func filterNumber(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	n, err := toNumber(in.Interface())
	if err != nil {
		return nil, &pongo2.Error{Sender: "filter:" + FilterNumber, OrigError: err}
	}
	return pongo2.AsValue(style.Default().FormatNumber(qualifier(param), n)), nil
}

func filterDate(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	t, err := toTime(in.Interface())
	if err != nil {
		return nil, &pongo2.Error{Sender: "filter:" + FilterDate, OrigError: err}
	}
	return pongo2.AsValue(style.Default().Date(qualifier(param)).FormatDate(t)), nil
}

func qualifier(param *pongo2.Value) style.Qualifier {
	if param == nil || param.IsNil() {
		return style.NoQualifier
	}
	return style.Q(param.String())
}
