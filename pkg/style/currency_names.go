package style

import "golang.org/x/text/currency"

type currencyName struct {
	one   string
	other string
}

// English display names for the currency plural style. Currencies missing
// here render with their ISO code.
var currencyNames = map[string]currencyName{
	"USD": {"US dollar", "US dollars"},
	"EUR": {"euro", "euros"},
	"GBP": {"British pound", "British pounds"},
	"JPY": {"Japanese yen", "Japanese yen"},
	"CAD": {"Canadian dollar", "Canadian dollars"},
	"AUD": {"Australian dollar", "Australian dollars"},
	"CHF": {"Swiss franc", "Swiss francs"},
	"CNY": {"Chinese yuan", "Chinese yuan"},
	"INR": {"Indian rupee", "Indian rupees"},
	"MXN": {"Mexican peso", "Mexican pesos"},
	"BRL": {"Brazilian real", "Brazilian reals"},
	"SEK": {"Swedish krona", "Swedish kronor"},
}

func currencyDisplayName(unit currency.Unit, singular bool) string {
	code := unit.String()
	name, ok := currencyNames[code]
	if !ok {
		return code
	}
	if singular {
		return name.one
	}
	return name.other
}
