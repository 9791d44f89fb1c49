package style

import (
	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/pt"
	"golang.org/x/text/language"
)

// dateLocales lists the locales with localized date styles and names. The
// first entry is the fallback.
var dateLocales = []struct {
	tag   language.Tag
	build func() locales.Translator
}{
	{language.English, en.New},
	{language.BritishEnglish, en_GB.New},
	{language.German, de.New},
	{language.French, fr.New},
	{language.Spanish, es.New},
	{language.Italian, it.New},
	{language.Dutch, nl.New},
	{language.Portuguese, pt.New},
	{language.Japanese, ja.New},
}

var dateMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(dateLocales))
	for i, l := range dateLocales {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// translatorFor picks the closest supported date locale for tag, falling
// back to English.
func translatorFor(tag language.Tag) locales.Translator {
	_, index, confidence := dateMatcher.Match(tag)
	if confidence == language.No || index < 0 || index >= len(dateLocales) {
		return dateLocales[0].build()
	}
	return dateLocales[index].build()
}
