package template

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/goliatone/go-fieldfmt/pkg/field"
)

const (
	prefixChar = '$'
	escapeChar = '\\'
)

type parseState uint8

const (
	stateNone parseState = iota
	stateConstant
	stateTag
)

// isTagChar reports whether r may appear in a placeholder reference. Digits
// are only accepted once the qualifier separator has been read.
func isTagChar(r rune, qualified bool) bool {
	return unicode.IsLetter(r) || r == '_' || r == '.' || r == '|' ||
		(qualified && unicode.IsDigit(r))
}

// needsParse reports whether text contains anything other than plain
// characters.
func needsParse(text string) bool {
	return strings.ContainsAny(text, string([]rune{prefixChar, escapeChar}))
}

type parser[R any] struct {
	resolver *field.Resolver[R]

	state     parseState
	escaping  bool
	qualified bool
	tagStart  int
	buf       strings.Builder
	steps     []Step[R]
}

func newParser[R any](resolver *field.Resolver[R]) *parser[R] {
	return &parser[R]{resolver: resolver}
}

func (p *parser[R]) parse(text string) ([]Step[R], error) {
	for offset, r := range text {
		if err := p.next(offset, r); err != nil {
			return nil, err
		}
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return p.steps, nil
}

func (p *parser[R]) next(offset int, r rune) error {
	if p.escaping {
		p.escaping = false
		p.appendConstant(r)
		return nil
	}

	switch {
	case r == escapeChar:
		if err := p.endTag(); err != nil {
			return err
		}
		p.escaping = true
	case r == prefixChar:
		switch p.state {
		case stateTag:
			if p.buf.Len() == 0 {
				p.literal(string(prefixChar))
				p.state = stateNone
				return nil
			}
			if err := p.resolveTag(); err != nil {
				return err
			}
		case stateConstant:
			p.flushConstant()
		}
		p.state = stateTag
		p.qualified = false
		p.tagStart = offset
	case p.state == stateTag && !isTagChar(r, p.qualified):
		if err := p.endTag(); err != nil {
			return err
		}
		p.appendConstant(r)
	case p.state == stateTag:
		if r == '|' {
			p.qualified = true
		}
		p.buf.WriteRune(r)
	default:
		p.appendConstant(r)
	}
	return nil
}

func (p *parser[R]) finish() error {
	// a trailing escape has nothing to escape and is dropped
	p.escaping = false

	switch p.state {
	case stateConstant:
		p.flushConstant()
	case stateTag:
		return p.endTag()
	}
	return nil
}

// endTag closes the placeholder being read, if any. A bare '$' becomes
// literal text.
func (p *parser[R]) endTag() error {
	if p.state != stateTag {
		return nil
	}
	p.state = stateNone
	if p.buf.Len() == 0 {
		p.literal(string(prefixChar))
		return nil
	}
	return p.resolveTag()
}

func (p *parser[R]) resolveTag() error {
	ref := p.buf.String()
	p.buf.Reset()

	name, q := field.SplitRef(ref)
	if name == "" {
		return fmt.Errorf("%w: empty field name in %q at offset %d", ErrInvalidFormat, string(prefixChar)+ref, p.tagStart)
	}
	fn, err := p.resolver.Resolve(name, q)
	if err != nil {
		return fmt.Errorf("template: placeholder %q at offset %d: %w", string(prefixChar)+ref, p.tagStart, err)
	}
	p.steps = append(p.steps, Extract(ref, fn))
	return nil
}

func (p *parser[R]) appendConstant(r rune) {
	if p.state != stateConstant {
		p.state = stateConstant
		p.buf.Reset()
	}
	p.buf.WriteRune(r)
}

func (p *parser[R]) flushConstant() {
	p.literal(p.buf.String())
	p.buf.Reset()
	p.state = stateNone
}

// literal appends text, merging it into a preceding literal step.
func (p *parser[R]) literal(text string) {
	if text == "" {
		return
	}
	if n := len(p.steps); n > 0 && p.steps[n-1].kind == StepLiteral {
		p.steps[n-1].text += text
		return
	}
	p.steps = append(p.steps, Literal[R](text))
}
