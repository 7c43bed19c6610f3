// Package keypad drives a calculator from a compact key script, mirroring the
// button grid of the calculator UI: digits, ".", the four operators, "=",
// C (clear), CE (clear entry), backspace and clear history.
package keypad

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/averycrespi/calc-mcp/internal/calculator"
)

// ErrUnknownKey is returned when a key script contains an unsupported key
var ErrUnknownKey = errors.New("unknown key")

// KeyError reports an unsupported key and its rune offset in the script
type KeyError struct {
	Key      string
	Position int
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%v %q at position %d", ErrUnknownKey, e.Key, e.Position)
}

func (e *KeyError) Unwrap() error {
	return ErrUnknownKey
}

// Kind identifies a calculator button
type Kind int

const (
	KindDigit Kind = iota + 1
	KindDecimal
	KindOperator
	KindEquals
	KindClear
	KindClearEntry
	KindBackspace
	KindClearHistory
)

// Key is a single button press
type Key struct {
	Kind     Kind
	Digit    string
	Operator calculator.Operator
}

func (k Key) String() string {
	switch k.Kind {
	case KindDigit:
		return k.Digit
	case KindDecimal:
		return "."
	case KindOperator:
		return k.Operator.Glyph()
	case KindEquals:
		return "="
	case KindClear:
		return "C"
	case KindClearEntry:
		return "CE"
	case KindBackspace:
		return "⌫"
	case KindClearHistory:
		return "H"
	default:
		return "?"
	}
}

// Pad is the set of calculator operations the keypad presses
type Pad interface {
	InputDigit(digit string) error
	InputDecimal()
	InputOperator(op calculator.Operator)
	Evaluate()
	Clear()
	ClearEntry()
	Backspace()
	ClearHistory()
}

var _ Pad = (*calculator.Engine)(nil)

// Parse tokenizes a key script such as "12.5 × 2 =" or "9<8CE3+1=".
// Whitespace is ignored; "CE" and "E" both mean clear entry.
func Parse(script string) ([]Key, error) {
	runes := []rune(script)
	keys := make([]Key, 0, len(runes))

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			continue
		case r >= '0' && r <= '9':
			keys = append(keys, Key{Kind: KindDigit, Digit: string(r)})
		case r == '.':
			keys = append(keys, Key{Kind: KindDecimal})
		case r == '=':
			keys = append(keys, Key{Kind: KindEquals})
		case r == 'C' || r == 'c':
			if i+1 < len(runes) && (runes[i+1] == 'E' || runes[i+1] == 'e') {
				keys = append(keys, Key{Kind: KindClearEntry})
				i++
				continue
			}
			keys = append(keys, Key{Kind: KindClear})
		case r == 'E' || r == 'e':
			keys = append(keys, Key{Kind: KindClearEntry})
		case r == '<' || r == '⌫':
			keys = append(keys, Key{Kind: KindBackspace})
		case r == 'H' || r == 'h':
			keys = append(keys, Key{Kind: KindClearHistory})
		default:
			op, err := calculator.ParseOperator(string(r))
			if err != nil {
				return nil, &KeyError{Key: string(r), Position: i}
			}
			keys = append(keys, Key{Kind: KindOperator, Operator: op})
		}
	}

	return keys, nil
}

// Press applies keys to the pad in order
func Press(pad Pad, keys []Key) error {
	for i, key := range keys {
		switch key.Kind {
		case KindDigit:
			if err := pad.InputDigit(key.Digit); err != nil {
				return fmt.Errorf("failed to press key %d: %w", i, err)
			}
		case KindDecimal:
			pad.InputDecimal()
		case KindOperator:
			pad.InputOperator(key.Operator)
		case KindEquals:
			pad.Evaluate()
		case KindClear:
			pad.Clear()
		case KindClearEntry:
			pad.ClearEntry()
		case KindBackspace:
			pad.Backspace()
		case KindClearHistory:
			pad.ClearHistory()
		default:
			return fmt.Errorf("failed to press key %d: %w", i, ErrUnknownKey)
		}
	}
	return nil
}

// Format renders keys back into a script that Parse accepts
func Format(keys []Key) string {
	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(key.String())
	}
	return b.String()
}
