package render

import (
	"fmt"
	"strings"
)

// Style selects the visual treatment of a QR code.
type Style uint8

// Supported styles. The zero value is StyleDefault.
const (
	StyleDefault Style = iota
	StyleTransparent
	StyleBorderedCard
	StyleBorderedCardTransparent
)

var styleNames = [...]string{
	StyleDefault:                 "default",
	StyleTransparent:             "transparent",
	StyleBorderedCard:            "bordered_card",
	StyleBorderedCardTransparent: "bordered_card_transparent",
}

// Legacy names accepted by ParseStyle.
var styleAliases = map[string]Style{
	"pay_by_square":             StyleBorderedCard,
	"pay_by_square_transparent": StyleBorderedCardTransparent,
}

// Styles lists every supported style.
func Styles() []Style {
	return []Style{StyleDefault, StyleTransparent, StyleBorderedCard, StyleBorderedCardTransparent}
}

// ParseStyle resolves a style name, case-insensitively. An empty name is
// StyleDefault.
func ParseStyle(s string) (Style, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return StyleDefault, nil
	}
	for i, n := range styleNames {
		if n == name {
			return Style(i), nil
		}
	}
	if st, ok := styleAliases[name]; ok {
		return st, nil
	}
	return StyleDefault, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}

// String returns the canonical name.
func (s Style) String() string {
	if s.Valid() {
		return styleNames[s]
	}
	return fmt.Sprintf("Style(%d)", uint8(s))
}

// Valid reports whether s is one of the supported styles.
func (s Style) Valid() bool {
	return int(s) < len(styleNames)
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStyle, uint8(s))
	}
	return []byte(styleNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It is used by env config
// parsing as well.
func (s *Style) UnmarshalText(text []byte) error {
	st, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = st
	return nil
}
