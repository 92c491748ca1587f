package config

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor accepts "#4dffbe", "4dffbe" and "0x4dffbe".
func ParseColor(s string) (colorful.Color, error) {
	hex := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}
