package appconfig

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// HexColor is an opaque color decoded from "#RRGGBB" (the leading # is optional).
type HexColor color.NRGBA

func (c *HexColor) Decode(value string) error {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(hex) != 6 {
		return fmt.Errorf("invalid hex color: expect 6 hex digits, but got: %s", value)
	}
	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid hex color: %s (%w)", value, err)
	}
	*c = HexColor{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
		A: 0xff,
	}
	return nil
}

func (c HexColor) NRGBA() color.NRGBA {
	return color.NRGBA(c)
}
