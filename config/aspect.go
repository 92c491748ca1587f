package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAspectRatio parses a "width:height" ratio such as "16:9".
func ParseAspectRatio(ar string) (float64, error) {
	operands := strings.Split(ar, ":")
	if len(operands) != 2 {
		return 0, fmt.Errorf("error: Invalid format, expected \"width:height\"")
	}
	width, err := strconv.ParseFloat(operands[0], 64)
	if err != nil {
		return 0, fmt.Errorf("error: Invalid width value")
	}

	height, err := strconv.ParseFloat(operands[1], 64)
	if err != nil {
		return 0, fmt.Errorf("error: Invalid height value")
	}

	if height == 0 {
		return 0, fmt.Errorf("error: Height cannot be zero")
	}
	if width <= 0 || height < 0 {
		return 0, fmt.Errorf("error: Aspect ratio must be positive")
	}

	return width / height, nil
}
