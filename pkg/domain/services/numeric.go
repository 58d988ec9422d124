package services

import (
	"fmt"
	"strconv"
	"strings"
)

// ExtractNumber reduces free text such as "900 grams" to the integer formed
// by its decimal digits. Every other character is dropped, so "-5" yields 5
// and "1.5 kg" yields 15. Input with no digits yields 0.
func ExtractNumber(value string) (int64, error) {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	if digits.Len() == 0 {
		return 0, nil
	}

	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("number in %q is out of range", value)
	}
	return n, nil
}
