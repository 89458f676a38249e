package ticket

import (
	"fmt"
	"strconv"
	"strings"
)

// numberPrefix is the fixed prefix of every dump ticket number.
const numberPrefix = "DT"

// FormatNumber encodes a (year, sequence) pair as the canonical ticket
// number, e.g. FormatNumber(2025, 42) == "DT-2025-000042". The encoding is
// deterministic and bijective; ParseNumber recovers the original pair.
func FormatNumber(year, sequence int) string {
	return fmt.Sprintf("%s-%d-%06d", numberPrefix, year, sequence)
}

// ParseNumber decodes a canonical ticket number back into its
// (year, sequence) pair.
func ParseNumber(number string) (year, sequence int, err error) {
	parts := strings.Split(number, "-")
	if len(parts) != 3 || parts[0] != numberPrefix {
		return 0, 0, fmt.Errorf("malformed ticket number %q", number)
	}

	year, err = strconv.Atoi(parts[1])
	if err != nil || year <= 0 {
		return 0, 0, fmt.Errorf("malformed ticket number %q: bad year", number)
	}

	// Sequences are zero-padded to six digits and grow wider past 999999.
	if len(parts[2]) < 6 {
		return 0, 0, fmt.Errorf("malformed ticket number %q: sequence must be at least six digits", number)
	}
	sequence, err = strconv.Atoi(parts[2])
	if err != nil || sequence <= 0 {
		return 0, 0, fmt.Errorf("malformed ticket number %q: bad sequence", number)
	}

	return year, sequence, nil
}
