package ical

import "strings"

// split75 wraps a WriteString-style function so every content line longer
// than 75 bytes gets folded onto continuation lines starting with a single
// space, per RFC 5545 section 3.1. Inputs are whole lines ending in "\n".
func split75(write func(string) (int, error)) func(string) (int, error) {
	return func(str string) (int, error) {
		line := strings.TrimSuffix(str, "\n")
		if len(line) <= 75 {
			return write(str)
		}

		total := 0
		for i := 0; len(line) > 0; i++ {
			prefix, limit := "", 75
			if i > 0 {
				// continuation lines lose one byte to the leading space
				prefix, limit = " ", 74
			}
			chunk := line
			if len(chunk) > limit {
				chunk = chunk[:limit]
			}
			line = line[len(chunk):]

			n, err := write(prefix + chunk + "\n")
			total += n
			if err != nil {
				return total, err
			}
		}
		return total, nil
	}
}
