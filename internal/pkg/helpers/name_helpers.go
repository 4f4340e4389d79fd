package helpers

import "strings"

// SplitName splits a full name into the first word and the remainder
func SplitName(name string) (first, rest string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}
