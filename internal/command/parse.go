package command

import "strings"

// Parse splits line on whitespace. The first field is the keyword, lower-cased;
// the rest are arguments, passed through verbatim. A blank line yields an
// empty keyword.
func Parse(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}
