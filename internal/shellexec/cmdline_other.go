//go:build !windows

package shellexec

import "strings"

// splitCommandLine splits a parameter string into arguments the way the
// Microsoft C runtime does for everything after the program name:
//
//   - spaces and tabs separate arguments outside double quotes
//   - 2n backslashes before a quote give n backslashes, and the quote toggles quoting
//   - 2n+1 backslashes before a quote give n backslashes and a literal quote
//   - backslashes anywhere else are literal
//   - "" inside a quoted run is a literal quote
//
// Nothing is expanded or evaluated.
func splitCommandLine(s string) []string {
	var (
		args    []string
		cur     strings.Builder
		inArg   bool
		quoted  bool
		slashes int
	)

	flushSlashes := func() {
		cur.WriteString(strings.Repeat(`\`, slashes))
		slashes = 0
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\':
			slashes++
			inArg = true
		case c == '"':
			cur.WriteString(strings.Repeat(`\`, slashes/2))
			escaped := slashes%2 == 1
			slashes = 0
			inArg = true
			switch {
			case escaped:
				cur.WriteByte('"')
			case quoted && i+1 < len(s) && s[i+1] == '"':
				cur.WriteByte('"')
				i++
			default:
				quoted = !quoted
			}
		case (c == ' ' || c == '\t') && !quoted:
			flushSlashes()
			if inArg {
				args = append(args, cur.String())
				cur.Reset()
				inArg = false
			}
		default:
			flushSlashes()
			cur.WriteByte(c)
			inArg = true
		}
	}

	flushSlashes()
	if inArg {
		args = append(args, cur.String())
	}
	return args
}
