package idhash

import "strings"

// Symbol derives the ticker symbol for a class name: the first three
// letters, upper-cased. Shorter names use the whole name.
func Symbol(name string) string {
	if len(name) > 3 {
		name = name[:3]
	}
	return strings.ToUpper(name)
}
