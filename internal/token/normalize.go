package token

import (
	"strings"
	"unicode"
)

var apostrophes = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"ʼ", "'",
)

// Normalize folds unicode apostrophes into ASCII ' and collapses every
// whitespace run into a single space, trimming both ends.
func Normalize(input string) string {
	folded := apostrophes.Replace(input)
	return strings.Join(strings.FieldsFunc(folded, unicode.IsSpace), " ")
}
