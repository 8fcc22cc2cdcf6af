package dbx

import "strings"

// LikeEscape is the escape character used with EscapeLike.
const LikeEscape = `\`

var likeReplacer = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike quotes the LIKE wildcards in s so that it matches literally
// inside a pattern declared with ESCAPE '\'.
func EscapeLike(s string) string {
	return likeReplacer.Replace(s)
}
