package db

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes the LIKE metacharacters in a search term so the term
// matches literally. Queries using the result must carry ESCAPE '\'.
// Substring search is plain containment; a stored name like "100%" should
// only match queries that actually contain "100%".
func EscapeLike(term string) string {
	return likeEscaper.Replace(term)
}
