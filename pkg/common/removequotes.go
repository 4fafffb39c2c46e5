package common

// RemoveQuotesIfAny strips one pair of matching surrounding quotes (single or double).
// Captions typed in a chat often arrive as "'Hello'" or "\"Hello\"".
func RemoveQuotesIfAny(str string) string {
	if len(str) < 2 {
		return str
	}
	first, last := str[0], str[len(str)-1]
	if first == last && (first == '\'' || first == '"') {
		return str[1 : len(str)-1]
	}
	return str
}
