package ledger

// Sanitize neutralizes spreadsheet formula injection: a value starting with
// one of = + - @ TAB CR gets an apostrophe prepended so it can never be
// interpreted as a formula when the file is opened in spreadsheet software.
func Sanitize(field string) string {
	if field == "" {
		return field
	}
	switch field[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + field
	}
	return field
}
