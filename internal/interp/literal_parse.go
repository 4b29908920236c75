package interp

import "strconv"

// parseInt and parseFloat convert a lexer-validated numeric literal into its
// Go representation. The lexer only ever produces digit(+optional single
// dot) text, so these never see malformed input.
func parseInt(lit string) (int64, error) {
	return strconv.ParseInt(lit, 10, 64)
}

func parseFloat(lit string) (float64, error) {
	return strconv.ParseFloat(lit, 64)
}
