package spell

// Year returns the spoken-year phrase for an exactly-four-digit token, the way
// the year is read aloud: "1984" becomes "nineteen eighty four" and "1900"
// becomes "nineteen hundred". Tokens with zeros in both middle positions
// ("1001", "2009", "1000") read as ordinary cardinal numbers instead, so
// "1000" is "one thousand", never "ten hundred". Anything other than four
// digits fails with ErrInvalidDigits.
func Year(token string) (string, error) {
	if len(token) != 4 {
		return "", &TranslationError{Digits: token, Err: ErrInvalidDigits}
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return "", &TranslationError{Digits: token, Err: ErrInvalidDigits}
		}
	}

	// The x00y shapes are spoken as cardinals. This rule wins over the
	// "<century> hundred" rule for tokens like "1000".
	if token[1] == '0' && token[2] == '0' {
		return group(token)
	}

	century, tail := token[:2], token[2:]
	c, err := group(century)
	if err != nil {
		return "", err
	}
	if tail == "00" {
		return join(c, "hundred"), nil
	}
	t, err := group(tail)
	if err != nil {
		return "", err
	}
	return join(c, t), nil
}
