package needle

// split breaks text into whitespace-delimited slices that reference the
// input string directly. Go string slicing shares the backing array, so
// this is the zero-copy equivalent of the original's std::string_view
// splitting.
//
// Only the ASCII space character (0x20) separates tokens; tabs and
// newlines are ordinary characters. Leading spaces are skipped; runs of
// spaces collapse to a single separator; a trailing token with no
// following space is still included. Empty input yields no tokens.
func split(text string) []string {
	var words []string

	start := 0
	for start < len(text) && text[start] == ' ' {
		start++
	}

	i := start
	for i < len(text) {
		if text[i] == ' ' {
			if i > start {
				words = append(words, text[start:i])
			}
			i++
			for i < len(text) && text[i] == ' ' {
				i++
			}
			start = i
			continue
		}
		i++
	}
	if start < len(text) {
		words = append(words, text[start:])
	}

	return words
}

// hasControlByte reports whether s contains any byte below 0x20, the
// validation rule shared by stop words and indexed/query words.
func hasControlByte(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 {
			return true
		}
	}
	return false
}
