package needle

import "sort"

// Query is the parsed form of raw query text: sorted, de-duplicated
// plus- and minus-word lists.
//
// The parser does not cross-check a word against both lists: a query
// text of "foo -foo" produces plus=["foo"] minus=["foo"], and it is the
// ranker's accumulate-then-exclude pipeline that makes the net effect an
// exclusion.
type Query struct {
	Plus  []string
	Minus []string
}

// parseQuery classifies each whitespace-delimited token of text:
//
//  1. a token equal to "-" or starting with "--" is rejected
//  2. a token containing a control byte is rejected
//  3. a leading "-" marks the remainder as a minus-word, otherwise the
//     token is a plus-word
//  4. a stop-word, once the leading "-" is stripped, is discarded
//
// Grounded in original_source/search-server/search_server.cpp's
// ParseQueryWord and ParseQuery.
func parseQuery(text string, stopWords *StopWords) (Query, error) {
	var q Query
	for _, tok := range split(text) {
		word, isMinus, err := parseQueryWord(tok)
		if err != nil {
			return Query{}, err
		}
		if stopWords.Contains(word) {
			continue
		}
		if isMinus {
			q.Minus = append(q.Minus, word)
		} else {
			q.Plus = append(q.Plus, word)
		}
	}
	q.Plus = sortUnique(q.Plus)
	q.Minus = sortUnique(q.Minus)
	return q, nil
}

func parseQueryWord(tok string) (word string, isMinus bool, err error) {
	if tok == "-" || (len(tok) >= 2 && tok[0] == '-' && tok[1] == '-') {
		return "", false, invalidArgumentf("malformed query word %q", tok)
	}
	if hasControlByte(tok) {
		return "", false, invalidArgumentf("query word %q contains a control character", tok)
	}
	if tok[0] == '-' {
		return tok[1:], true, nil
	}
	return tok, false, nil
}

// sortUnique sorts words and removes adjacent duplicates in place.
func sortUnique(words []string) []string {
	if len(words) == 0 {
		return words
	}
	sort.Strings(words)
	out := words[:1]
	for _, w := range words[1:] {
		if w != out[len(out)-1] {
			out = append(out, w)
		}
	}
	return out
}
