package needle

import "strings"

// StopWords is a set of words excluded from both indexing and query
// parsing. It is keyed by the word's bytes; duplicate and empty entries
// are silently dropped. Membership is held in a map, so the set has no
// order and offers no ordered iteration.
type StopWords struct {
	words map[string]struct{}
}

// NewStopWords builds a StopWords set from a single space-delimited
// string, the same construction path original_source/search_server.h
// offers for a const std::string&.
func NewStopWords(text string) (*StopWords, error) {
	return NewStopWordsFromSlice(split(text))
}

// NewStopWordsFromSlice builds a StopWords set from any slice of words,
// the Go equivalent of the C++ template constructor over an arbitrary
// StringContainer.
func NewStopWordsFromSlice(list []string) (*StopWords, error) {
	sw := &StopWords{words: make(map[string]struct{}, len(list))}
	for _, w := range list {
		if w == "" {
			continue
		}
		if hasControlByte(w) {
			return nil, invalidArgumentf("stop word %q contains a control character", w)
		}
		sw.words[w] = struct{}{}
	}
	return sw, nil
}

// Contains reports whether word is in the set.
func (sw *StopWords) Contains(word string) bool {
	if sw == nil {
		return false
	}
	_, ok := sw.words[word]
	return ok
}

// Len returns the number of distinct stop words.
func (sw *StopWords) Len() int {
	if sw == nil {
		return 0
	}
	return len(sw.words)
}

// DefaultEnglishStopWords is a ready-made English stop-word list, offered
// as a convenience for callers who don't want to supply their own. It is
// the same word list the teacher repository ships for its stemmed English
// analyzer, carried over unstemmed: stop-word membership doesn't need
// stemming, just the words themselves.
var DefaultEnglishStopWords = strings.Join([]string{
	"a", "about", "above", "across", "after", "afterwards", "again", "against", "all", "almost",
	"alone", "along", "already", "also", "although", "always", "am", "among", "amongst", "amoungst",
	"amount", "an", "and", "another", "any", "anyhow", "anyone", "anything", "anyway", "anywhere",
	"are", "around", "as", "at", "back", "be", "became", "because", "become", "becomes",
	"becoming", "been", "before", "beforehand", "behind", "being", "below", "beside", "besides", "between",
	"beyond", "bill", "both", "bottom", "but", "by", "call", "can", "cannot", "cant",
	"co", "con", "could", "couldnt", "cry", "de", "describe", "detail", "do", "done",
	"down", "due", "during", "each", "eg", "eight", "either", "eleven", "else", "elsewhere",
	"empty", "enough", "etc", "even", "ever", "every", "everyone", "everything", "everywhere", "except",
	"few", "fifteen", "fify", "fill", "find", "fire", "first", "five", "for", "former",
	"formerly", "forty", "found", "four", "from", "front", "full", "further", "get", "give",
	"go", "had", "has", "hasnt", "have", "he", "hence", "her", "here", "hereafter",
	"hereby", "herein", "hereupon", "hers", "herself", "him", "himself", "his", "how", "however",
	"hundred", "ie", "if", "in", "inc", "indeed", "interest", "into", "is", "it",
	"its", "itself", "keep", "last", "latter", "latterly", "least", "less", "ltd", "made",
	"many", "may", "me", "meanwhile", "might", "mill", "mine", "more", "moreover", "most",
	"mostly", "move", "much", "must", "my", "myself", "name", "namely", "neither", "never",
	"nevertheless", "next", "nine", "no", "nobody", "none", "noone", "nor", "not", "nothing",
	"now", "nowhere", "of", "off", "often", "on", "once", "one", "only", "onto",
	"or", "other", "others", "otherwise", "our", "ours", "ourselves", "out", "over", "own",
	"part", "per", "perhaps", "please", "put", "rather", "re", "same", "see", "seem",
	"seemed", "seeming", "seems", "serious", "several", "she", "should", "show", "side", "since",
	"sincere", "six", "sixty", "so", "some", "somehow", "someone", "something", "sometime", "sometimes",
	"somewhere", "still", "such", "system", "take", "ten", "than", "that", "the", "their",
	"them", "themselves", "then", "thence", "there", "thereafter", "thereby", "therefore", "therein", "thereupon",
	"these", "they", "thickv", "thin", "third", "this", "those", "though", "three", "through",
	"throughout", "thru", "thus", "to", "together", "too", "top", "toward", "towards", "twelve",
	"twenty", "two", "un", "under", "until", "up", "upon", "us", "very", "via",
	"was", "we", "well", "were", "what", "whatever", "when", "whence", "whenever", "where",
	"whereafter", "whereas", "whereby", "wherein", "whereupon", "wherever", "whether", "which", "while", "whither",
	"who", "whoever", "whole", "whom", "whose", "why", "will", "with", "within", "without",
	"would", "yet", "you", "your", "yours", "yourself", "yourselves",
}, " ")
