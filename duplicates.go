package needle

import "sort"

// RemoveDuplicates scans live documents in ascending id order, forms
// each document's sorted word set (ignoring frequencies), and on the
// first collision removes the later document. The first-seen document
// always wins.
func (e *Engine) RemoveDuplicates(mode ExecMode) []int {
	seen := make(map[string]int)
	var duplicates []int

	for id := range e.IDs() {
		key := wordSetKey(e.GetWordFrequencies(id))
		if _, exists := seen[key]; exists {
			duplicates = append(duplicates, id)
			continue
		}
		seen[key] = id
	}

	for _, id := range duplicates {
		e.RemoveDocument(id, mode)
	}
	return duplicates
}

// wordSetKey joins a document's distinct words, sorted, into a single
// string usable as a map key for duplicate detection.
func wordSetKey(freqs map[string]float64) string {
	words := make([]string, 0, len(freqs))
	for w := range freqs {
		words = append(words, w)
	}
	sort.Strings(words)

	size := 0
	for _, w := range words {
		size += len(w) + 1
	}
	key := make([]byte, 0, size)
	for _, w := range words {
		key = append(key, w...)
		key = append(key, '\x00')
	}
	return string(key)
}
