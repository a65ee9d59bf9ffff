package needle

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// MatchDocument parses text as a query against a specific document: if
// any minus-word's postings contain id, the match is empty; otherwise
// it returns the sorted-unique subset of plus-words present in id,
// together with the document's status.
func (e *Engine) MatchDocument(text string, id int, mode ExecMode) ([]string, DocumentStatus, error) {
	doc, ok := e.documentByID(id)
	if !ok {
		return nil, 0, outOfRangef("document id %d is unknown", id)
	}

	query, err := e.parseQuery(text)
	if err != nil {
		return nil, 0, err
	}

	var matched []string
	switch mode {
	case Parallel:
		matched = e.matchParallel(query, id)
	default:
		matched = e.matchSequential(query, id)
	}

	e.metrics.queriesTotal.Inc()
	return matched, doc.status, nil
}

func (e *Engine) matchSequential(query Query, id int) []string {
	for _, w := range query.Minus {
		if e.postingsContain(w, id) {
			return nil
		}
	}

	matched := make([]string, 0, len(query.Plus))
	for _, w := range query.Plus {
		if e.postingsContain(w, id) {
			matched = append(matched, w)
		}
	}
	return matched
}

func (e *Engine) matchParallel(query Query, id int) []string {
	excluded := make([]bool, len(query.Minus))
	excludeGroup, _ := errgroup.WithContext(context.Background())
	for i, w := range query.Minus {
		i, w := i, w
		excludeGroup.Go(func() error {
			excluded[i] = e.postingsContain(w, id)
			return nil
		})
	}
	_ = excludeGroup.Wait()
	for _, hit := range excluded {
		if hit {
			return nil
		}
	}

	// Pre-size the destination before the parallel copy-if, rather than
	// appending to an unsized slice from multiple goroutines.
	hits := make([]bool, len(query.Plus))
	hitGroup, _ := errgroup.WithContext(context.Background())
	for i, w := range query.Plus {
		i, w := i, w
		hitGroup.Go(func() error {
			hits[i] = e.postingsContain(w, id)
			return nil
		})
	}
	_ = hitGroup.Wait()

	matched := make([]string, 0, len(query.Plus))
	for i, hit := range hits {
		if hit {
			matched = append(matched, query.Plus[i])
		}
	}
	sort.Strings(matched)
	return matched
}

func (e *Engine) postingsContain(word string, id int) bool {
	postings, ok := e.inverted[word]
	if !ok {
		return false
	}
	return postings.docs.Contains(uint32(id))
}
