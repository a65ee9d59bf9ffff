package needle

import (
	"context"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

// Predicate decides whether a candidate document is eligible for a
// ranked result. It receives the raw fields rather than a
// Document so callers don't need to construct one just to filter.
type Predicate func(id int, status DocumentStatus, rating int) bool

// StatusPredicate returns a Predicate matching documents with exactly
// the given status, the convenience form FindTopDocuments collapses to
// when called with a status instead of a full predicate.
func StatusPredicate(status DocumentStatus) Predicate {
	return func(_ int, s DocumentStatus, _ int) bool { return s == status }
}

// candidate is a document mid-ranking, before the final sort/truncate.
type candidate struct {
	id        int
	relevance float64
	rating    int
}

// FindTopDocuments ranks documents against text under the implicit
// StatusActual predicate, running sequentially.
func (e *Engine) FindTopDocuments(text string) ([]Document, error) {
	return e.FindTopDocumentsWithPredicate(text, StatusPredicate(StatusActual), Sequential)
}

// FindTopDocumentsWithStatus ranks documents against text, keeping only
// documents whose status equals status.
func (e *Engine) FindTopDocumentsWithStatus(text string, status DocumentStatus, mode ExecMode) ([]Document, error) {
	return e.FindTopDocumentsWithPredicate(text, StatusPredicate(status), mode)
}

// FindTopDocumentsWithPredicate is the engine's full ranking entry
// point: parse text, accumulate TF·IDF contributions from every
// plus-word under predicate, drop documents hit by any minus-word,
// sort by (relevance desc, rating desc, id asc) with a tie tolerance on
// relevance, and truncate to the configured top-K.
func (e *Engine) FindTopDocumentsWithPredicate(text string, predicate Predicate, mode ExecMode) ([]Document, error) {
	start := time.Now()
	defer func() {
		e.metrics.queriesTotal.Inc()
		e.metrics.queryDuration.Observe(time.Since(start).Seconds())
	}()

	query, err := e.parseQuery(text)
	if err != nil {
		return nil, err
	}

	var relevance map[int]float64
	switch mode {
	case Parallel:
		relevance = e.rankParallel(query, predicate)
	default:
		relevance = e.rankSequential(query, predicate)
	}

	candidates := make([]candidate, 0, len(relevance))
	for id, rel := range relevance {
		doc, ok := e.documentByID(id)
		if !ok {
			continue
		}
		candidates = append(candidates, candidate{id: id, relevance: rel, rating: doc.rating})
	}

	sortCandidates(candidates, e.config.RelevanceTolerance)
	if len(candidates) > e.config.TopK {
		candidates = candidates[:e.config.TopK]
	}

	results := make([]Document, len(candidates))
	for i, c := range candidates {
		results[i] = Document{ID: c.id, Relevance: c.relevance, Rating: c.rating}
	}
	return results, nil
}

func sortCandidates(candidates []candidate, tolerance float64) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if math.Abs(a.relevance-b.relevance) < tolerance {
			if a.rating != b.rating {
				return a.rating > b.rating
			}
			return a.id < b.id
		}
		return a.relevance > b.relevance
	})
}

// idf computes the inverse document frequency of a word present in k of
// N total live documents.
func idf(n, k int) float64 {
	return math.Log(float64(n) / float64(k))
}

func (e *Engine) rankSequential(query Query, predicate Predicate) map[int]float64 {
	n := e.GetDocumentCount()
	relevance := make(map[int]float64)

	for _, w := range query.Plus {
		postings, ok := e.inverted[w]
		if !ok {
			continue
		}
		k := int(postings.docs.GetCardinality())
		if k == 0 {
			continue
		}
		weight := idf(n, k)
		for id, tf := range postings.tf {
			doc, ok := e.documentByID(id)
			if !ok || !predicate(id, doc.status, doc.rating) {
				continue
			}
			relevance[id] += tf * weight
		}
	}

	for _, w := range query.Minus {
		postings, ok := e.inverted[w]
		if !ok {
			continue
		}
		for id := range postings.tf {
			delete(relevance, id)
		}
	}

	return relevance
}

// ProcessQueries runs FindTopDocuments once per entry of queries, under
// the implicit StatusActual predicate, and returns the results in query
// order. Sequential runs the batch in a plain loop; Parallel fans it out
// across an errgroup, one goroutine per query, writing into a pre-sized
// slice by index so the result order doesn't depend on completion order.
// A query that fails to parse contributes an empty slot rather than
// aborting the batch.
func (e *Engine) ProcessQueries(queries []string, mode ExecMode) [][]Document {
	results := make([][]Document, len(queries))

	if mode != Parallel {
		for i, q := range queries {
			docs, err := e.FindTopDocuments(q)
			if err == nil {
				results[i] = docs
			}
		}
		return results
	}

	g, _ := errgroup.WithContext(context.Background())
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			docs, err := e.FindTopDocuments(q)
			if err == nil {
				results[i] = docs
			}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// ProcessQueriesJoined runs ProcessQueries and concatenates its per-query
// results in query order, the flattened form callers want when they
// don't care which query produced which document.
func (e *Engine) ProcessQueriesJoined(queries []string, mode ExecMode) []Document {
	var joined []Document
	for _, docs := range e.ProcessQueries(queries, mode) {
		joined = append(joined, docs...)
	}
	return joined
}

// rankParallel fans plus-word accumulation and minus-word erasure out
// across an errgroup, one goroutine per word, rendezvousing on the
// sharded ConcurrentAccumulator, the data-parallel map-over-postings
// primitive called for by the concurrency model.
func (e *Engine) rankParallel(query Query, predicate Predicate) map[int]float64 {
	n := e.GetDocumentCount()
	acc := NewConcurrentAccumulator(e.config.AccumulatorShards)

	plusGroup, _ := errgroup.WithContext(context.Background())
	for _, w := range query.Plus {
		postings, ok := e.inverted[w]
		if !ok {
			continue
		}
		k := int(postings.docs.GetCardinality())
		if k == 0 {
			continue
		}
		weight := idf(n, k)
		plusGroup.Go(func() error {
			for id, tf := range postings.tf {
				doc, ok := e.documentByID(id)
				if !ok || !predicate(id, doc.status, doc.rating) {
					continue
				}
				acc.Add(id, tf*weight)
			}
			return nil
		})
	}
	_ = plusGroup.Wait()

	minusGroup, _ := errgroup.WithContext(context.Background())
	for _, w := range query.Minus {
		postings, ok := e.inverted[w]
		if !ok {
			continue
		}
		minusGroup.Go(func() error {
			for id := range postings.tf {
				acc.Erase(id)
			}
			return nil
		})
	}
	_ = minusGroup.Wait()

	return acc.Drain()
}
