package needle

import (
	"context"
	"log/slog"
	"sync"

	"github.com/RoaringBitmap/roaring"
	"golang.org/x/sync/errgroup"
)

// ExecMode selects how a mutating or ranking operation spreads its work
// across the available CPUs. Modeled as an explicit parameter rather
// than overload resolution: the sequential path uses an ordinary map,
// the parallel path fans out across goroutines and rendezvouses on a
// ConcurrentAccumulator or a plain sync.WaitGroup.
type ExecMode int

const (
	Sequential ExecMode = iota
	Parallel
)

// wordPostings is one inverted-index entry: the roaring bitmap of
// document ids containing the word, doubling as the O(1) document-
// frequency accelerator for IDF, alongside the per-document term
// frequencies needed for relevance scoring.
type wordPostings struct {
	docs *roaring.Bitmap
	tf   map[int]float64
}

func newWordPostings() *wordPostings {
	return &wordPostings{docs: roaring.New(), tf: make(map[int]float64)}
}

// Engine is the in-memory full-text search engine. Mutating methods
// (AddDocument, RemoveDocument) require exclusive external access; read
// methods are safe to call concurrently with each other but not with an
// in-flight mutation.
type Engine struct {
	stopWords *StopWords
	config    EngineConfig
	metrics   *engineMetrics
	log       *slog.Logger

	documents map[int]documentData
	forward   map[int]map[string]float64
	inverted  map[string]*wordPostings
	live      *liveSet
}

// NewEngine constructs an Engine whose stop words are parsed from a
// single space-delimited string.
func NewEngine(stopWordsText string, config EngineConfig) (*Engine, error) {
	sw, err := NewStopWords(stopWordsText)
	if err != nil {
		return nil, err
	}
	return newEngine(sw, config), nil
}

// NewEngineFromWords constructs an Engine whose stop words are supplied
// as a slice, the construction path for callers holding a pre-split word
// list. DefaultEnglishStopWords is a single space-delimited string and
// goes through NewEngine.
func NewEngineFromWords(stopWords []string, config EngineConfig) (*Engine, error) {
	sw, err := NewStopWordsFromSlice(stopWords)
	if err != nil {
		return nil, err
	}
	return newEngine(sw, config), nil
}

func newEngine(sw *StopWords, config EngineConfig) *Engine {
	config = config.withDefaults()
	return &Engine{
		stopWords: sw,
		config:    config,
		metrics:   newEngineMetrics(),
		log:       componentLogger("needle.engine"),
		documents: make(map[int]documentData),
		forward:   make(map[int]map[string]float64),
		inverted:  make(map[string]*wordPostings),
		live:      newLiveSet(),
	}
}

// Metrics exposes the engine's collectors; their Registry method returns
// the private Prometheus registry so the embedding process can decide how
// (and whether) to serve it.
func (e *Engine) Metrics() *engineMetrics {
	return e.metrics
}

// AddDocument indexes text under id, recording status and the mean of
// ratings. Rejects a negative id or one already present.
func (e *Engine) AddDocument(id int, text string, status DocumentStatus, ratings []int) error {
	if id < 0 {
		return invalidArgumentf("document id %d is negative", id)
	}
	if _, exists := e.documents[id]; exists {
		return invalidArgumentf("document id %d already exists", id)
	}

	words, err := e.indexableWords(text)
	if err != nil {
		return err
	}

	rating := computeAverageRating(ratings)
	e.documents[id] = documentData{text: text, status: status, rating: rating}
	e.live.Insert(id)

	freqs := make(map[string]float64, len(words))
	n := float64(len(words))
	for _, w := range words {
		freqs[w] += 1.0 / n
	}
	e.forward[id] = freqs

	for w, tf := range freqs {
		postings, ok := e.inverted[w]
		if !ok {
			postings = newWordPostings()
			e.inverted[w] = postings
		}
		postings.tf[id] = tf
		postings.docs.Add(uint32(id))
	}

	e.metrics.documentsIndexed.Inc()
	e.metrics.liveDocuments.Set(float64(e.live.Len()))
	e.log.Debug("added document", slog.Int("id", id), slog.Int("words", len(words)))
	return nil
}

// indexableWords tokenizes text, drops stop-words, and validates every
// surviving word.
func (e *Engine) indexableWords(text string) ([]string, error) {
	tokens := split(text)
	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if e.stopWords.Contains(tok) {
			continue
		}
		if hasControlByte(tok) {
			return nil, invalidArgumentf("document word %q contains a control character", tok)
		}
		words = append(words, tok)
	}
	return words, nil
}

// RemoveDocument erases id from every index. A no-op if id is unknown.
// The parallel mode computes the word set and issues the per-word
// inverted-index erases across goroutines; final state matches the
// sequential path exactly.
func (e *Engine) RemoveDocument(id int, mode ExecMode) {
	freqs, ok := e.forward[id]
	if !ok {
		return
	}

	words := make([]string, 0, len(freqs))
	for w := range freqs {
		words = append(words, w)
	}

	switch mode {
	case Parallel:
		e.removeWordsParallel(id, words)
	default:
		e.removeWordsSequential(id, words)
	}

	delete(e.forward, id)
	delete(e.documents, id)
	e.live.Delete(id)

	e.metrics.documentsRemoved.Inc()
	e.metrics.liveDocuments.Set(float64(e.live.Len()))
	e.log.Debug("removed document", slog.Int("id", id))
}

func (e *Engine) removeWordsSequential(id int, words []string) {
	for _, w := range words {
		e.erasePosting(w, id)
	}
}

// removeWordsParallel fans the per-word postings erase out across an
// errgroup; a mutex still serializes writes to the shared inverted-index
// map itself, since distinct goroutines deleting distinct keys from the
// same Go map concurrently is a race regardless of how the work is
// scheduled.
func (e *Engine) removeWordsParallel(id int, words []string) {
	var mu sync.Mutex
	g, _ := errgroup.WithContext(context.Background())
	for _, w := range words {
		w := w
		g.Go(func() error {
			mu.Lock()
			defer mu.Unlock()
			e.erasePosting(w, id)
			return nil
		})
	}
	_ = g.Wait()
}

func (e *Engine) erasePosting(word string, id int) {
	postings, ok := e.inverted[word]
	if !ok {
		return
	}
	delete(postings.tf, id)
	postings.docs.Remove(uint32(id))
	if len(postings.tf) == 0 {
		delete(e.inverted, word)
	}
}

// GetWordFrequencies returns a copy of the forward-index entry for id,
// or a fresh empty map if id is unknown. A copy, since Go has no const
// reference: handing out the live map would let a caller's mutation
// corrupt the forward/inverted symmetry. No empty map is shared between
// callers either.
func (e *Engine) GetWordFrequencies(id int) map[string]float64 {
	freqs, ok := e.forward[id]
	if !ok {
		return make(map[string]float64)
	}
	out := make(map[string]float64, len(freqs))
	for w, tf := range freqs {
		out[w] = tf
	}
	return out
}

// GetDocumentCount returns the number of live documents.
func (e *Engine) GetDocumentCount() int {
	return len(e.documents)
}

// IDs returns an iterator over the live document ids in ascending order.
func (e *Engine) IDs() func(yield func(int) bool) {
	return e.live.Ascending()
}

func (e *Engine) documentByID(id int) (documentData, bool) {
	d, ok := e.documents[id]
	return d, ok
}

func (e *Engine) parseQuery(text string) (Query, error) {
	return parseQuery(text, e.stopWords)
}
