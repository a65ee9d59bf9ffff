// Package needle implements an in-memory full-text search engine for short
// textual documents.
//
// ═══════════════════════════════════════════════════════════════════════════════
// WHAT THIS PACKAGE IS
// ═══════════════════════════════════════════════════════════════════════════════
// Documents are identified by nonnegative integers, carry a status tag and a
// user-supplied rating sample, and are indexed word by word. Clients issue
// free-text queries combining required words and excluded ("minus") words;
// the engine returns the top-K most relevant documents under a caller
// predicate, ranked by TF·IDF.
//
// The moving parts:
//   - a tokenizer that splits on ASCII spaces only (tokenizer.go)
//   - a stop-word set excluded from indexing and queries (stopwords.go)
//   - a query parser producing sorted, de-duplicated plus/minus word
//     lists (query.go)
//   - an inverted index (word → postings) and forward index (doc → word
//     frequencies), kept symmetric (engine.go)
//   - a sharded accumulator for the parallel ranking path (accumulator.go)
//   - the TF·IDF ranker, top-K truncation, and batch query processing
//     (ranker.go)
//   - the document matcher (matcher.go)
//   - a duplicate-document detector (duplicates.go)
//
// AddDocument and RemoveDocument require exclusive access to the Engine;
// reads (FindTopDocuments, MatchDocument, GetWordFrequencies,
// GetDocumentCount, iteration) are safe to run concurrently with each other
// but not with a mutation in flight.
// ═══════════════════════════════════════════════════════════════════════════════
package needle
