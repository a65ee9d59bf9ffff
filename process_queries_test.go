package needle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessQueries_MatchesPerQueryFindTopDocuments(t *testing.T) {
	e := newTestEngine(t, "in the")
	require.NoError(t, e.AddDocument(1, "cat dog", StatusActual, []int{5}))
	require.NoError(t, e.AddDocument(2, "dog bird", StatusActual, []int{5}))

	queries := []string{"cat", "bird"}
	results := e.ProcessQueries(queries, Sequential)
	require.Len(t, results, 2)

	want1, err := e.FindTopDocuments(queries[0])
	require.NoError(t, err)
	want2, err := e.FindTopDocuments(queries[1])
	require.NoError(t, err)
	assert.Equal(t, want1, results[0])
	assert.Equal(t, want2, results[1])
}

func TestProcessQueries_SequentialAndParallelAgree(t *testing.T) {
	build := func() *Engine {
		e := newTestEngine(t, "in the")
		require.NoError(t, e.AddDocument(1, "cat dog bird", StatusActual, nil))
		require.NoError(t, e.AddDocument(2, "dog bird owl", StatusActual, nil))
		require.NoError(t, e.AddDocument(3, "owl fox cat", StatusActual, nil))
		return e
	}
	queries := []string{"cat", "dog -bird", "owl fox"}

	seqEngine, parEngine := build(), build()
	seqResults := seqEngine.ProcessQueries(queries, Sequential)
	parResults := parEngine.ProcessQueries(queries, Parallel)
	assert.Equal(t, seqResults, parResults)
}

func TestProcessQueries_PreservesQueryOrder(t *testing.T) {
	e := newTestEngine(t, "")
	require.NoError(t, e.AddDocument(1, "alpha", StatusActual, nil))
	require.NoError(t, e.AddDocument(2, "beta", StatusActual, nil))
	require.NoError(t, e.AddDocument(3, "gamma", StatusActual, nil))

	queries := []string{"gamma", "alpha", "beta"}
	results := e.ProcessQueries(queries, Parallel)
	require.Len(t, results, 3)
	assert.Equal(t, 3, results[0][0].ID)
	assert.Equal(t, 1, results[1][0].ID)
	assert.Equal(t, 2, results[2][0].ID)
}

func TestProcessQueries_MalformedQueryLeavesEmptySlotWithoutAbortingBatch(t *testing.T) {
	e := newTestEngine(t, "")
	require.NoError(t, e.AddDocument(1, "cat dog", StatusActual, nil))

	queries := []string{"cat", "--bad", "dog"}
	results := e.ProcessQueries(queries, Sequential)
	require.Len(t, results, 3)
	assert.Empty(t, results[1])
	assert.NotEmpty(t, results[0])
	assert.NotEmpty(t, results[2])
}

func TestProcessQueriesJoined_ConcatenatesInQueryOrder(t *testing.T) {
	e := newTestEngine(t, "")
	require.NoError(t, e.AddDocument(1, "cat", StatusActual, nil))
	require.NoError(t, e.AddDocument(2, "dog", StatusActual, nil))

	joined := e.ProcessQueriesJoined([]string{"cat", "dog"}, Sequential)
	require.Len(t, joined, 2)
	assert.Equal(t, 1, joined[0].ID)
	assert.Equal(t, 2, joined[1].ID)
}

func TestProcessQueriesJoined_EmptyQueriesYieldsEmptyJoin(t *testing.T) {
	e := newTestEngine(t, "")
	joined := e.ProcessQueriesJoined(nil, Sequential)
	assert.Empty(t, joined)
}
