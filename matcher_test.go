package needle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchDocument_OnlyPlusWords(t *testing.T) {
	e := newTestEngine(t, "in the")
	require.NoError(t, e.AddDocument(1, "cat dog bird", StatusActual, nil))

	matched, status, err := e.MatchDocument("cat bird fish", 1, Sequential)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"bird", "cat"}, matched)
	assert.Equal(t, StatusActual, status)
}

func TestMatchDocument_SequentialAndParallelAgree(t *testing.T) {
	build := func() *Engine {
		e := newTestEngine(t, "in the")
		require.NoError(t, e.AddDocument(1, "cat dog bird fish owl", StatusActual, nil))
		return e
	}

	seqEngine, parEngine := build(), build()
	seqMatched, _, err := seqEngine.MatchDocument("cat bird owl -dog", 1, Sequential)
	require.NoError(t, err)
	parMatched, _, err := parEngine.MatchDocument("cat bird owl -dog", 1, Parallel)
	require.NoError(t, err)

	assert.Equal(t, seqMatched, parMatched)
}

func TestMatchDocument_MinusHitReturnsEmptyEvenWithPlusMatches(t *testing.T) {
	e := newTestEngine(t, "")
	require.NoError(t, e.AddDocument(1, "cat dog bird", StatusBanned, nil))

	matched, status, err := e.MatchDocument("cat -dog", 1, Sequential)
	require.NoError(t, err)
	assert.Empty(t, matched)
	assert.Equal(t, StatusBanned, status)
}
