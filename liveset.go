package needle

import "math/rand"

// maxHeight bounds tower height; 32 levels comfortably cover document
// counts far past anything this engine will hold in memory.
const maxHeight = 32

// liveSetNode is one node of the skip list: a document id plus a tower
// of forward pointers, one per level the node was promoted to.
type liveSetNode struct {
	id    int
	tower [maxHeight]*liveSetNode
}

// liveSet is the sorted set of live document ids, backed by a skip
// list. Adapted from a position-keyed skip list built for phrase
// search into a plain ordered int set: same leveled search,
// probabilistic height, and splice insert/unlink delete, with
// Position{DocumentID,Offset} collapsed down to a bare int key and
// ascending iteration exposed directly, since §4.4's "sorted set of
// live document IDs" needs nothing more.
type liveSet struct {
	head   *liveSetNode
	height int
	size   int
	rng    *rand.Rand
}

// newLiveSet returns an empty set. The random source is created once
// and reused across inserts, rather than reseeded from the wall clock
// on every call.
func newLiveSet() *liveSet {
	return &liveSet{
		head:   &liveSetNode{},
		height: 1,
		rng:    rand.New(rand.NewSource(1)),
	}
}

// search walks from the top level down, returning the node with an
// exact id match (or nil) and the predecessor at each level.
func (ls *liveSet) search(id int) (*liveSetNode, [maxHeight]*liveSetNode) {
	var journey [maxHeight]*liveSetNode
	current := ls.head
	for level := ls.height - 1; level >= 0; level-- {
		next := current.tower[level]
		for next != nil && next.id < id {
			current = next
			next = current.tower[level]
		}
		journey[level] = current
	}
	next := current.tower[0]
	if next != nil && next.id == id {
		return next, journey
	}
	return nil, journey
}

// Contains reports whether id is a member of the set.
func (ls *liveSet) Contains(id int) bool {
	found, _ := ls.search(id)
	return found != nil
}

// Insert adds id to the set. A no-op if id is already present.
func (ls *liveSet) Insert(id int) {
	found, journey := ls.search(id)
	if found != nil {
		return
	}
	height := ls.randomHeight()
	node := &liveSetNode{id: id}
	for level := 0; level < height; level++ {
		pred := journey[level]
		if pred == nil {
			pred = ls.head
		}
		node.tower[level] = pred.tower[level]
		pred.tower[level] = node
	}
	if height > ls.height {
		ls.height = height
	}
	ls.size++
}

// Delete removes id from the set. A no-op if id is absent.
func (ls *liveSet) Delete(id int) {
	found, journey := ls.search(id)
	if found == nil {
		return
	}
	for level := 0; level < ls.height; level++ {
		if journey[level].tower[level] != found {
			break
		}
		journey[level].tower[level] = found.tower[level]
	}
	for ls.height > 1 && ls.head.tower[ls.height-1] == nil {
		ls.height--
	}
	ls.size--
}

// Len returns the number of live ids.
func (ls *liveSet) Len() int {
	return ls.size
}

// Ascending returns an iterator function yielding every live id in
// ascending order, suitable for `for id := range ls.Ascending() {...}`.
func (ls *liveSet) Ascending() func(yield func(int) bool) {
	return func(yield func(int) bool) {
		for node := ls.head.tower[0]; node != nil; node = node.tower[0] {
			if !yield(node.id) {
				return
			}
		}
	}
}

// randomHeight draws a tower height via repeated fair coin flips: 50%
// chance of height 1, 25% of height 2, and so on.
func (ls *liveSet) randomHeight() int {
	height := 1
	for ls.rng.Float64() < 0.5 && height < maxHeight {
		height++
	}
	return height
}
