package event

import "github.com/emirpasic/gods/trees/redblacktree"

// closeKey orders close events by decreasing Y (so the tree's leftmost
// node, its minimum by this comparator, is the event with the greatest
// Y -- the next one the downward sweep reaches), then by increasing X,
// then by insertion sequence to keep otherwise-identical keys distinct.
type closeKey struct {
	y, x float64
	seq  int64
}

func compareCloseKey(a, b interface{}) int {
	ka, kb := a.(closeKey), b.(closeKey)
	switch {
	case ka.y > kb.y:
		return -1
	case ka.y < kb.y:
		return 1
	}
	switch {
	case ka.x < kb.x:
		return -1
	case ka.x > kb.x:
		return 1
	}
	switch {
	case ka.seq < kb.seq:
		return -1
	case ka.seq > kb.seq:
		return 1
	default:
		return 0
	}
}

// CloseQueue is the set of pending close events, supporting cancellation
// by arc ID: when an arc's neighbors change, any close event predicted
// for it is no longer valid and must be pulled out before a new one (if
// any) is predicted.
type CloseQueue struct {
	tree  *redblacktree.Tree
	index map[int]closeKey
	seq   int64
}

// NewCloseQueue returns an empty queue.
func NewCloseQueue() *CloseQueue {
	return &CloseQueue{
		tree:  redblacktree.NewWith(compareCloseKey),
		index: make(map[int]closeKey),
	}
}

// Len reports how many close events are pending.
func (q *CloseQueue) Len() int { return q.tree.Size() }

// Push adds ce, replacing any existing pending close event for the same
// arc.
func (q *CloseQueue) Push(ce CloseEvent) {
	q.Cancel(ce.ArcID)
	q.seq++
	ce.seq = q.seq
	key := closeKey{y: ce.Y, x: ce.Point.X(), seq: ce.seq}
	q.tree.Put(key, ce)
	q.index[ce.ArcID] = key
}

// Cancel removes the pending close event for arcID, if any.
func (q *CloseQueue) Cancel(arcID int) {
	key, ok := q.index[arcID]
	if !ok {
		return
	}
	q.tree.Remove(key)
	delete(q.index, arcID)
}

// PeekY returns the Y of the next close event without removing it.
func (q *CloseQueue) PeekY() (float64, bool) {
	node := q.tree.Left()
	if node == nil {
		return 0, false
	}
	return node.Key.(closeKey).y, true
}

// Pop removes and returns the next close event.
func (q *CloseQueue) Pop() (CloseEvent, bool) {
	node := q.tree.Left()
	if node == nil {
		return CloseEvent{}, false
	}
	ce := node.Value.(CloseEvent)
	q.tree.Remove(node.Key)
	delete(q.index, ce.ArcID)
	return ce, true
}
