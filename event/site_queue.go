package event

import "github.com/google/btree"

// SiteQueue is the ordered backlog of site events awaiting the sweep,
// highest priority (topmost, per SiteEvent.Less) first.
type SiteQueue struct {
	tree *btree.BTreeG[SiteEvent]
}

// NewSiteQueue builds an empty queue preloaded with sites.
func NewSiteQueue(sites ...SiteEvent) *SiteQueue {
	q := &SiteQueue{tree: btree.NewG(32, SiteEvent.Less)}
	for _, s := range sites {
		q.tree.ReplaceOrInsert(s)
	}
	return q
}

// Len reports how many events remain.
func (q *SiteQueue) Len() int { return q.tree.Len() }

// Peek returns the next event without removing it.
func (q *SiteQueue) Peek() (SiteEvent, bool) {
	return q.tree.Min()
}

// Pop removes and returns the next event.
func (q *SiteQueue) Pop() (SiteEvent, bool) {
	return q.tree.DeleteMin()
}

// PopPacket removes and returns the next event together with the
// immediately following events, of either site kind, that share its exact
// arrival point (same Y and X), up to three events in all: typically a
// polygon vertex's point site and its one or two incident segment sites.
func (q *SiteQueue) PopPacket() Packet {
	first, ok := q.Pop()
	if !ok {
		return nil
	}
	packet := Packet{first}
	for len(packet) < 3 {
		next, ok := q.Peek()
		if !ok || next.Y != first.Y || next.X != first.X {
			break
		}
		packet = append(packet, next)
		q.Pop()
	}
	return packet
}
