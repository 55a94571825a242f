// Package sweep drives Fortune's sweep-line algorithm to completion: it
// owns the beachline, the pending close-event queue, and the growing set
// of finished diagram edges, and exposes a single entry point, Run.
package sweep

import (
	"fmt"

	"github.com/dmarsden-gvd/gvdfortune/beachline"
	"github.com/dmarsden-gvd/gvdfortune/event"
	"github.com/dmarsden-gvd/gvdfortune/geom"
	"github.com/dmarsden-gvd/gvdfortune/options"
	"github.com/dmarsden-gvd/gvdfortune/predictor"
)

// Result is everything a completed (or stopped-early) sweep produced.
type Result struct {
	Edges       []beachline.CommittedEdge
	CloseEvents []event.CloseEvent
	FinalArcs   []beachline.SampledArc
	StoppedAt   float64
}

// Driver holds the beachline and event queues for a single run. It is not
// safe for concurrent use; create a new Driver per sweep.
type Driver struct {
	root  *beachline.Node
	nodes map[int]*beachline.Node
	close *event.CloseQueue

	edges       []beachline.CommittedEdge
	closeEvents []event.CloseEvent

	nextArc, nextLabel int

	tol     options.Tolerances
	epsilon float64
	samples int
}

// New returns a Driver configured by opts.
func New(opts ...options.GeometryOptionsFunc) *Driver {
	o := options.ApplyGeometryOptions(options.DefaultGeometryOptions(), opts...)
	return &Driver{
		nodes:   make(map[int]*beachline.Node),
		close:   event.NewCloseQueue(),
		tol:     o.Tolerances,
		epsilon: o.Epsilon,
		samples: 16,
	}
}

func (d *Driver) allocArc() int   { d.nextArc++; return d.nextArc }
func (d *Driver) allocLabel() int { d.nextLabel++; return d.nextLabel }

// Run sweeps sites from top to bottom, stopping once the sweep line
// reaches stopY (pass negative infinity to run to completion). A
// geometric impossibility encountered mid-sweep -- two arcs that should
// intersect but do not, per geom.GetIntercept -- is reported as an error
// rather than left to corrupt the beachline further.
func (d *Driver) Run(sites []geom.Site, stopY float64) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sweep: fatal error at y=%g: %v", stopY, r)
		}
	}()

	events := make([]event.SiteEvent, len(sites))
	for i, s := range sites {
		events[i] = event.NewSiteEvent(s)
	}
	queue := event.NewSiteQueue(events...)

	curY := stopY
	for queue.Len() > 0 || d.close.Len() > 0 {
		closeY, hasClose := d.close.PeekY()
		siteEvt, hasSite := queue.Peek()

		useClose := hasClose && (!hasSite || closeY >= siteEvt.Y)
		if !hasClose && !hasSite {
			break
		}
		if useClose {
			curY = closeY
		} else {
			curY = siteEvt.Y
		}
		if curY < stopY {
			break
		}

		if useClose {
			ce, _ := d.close.Pop()
			d.processClose(ce)
		} else {
			packet := queue.PopPacket()
			if err := d.processPacket(packet); err != nil {
				return Result{}, err
			}
		}
	}

	finalArcs := beachline.SampleBeachline(d.root, stopY, d.samples, d.epsilon)
	return Result{
		Edges:       d.edges,
		CloseEvents: d.closeEvents,
		FinalArcs:   finalArcs,
		StoppedAt:   stopY,
	}, nil
}

// processPacket inserts the packet's events one at a time, in packet order,
// predicting close events after each insertion; the packet is not inserted
// as a single combined subtree.
func (d *Driver) processPacket(packet event.Packet) error {
	for _, se := range packet {
		id := d.allocArc()
		newRoot, res, err := beachline.Insert(d.root, se.Site, id, d.allocLabel, d.allocArc, se.Y, d.epsilon)
		if err != nil {
			return err
		}
		d.root = newRoot
		d.nodes[id] = res.NewArc

		if res.Split != nil {
			d.close.Cancel(res.Split.ID)
			delete(d.nodes, res.Split.ID)
			d.nodes[res.LeftCopy.ID] = res.LeftCopy
			d.nodes[res.RightCopy.ID] = res.RightCopy
			d.predictAround(res.LeftCopy, se.Y)
			d.predictAround(res.RightCopy, se.Y)
		}
		d.predictAround(res.NewArc, se.Y)
	}
	return nil
}

func (d *Driver) processClose(ce event.CloseEvent) {
	arcNode, ok := d.nodes[ce.ArcID]
	if !ok {
		return
	}
	newRoot, committed, survivor := beachline.Remove(d.root, arcNode, ce.Point)
	d.root = newRoot
	delete(d.nodes, ce.ArcID)
	d.closeEvents = append(d.closeEvents, ce)
	d.edges = append(d.edges, committed...)
	if survivor == nil {
		return
	}
	left := beachline.LeftArc(survivor)
	right := beachline.RightArc(survivor)
	if left != nil {
		d.close.Cancel(left.ID)
		d.predictAround(left, ce.Y)
	}
	if right != nil {
		d.close.Cancel(right.ID)
		d.predictAround(right, ce.Y)
	}
}

func (d *Driver) predictAround(arc *beachline.Node, directrix float64) {
	left := beachline.PrevArc(arc)
	right := beachline.NextArc(arc)
	if left == nil || right == nil {
		return
	}
	res, ok := predictor.Predict(left.Site, arc.Site, right.Site, directrix, d.tol, d.epsilon)
	if !ok {
		return
	}
	// Only queue events that have not already passed: a predicted yval
	// above the current sweep position would have fired already, and
	// inserting it now would process it out of order.
	if !(res.Y < directrix-d.tol.CloseMergeSlack || abs(res.Y-directrix) < d.tol.CloseMergeSlack) {
		return
	}
	d.close.Push(event.CloseEvent{ArcID: arc.ID, Point: res.Point, Y: res.Y})
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
