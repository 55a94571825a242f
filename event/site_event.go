// Package event defines the two event kinds the sweep consumes -- site
// events (a point or segment site becoming relevant to the sweep line)
// and close events (an arc shrinking to nothing) -- and the priority
// queues that order them.
package event

import (
	"github.com/dmarsden-gvd/gvdfortune/geom"
	"github.com/dmarsden-gvd/gvdfortune/types"
)

// SiteEvent is a site becoming relevant to the sweep line: immediately
// for a point site, or at its upper endpoint for a segment site.
type SiteEvent struct {
	Site geom.Site
	Y, X float64
}

// NewSiteEvent builds the event for site, deriving its (Y,X) ordering key
// from the site's arrival point: the point itself for a point site, or
// the upper endpoint A for a segment site.
func NewSiteEvent(site geom.Site) SiteEvent {
	if site.Kind == types.SitePoint {
		return SiteEvent{Site: site, Y: site.Point.Y(), X: site.Point.X()}
	}
	return SiteEvent{Site: site, Y: site.A.Y(), X: site.A.X()}
}

// Less orders site events by decreasing Y (the sweep processes the
// topmost sites first), breaking ties by increasing X.
func (e SiteEvent) Less(other SiteEvent) bool {
	if e.Y != other.Y {
		return e.Y > other.Y
	}
	if e.X != other.X {
		return e.X < other.X
	}
	return e.Site.Label < other.Site.Label
}
