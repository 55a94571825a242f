package types

import "fmt"

// SiteKind distinguishes the two kinds of sites a sweep can ingest.
type SiteKind uint8

// Valid values for SiteKind.
const (
	// SitePoint identifies a site that is a single point.
	SitePoint SiteKind = iota

	// SiteSegment identifies a site that is an open line segment.
	SiteSegment
)

// String converts a SiteKind constant into its string representation.
//
// Panics if kind is not one of the defined constants.
func (k SiteKind) String() string {
	switch k {
	case SitePoint:
		return "SitePoint"
	case SiteSegment:
		return "SiteSegment"
	default:
		panic(fmt.Errorf("unsupported SiteKind: %d", k))
	}
}
