// Package types defines the small enumerations shared across the beachline,
// event, and geometric-kernel packages: the kind of a site (point or
// segment) and the kind of a beachline node (parabolic arc, V-shaped arc,
// or breakpoint). Keeping these in their own package avoids an import cycle
// between the packages that need to switch on them.
package types
