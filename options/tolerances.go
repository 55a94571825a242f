package options

// Tolerances collects the fixed floating-point tolerances the sweep and its
// geometric kernel rely on to handle near-coincident geometry. All fields
// have defaults matching the values the algorithm has always used; they are
// exposed here, rather than hard-coded at each call site, so a caller
// dealing with unusually-scaled inputs can adjust them.
type Tolerances struct {
	// DiffAccept is the maximum acceptable diff (see the close-event
	// predictor) for a candidate close event to be accepted.
	DiffAccept float64

	// ParabolaNarrow is the documented default p-value below which a
	// parabola counts as degenerate. No code in this module reads it: the
	// degenerate-parabola fallback in the geometric kernel compares P
	// against the caller's epsilon instead.
	ParabolaNarrow float64

	// Consolidate is the distance below which two candidates on the same
	// side of a pivot are treated as a single near-tangent double root.
	Consolidate float64

	// EqualitySlack is the general-purpose epsilon used for point and
	// scalar equality checks in the geometric kernel.
	EqualitySlack float64

	// CloseMergeSlack bounds how far above the current sweep position a
	// freshly predicted close event may lie and still be admitted into
	// the queue, and how far below a tie is still considered simultaneous.
	CloseMergeSlack float64
}

// DefaultTolerances returns the tolerance set the algorithm has always used.
func DefaultTolerances() Tolerances {
	return Tolerances{
		DiffAccept:      1e-2,
		ParabolaNarrow:  1e-5,
		Consolidate:     1e-6,
		EqualitySlack:   1e-9,
		CloseMergeSlack: 1e-6,
	}
}

// WithTolerances returns a GeometryOptionsFunc that overrides the default
// Tolerances wholesale. Most callers should start from DefaultTolerances
// and override individual fields.
func WithTolerances(t Tolerances) GeometryOptionsFunc {
	return func(opts *GeometryOptions) {
		opts.Tolerances = t
	}
}
