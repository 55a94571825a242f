package numeric

// SignedNumber is a generic constraint over the signed numeric types this
// package's functions operate on.
type SignedNumber interface {
	int | int32 | int64 | float32 | float64
}
