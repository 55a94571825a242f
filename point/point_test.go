package point

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint_Coordinates(t *testing.T) {
	tests := map[string]struct {
		point Point
		wantX float64
		wantY float64
	}{
		"origin":           {New(0, 0), 0, 0},
		"positive values":  {New(3, 4), 3, 4},
		"negative values":  {New(-5, -10), -5, -10},
		"mixed values":     {New(-7, 9), -7, 9},
		"large magnitudes": {New(1000000, -999999), 1000000, -999999},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			x, y := tc.point.Coordinates()
			assert.Equal(t, tc.wantX, x)
			assert.Equal(t, tc.wantY, y)
		})
	}
}

func TestPoint_Add(t *testing.T) {
	assert.Equal(t, New(4, 6), New(1, 2).Add(New(3, 4)))
}

func TestPoint_Sub(t *testing.T) {
	assert.Equal(t, New(-2, -2), New(1, 2).Sub(New(3, 4)))
}

func TestPoint_Translate(t *testing.T) {
	tests := []struct {
		name     string
		p, delta Point
		expected Point
	}{
		{"(1,2)+(3,4)", New(1, 2), New(3, 4), New(4, 6)},
		{"(-1.5,-2.5)+(3.5,4.5)", New(-1.5, -2.5), New(3.5, 4.5), New(2.0, 2.0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.p.Translate(tt.delta))
		})
	}
}

func TestPoint_Negate(t *testing.T) {
	assert.Equal(t, New(-1, -2), New(1, 2).Negate())
}

func TestPoint_Scale(t *testing.T) {
	tests := map[string]struct {
		point, ref Point
		k          float64
		expected   Point
	}{
		"scale by 1.5 about (1,1)":  {New(2, 3), New(1, 1), 1.5, New(2.5, 4.0)},
		"scale by 0.25 about (2,2)": {New(4, 8), New(2, 2), 0.25, New(2.5, 3.5)},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			result := tc.point.Scale(tc.ref, tc.k)
			assert.InDelta(t, tc.expected.x, result.x, 1e-12)
			assert.InDelta(t, tc.expected.y, result.y, 1e-12)
		})
	}
}

func TestPoint_Midpoint(t *testing.T) {
	assert.Equal(t, New(2, 3), New(0, 0).Midpoint(New(4, 6)))
}

func TestPoint_DotProduct(t *testing.T) {
	assert.Equal(t, 23.0, New(2, 3).DotProduct(New(4, 5)))
}

func TestPoint_CrossProduct(t *testing.T) {
	tests := []struct {
		name     string
		p, q     Point
		expected float64
	}{
		{"(2,3) x (4,5)", New(2, 3), New(4, 5), -2.0},
		{"(3.5,2.5) x (4,6)", New(3.5, 2.5), New(4, 6), 11.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.p.CrossProduct(tt.q))
		})
	}
}

func TestPoint_DistanceToPoint(t *testing.T) {
	p := New(0, 0)
	q := New(3, 4)
	assert.Equal(t, 25.0, p.DistanceSquaredToPoint(q))
	assert.Equal(t, 5.0, p.DistanceToPoint(q))
}

func TestPoint_Eq(t *testing.T) {
	tests := map[string]struct {
		p, q     Point
		epsilon  float64
		expected bool
	}{
		"distinct points, zero epsilon": {New(2, 3), New(4, 5), 0, false},
		"identical points":              {New(2, 3), New(2, 3), 0, true},
		"within epsilon":                {New(0.2+0.1, 0.2+0.1), New(0.3, 0.3), 1e-9, true},
		"outside epsilon":               {New(0, 0), New(0.01, 0), 1e-9, false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.p.Eq(tc.q, tc.epsilon))
		})
	}
}

func TestPoint_String(t *testing.T) {
	p := New(1.2, 3.4)
	assert.Contains(t, p.String(), "1.2")
	assert.Contains(t, p.String(), "3.4")
}

