package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSiteKind_String(t *testing.T) {
	tests := map[string]struct {
		kind     SiteKind
		expected string
	}{
		"point":   {SitePoint, "SitePoint"},
		"segment": {SiteSegment, "SiteSegment"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.kind.String())
		})
	}
}

func TestSiteKind_String_panicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() {
		_ = SiteKind(255).String()
	})
}
