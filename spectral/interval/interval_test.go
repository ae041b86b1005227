package interval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLength(t *testing.T) {
	assert.Equal(t, 0.25, New(0.5, 0.75).Length())
	assert.Equal(t, float32(0), New[float32](0.3, 0.3).Length())
}

func TestValidAndDegenerate(t *testing.T) {
	assert.True(t, New(0.0, 1.0).Valid())
	assert.True(t, New(0.5, 0.5).Valid())
	assert.False(t, New(1.0, 0.0).Valid())
	assert.False(t, New(math.NaN(), 1.0).Valid())
	assert.False(t, New(0.0, math.NaN()).Valid())
	assert.False(t, New(math.NaN(), math.NaN()).Valid())

	assert.True(t, New(0.5, 0.5).Degenerate())
	assert.False(t, New(0.5, 0.6).Degenerate())
}

func TestContains(t *testing.T) {
	r := New(0.25, 0.5)
	assert.True(t, r.Contains(0.25))
	assert.True(t, r.Contains(0.5))
	assert.False(t, r.Contains(0.2))
	assert.False(t, r.Contains(0.6))
}

func TestIntersection(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Interval[float64]
		want   Interval[float64]
		wantOK bool
	}{
		{name: "overlap", a: New(0.0, 0.5), b: New(0.25, 1.0), want: New(0.25, 0.5), wantOK: true},
		{name: "contained", a: New(0.0, 1.0), b: New(0.3, 0.4), want: New(0.3, 0.4), wantOK: true},
		{name: "symmetric", a: New(0.3, 0.4), b: New(0.0, 1.0), want: New(0.3, 0.4), wantOK: true},
		{name: "touching", a: New(0.0, 0.5), b: New(0.5, 1.0), want: New(0.5, 0.5), wantOK: true},
		{name: "disjoint", a: New(0.0, 0.4), b: New(0.5, 1.0), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Intersection(tt.a, tt.b)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "[0.25, 0.5]", New(0.25, 0.5).String())
}
