package gradient

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Color
		wantErr  bool
	}{
		{
			name:     "lowercase",
			input:    "ff00aa",
			expected: Color{R: 0xff, G: 0x00, B: 0xaa},
		},
		{
			name:     "uppercase",
			input:    "C49DCF",
			expected: Color{R: 0xc4, G: 0x9d, B: 0xcf},
		},
		{
			name:     "leading hash",
			input:    "#373343",
			expected: Color{R: 0x37, G: 0x33, B: 0x43},
		},
		{
			name:    "non-hex characters",
			input:   "xyz123",
			wantErr: true,
		},
		{
			name:    "too short",
			input:   "fff",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   "ffffff00",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := ParseHex(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestLinearEndpoints(t *testing.T) {
	t.Parallel()

	targets := []string{"ffffff", "000000", "f8ff7a", "74fc98", "309dfc", "373343"}
	for _, target := range targets {
		end, err := ParseHex(target)
		require.NoError(t, err)

		for _, steps := range []int{2, 3, 10, 17, 256} {
			colors, err := Linear(Start, end, steps)
			require.NoError(t, err)
			require.Len(t, colors, steps)
			assert.Equal(t, Start, colors[0], "target=%s steps=%d", target, steps)
			assert.Equal(t, end, colors[steps-1], "target=%s steps=%d", target, steps)
		}
	}
}

func TestLinearTwoSteps(t *testing.T) {
	t.Parallel()

	end, err := ParseHex("ffffff")
	require.NoError(t, err)

	colors, err := Linear(Start, end, 2)
	require.NoError(t, err)
	require.Len(t, colors, 2)
	assert.Equal(t, "[0x37, 0x33, 0x43],", colors[0].ArrayLiteral())
	assert.Equal(t, "[0xff, 0xff, 0xff],", colors[1].ArrayLiteral())
}

func TestLinearDegenerate(t *testing.T) {
	t.Parallel()

	// Target equal to start: every entry is the start color.
	colors, err := Linear(Start, Start, 10)
	require.NoError(t, err)
	for _, c := range colors {
		assert.Equal(t, Start, c)
	}
}

func TestLinearTooFewSteps(t *testing.T) {
	t.Parallel()

	for _, steps := range []int{1, 0, -1} {
		_, err := Linear(Start, Color{R: 0xff}, steps)
		require.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestArrayLiteralFormat(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`^\[0x[0-9a-f]{2}, 0x[0-9a-f]{2}, 0x[0-9a-f]{2}\],$`)

	end, err := ParseHex("309dfc")
	require.NoError(t, err)

	colors, err := Linear(Start, end, 10)
	require.NoError(t, err)
	for _, c := range colors {
		assert.Regexp(t, pattern, c.ArrayLiteral())
	}
}

func TestLerpMidpoint(t *testing.T) {
	t.Parallel()

	mid := Lerp(Color{}, Color{R: 0xff, G: 0xff, B: 0xff}, 0.5)
	assert.Equal(t, Color{R: 0x80, G: 0x80, B: 0x80}, mid)

	// t is clamped, not extrapolated.
	assert.Equal(t, Color{}, Lerp(Color{}, Color{R: 0xff}, -1))
	assert.Equal(t, Color{R: 0xff}, Lerp(Color{}, Color{R: 0xff}, 2))
}

func TestRampMatchesOriginalBluePalette(t *testing.T) {
	t.Parallel()

	end, err := ParseHex("309dfc")
	require.NoError(t, err)

	ramp := Ramp(end)
	assert.Equal(t, Start, ramp[0])
	assert.Equal(t, end, ramp[9])

	// Consecutive shades step by a near-constant per-channel delta.
	for i := 1; i < len(ramp); i++ {
		dr := int(ramp[i].R) - int(ramp[i-1].R)
		dg := int(ramp[i].G) - int(ramp[i-1].G)
		db := int(ramp[i].B) - int(ramp[i-1].B)
		assert.InDelta(t, float64(int(end.R)-int(Start.R))/9, float64(dr), 1)
		assert.InDelta(t, float64(int(end.G)-int(Start.G))/9, float64(dg), 1)
		assert.InDelta(t, float64(int(end.B)-int(Start.B))/9, float64(db), 1)
	}
}

func TestHex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "373343", Start.Hex())
	assert.Equal(t, "ff00aa", Color{R: 0xff, B: 0xaa}.Hex())
}
