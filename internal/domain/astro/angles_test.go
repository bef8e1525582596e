package astro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDegrees(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{359.9, 359.9},
		{360, 0},
		{725, 5},
		{-30, 330},
		{-360, 0},
		{-725, 355},
	}
	for _, tc := range cases {
		require.InDelta(t, tc.want, NormalizeDegrees(tc.in), 1e-9, "input %v", tc.in)
	}
}

func TestNormalizeDegreesRange(t *testing.T) {
	for x := -1080.0; x < 1080; x += 0.7 {
		got := NormalizeDegrees(x)
		require.GreaterOrEqual(t, got, 0.0)
		require.Less(t, got, 360.0)
	}
}

func TestShortestAngularDistance(t *testing.T) {
	cases := []struct {
		a, b, want float64
	}{
		{10, 350, 20},
		{350, 10, 20},
		{0, 180, 180},
		{90, 270, 180},
		{359, 1, 2},
		{45, 45, 0},
		{0, 90, 90},
	}
	for _, tc := range cases {
		require.InDelta(t, tc.want, ShortestAngularDistance(tc.a, tc.b), 1e-9, "d(%v,%v)", tc.a, tc.b)
	}
}

func TestShortestAngularDistanceClosure(t *testing.T) {
	for a := 0.0; a < 360; a += 13.7 {
		for b := 0.0; b < 360; b += 17.3 {
			d := ShortestAngularDistance(a, b)
			require.GreaterOrEqual(t, d, 0.0)
			require.LessOrEqual(t, d, 180.0)
			require.InDelta(t, d, ShortestAngularDistance(b, a), 1e-9)
		}
	}
}

func TestSignedDelta(t *testing.T) {
	require.InDelta(t, -20.0, SignedDelta(10, 350), 1e-9)
	require.InDelta(t, 20.0, SignedDelta(350, 10), 1e-9)
	require.InDelta(t, 180.0, SignedDelta(0, 180), 1e-9)
	require.InDelta(t, -0.7, SignedDelta(0.5, 359.8), 1e-9)
	require.InDelta(t, 0.0, SignedDelta(123.4, 123.4), 1e-9)
}

func TestSignAt(t *testing.T) {
	cases := []struct {
		lon  float64
		want string
	}{
		{0.0, "Aries"},
		{29.999, "Aries"},
		{30, "Taurus"},
		{90, "Cancer"},
		{222, "Scorpio"},
		{359.9, "Pisces"},
		{-10, "Pisces"},
		{360, "Aries"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, SignAt(tc.lon), "longitude %v", tc.lon)
	}
}

func TestDecompose(t *testing.T) {
	sign, degree, minute := Decompose(15.5083)
	require.Equal(t, "Aries", sign)
	require.Equal(t, 15, degree)
	require.Equal(t, 30, minute)

	sign, degree, minute = Decompose(222.25)
	require.Equal(t, "Scorpio", sign)
	require.Equal(t, 12, degree)
	require.Equal(t, 15, minute)

	// Rounding must never spill the minute past 59.
	sign, degree, minute = Decompose(29.9999)
	require.Equal(t, "Aries", sign)
	require.Equal(t, 29, degree)
	require.Equal(t, 59, minute)
}

func TestDecomposeRoundTrip(t *testing.T) {
	for lon := 0.0; lon < 360; lon += 0.37 {
		sign, degree, minute := Decompose(lon)
		idx := signIndex(t, sign)
		rebuilt := float64(idx)*30 + float64(degree) + float64(minute)/60
		require.LessOrEqual(t, math.Abs(rebuilt-lon), 1.0/60+1e-9, "longitude %v", lon)
		require.GreaterOrEqual(t, degree, 0)
		require.Less(t, degree, 30)
		require.GreaterOrEqual(t, minute, 0)
		require.Less(t, minute, 60)
	}
}

func signIndex(t *testing.T, sign string) int {
	t.Helper()
	for i, s := range zodiacSigns {
		if s == sign {
			return i
		}
	}
	t.Fatalf("unknown sign %q", sign)
	return -1
}
