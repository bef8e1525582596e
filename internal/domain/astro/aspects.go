package astro

import (
	"math"
	"sort"
)

type aspectGeometry struct {
	Type  AspectType
	Angle float64
	Orb   float64
	// Nature is "positive", "challenging" or "neutral".
	Nature string
}

var aspectGeometries = []aspectGeometry{
	{Type: Conjunction, Angle: 0, Orb: 8, Nature: "neutral"},
	{Type: Sextile, Angle: 60, Orb: 6, Nature: "positive"},
	{Type: Square, Angle: 90, Orb: 7, Nature: "challenging"},
	{Type: Trine, Angle: 120, Orb: 8, Nature: "positive"},
	{Type: Opposition, Angle: 180, Orb: 8, Nature: "challenging"},
}

var aspectNatures = func() map[AspectType]string {
	m := make(map[AspectType]string, len(aspectGeometries))
	for _, g := range aspectGeometries {
		m[g.Type] = g.Nature
	}
	return m
}()

// matchAspects enumerates every transit-to-natal pair against the five
// geometries and returns the hits sorted by ascending orb. The transit
// Moon against the natal Moon is skipped: lunar motion is too fast for
// that pairing to mean anything.
func matchAspects(transits, natal []PlanetPosition) []TransitAspect {
	var out []TransitAspect
	for _, t := range transits {
		for _, n := range natal {
			if t.Name == Moon && n.Name == Moon {
				continue
			}
			diff := ShortestAngularDistance(t.Longitude, n.Longitude)
			for _, geo := range aspectGeometries {
				orb := math.Abs(diff - geo.Angle)
				maxOrb := geo.Orb
				if !isLuminary(t.Name) && !isLuminary(n.Name) {
					maxOrb--
				}
				if orb > maxOrb {
					continue
				}
				out = append(out, TransitAspect{
					TransitPlanet:  t.Name,
					NatalPlanet:    n.Name,
					AspectType:     geo.Type,
					Orb:            orb,
					IsApplying:     orb < geo.Orb/2,
					Interpretation: interpretAspect(geo.Type, t.Name, n.Name, t.Sign),
				})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Orb < out[j].Orb
	})
	return out
}
