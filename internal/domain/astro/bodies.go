package astro

// Body identifies one of the tracked celestial bodies.
type Body string

const (
	Sun     Body = "Sun"
	Moon    Body = "Moon"
	Mercury Body = "Mercury"
	Venus   Body = "Venus"
	Mars    Body = "Mars"
	Jupiter Body = "Jupiter"
	Saturn  Body = "Saturn"
	Uranus  Body = "Uranus"
	Neptune Body = "Neptune"
	Pluto   Body = "Pluto"
)

// trackedBodies lists every body the engine resolves, in traditional order.
var trackedBodies = []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}

var bodySymbols = map[Body]string{
	Sun:     "☉",
	Moon:    "☽",
	Mercury: "☿",
	Venus:   "♀",
	Mars:    "♂",
	Jupiter: "♃",
	Saturn:  "♄",
	Uranus:  "♅",
	Neptune: "♆",
	Pluto:   "♇",
}

// slowBodies change sign rarely; their ingresses shape whole seasons.
var slowBodies = map[Body]bool{
	Jupiter: true,
	Saturn:  true,
	Uranus:  true,
	Neptune: true,
	Pluto:   true,
}

// TrackedBodies returns the resolver's body list in resolution order.
func TrackedBodies() []Body {
	out := make([]Body, len(trackedBodies))
	copy(out, trackedBodies)
	return out
}

// Symbol returns the astrological glyph for a body.
func Symbol(b Body) string {
	return bodySymbols[b]
}

func isLuminary(b Body) bool {
	return b == Sun || b == Moon
}
