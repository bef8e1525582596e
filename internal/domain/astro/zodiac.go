package astro

import "strings"

var zodiacSigns = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Element groups signs by classical element.
type Element string

const (
	Fire  Element = "Fire"
	Earth Element = "Earth"
	Air   Element = "Air"
	Water Element = "Water"
)

var signElements = map[string]Element{
	"Aries": Fire, "Leo": Fire, "Sagittarius": Fire,
	"Taurus": Earth, "Virgo": Earth, "Capricorn": Earth,
	"Gemini": Air, "Libra": Air, "Aquarius": Air,
	"Cancer": Water, "Scorpio": Water, "Pisces": Water,
}

// Fire feeds air and earth holds water; each element also supports itself.
var elementAllies = map[Element][2]Element{
	Fire:  {Fire, Air},
	Air:   {Air, Fire},
	Earth: {Earth, Water},
	Water: {Water, Earth},
}

var signEnergies = map[string]string{
	"Aries":       "bold",
	"Taurus":      "steady",
	"Gemini":      "curious",
	"Cancer":      "nurturing",
	"Leo":         "radiant",
	"Virgo":       "precise",
	"Libra":       "harmonizing",
	"Scorpio":     "intense",
	"Sagittarius": "adventurous",
	"Capricorn":   "disciplined",
	"Aquarius":    "inventive",
	"Pisces":      "dreamy",
}

// ZodiacSigns returns the twelve signs in wheel order.
func ZodiacSigns() []string {
	out := make([]string, len(zodiacSigns))
	copy(out, zodiacSigns[:])
	return out
}

// ElementOf reports the classical element of a sign.
func ElementOf(sign string) Element {
	return signElements[sign]
}

// EnergyDescriptor returns the one-word tone associated with a sign.
func EnergyDescriptor(sign string) string {
	if d, ok := signEnergies[sign]; ok {
		return d
	}
	return "balanced"
}

// CompatibleSigns lists, in wheel order, every sign sharing an allied
// element with the given sign, the sign itself excluded.
func CompatibleSigns(sign string) []string {
	element, ok := signElements[sign]
	if !ok {
		return nil
	}
	allies := elementAllies[element]
	out := make([]string, 0, 5)
	for _, candidate := range zodiacSigns {
		if candidate == sign {
			continue
		}
		ce := signElements[candidate]
		if ce == allies[0] || ce == allies[1] {
			out = append(out, candidate)
		}
	}
	return out
}

// CanonicalSign resolves a case-insensitive sign name to its canonical
// spelling, reporting whether the name is a real sign.
func CanonicalSign(name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	for _, sign := range zodiacSigns {
		if strings.EqualFold(sign, trimmed) {
			return sign, true
		}
	}
	return "", false
}
