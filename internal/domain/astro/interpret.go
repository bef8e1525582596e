package astro

import (
	"fmt"
	"strings"
)

type aspectKey struct {
	Type    AspectType
	Transit Body
	Natal   Body
}

// exactInterpretations carries hand-written lines for the pairings readers
// ask about most. Everything else falls through to the per-type templates.
var exactInterpretations = map[aspectKey]string{
	{Conjunction, Sun, Sun}:         "Solar return season: the year resets and your core purpose asks to be restated.",
	{Conjunction, Jupiter, Sun}:     "Jupiter crosses your Sun, opening a rare window where confidence and luck travel together.",
	{Trine, Jupiter, Sun}:           "Jupiter trines your Sun, and doors open with almost suspicious ease. Walk through one.",
	{Square, Jupiter, Sun}:          "Jupiter squares your Sun; enthusiasm outruns capacity. Promise less than you think you can do.",
	{Conjunction, Saturn, Sun}:      "Saturn sits on your Sun. Reality checks in, and what survives this audit is built to last.",
	{Square, Saturn, Sun}:           "Saturn squares your Sun, and obstacles feel personal. They are structural. Slow down and build.",
	{Opposition, Saturn, Sun}:       "Saturn opposes your Sun; an authority or obligation pushes back. Negotiate, do not bulldoze.",
	{Trine, Saturn, Sun}:            "Saturn trines your Sun, lending quiet stamina. Commitments made now hold their shape.",
	{Conjunction, Mars, Sun}:        "Mars conjoins your Sun and hands you a surplus of drive. Point it somewhere deliberate.",
	{Square, Mars, Sun}:             "Mars squares your Sun; friction sparks easily. Channel the heat into effort, not argument.",
	{Opposition, Mars, Sun}:         "Mars opposes your Sun, and someone else's agenda collides with yours. Pick battles worth winning.",
	{Conjunction, Saturn, Moon}:     "Saturn conjoins your Moon; feelings run on rations. Tend the basics and let the mood pass.",
	{Square, Saturn, Moon}:          "Saturn squares your Moon, and old doubts knock. Answer them with routine, not rumination.",
	{Trine, Venus, Moon}:            "Venus trines your Moon, softening the emotional weather. Connection comes easily today.",
	{Conjunction, Venus, Venus}:     "Venus returns to her natal post, renewing your yearly cycle of affection and taste.",
	{Conjunction, Mercury, Mercury}: "Mercury returns to its natal degree; thinking clicks back into your native rhythm.",
	{Square, Uranus, Sun}:           "Uranus squares your Sun; restlessness spikes and routines feel like cages. Change something small first.",
	{Conjunction, Pluto, Sun}:       "Pluto conjoins your Sun, a slow engine of reinvention. What is ending is making room.",
	{Opposition, Uranus, Sun}:       "Uranus opposes your Sun; disruption arrives from outside. Flexibility beats any fixed plan.",
}

// genericInterpretations is the per-type middle tier, parameterized on
// transit body, transit sign and natal body, in that order.
var genericInterpretations = map[AspectType]string{
	Conjunction: "%s in %s conjoins your natal %s, fusing their agendas into a single strong current.",
	Sextile:     "%s in %s sextiles your natal %s, opening an easy door if you choose to walk through it.",
	Square:      "%s in %s squares your natal %s, creating friction that demands an adjustment.",
	Trine:       "%s in %s trines your natal %s, letting that part of life flow without resistance.",
	Opposition:  "%s in %s opposes your natal %s, stretching you between two claims that both feel valid.",
}

// interpretAspect resolves text through three tiers: exact pairing, then a
// per-type template, then a bare fallback. Every pairing yields a line.
func interpretAspect(t AspectType, transit, natal Body, transitSign string) string {
	if line, ok := exactInterpretations[aspectKey{t, transit, natal}]; ok {
		return line
	}
	if tmpl, ok := genericInterpretations[t]; ok {
		return fmt.Sprintf(tmpl, transit, transitSign, natal)
	}
	return fmt.Sprintf("%s makes a %s to your natal %s.", transit, strings.ToLower(string(t)), natal)
}
