package reading

import (
	"time"

	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/domain/astro"
)

const dateLayout = "2006-01-02"

// buildReading derives the complete reading for a canonical sign and day.
// Every randomized choice pulls from one seeded stream in fixed order, so
// the draw sequence is part of the format: reordering any step below
// changes every reading.
func buildReading(sign string, day time.Time, moonPhase string) GeneratedDailyReading {
	date := day.Format(dateLayout)
	r := newRNG(hashSeed(sign, date))

	energy := r.intn(5) + 4
	if r.next() > 0.6 {
		energy++
	}
	if r.next() > 0.8 {
		energy++
	}
	if energy < 1 {
		energy = 1
	}
	if energy > 10 {
		energy = 10
	}

	// The briefing rotates with the calendar, not the stream, so it stays
	// put all day. The three draws above still happen to keep the stream
	// aligned for the steps below.
	bank := briefingBanks[sign]
	briefing := bank[day.YearDay()%len(bank)]

	dos := draw(r, doPool, 2)
	donts := draw(r, dontPool, 2)
	transits := drawHighlights(r, 3)

	color := luckyColors[r.intn(len(luckyColors))]
	number := r.intn(99) + 1
	hour := luckyTimes[r.intn(len(luckyTimes))]

	compatible := astro.CompatibleSigns(sign)
	shuffle(r, compatible)

	return GeneratedDailyReading{
		Date:        date,
		ZodiacSign:  sign,
		EnergyScore: energy,
		Briefing:    briefing,
		Dos:         dos,
		Donts:       donts,
		Transits:    transits,
		LuckyColor:  color,
		LuckyNumber: number,
		LuckyTime:   hour,
		Compatibility: Compatibility{
			Best:   compatible[0],
			Rising: compatible[1],
		},
		MoonPhase: moonPhase,
	}
}

// draw shuffles a copy of the pool and takes the first n entries.
func draw(r *rng, pool []string, n int) []string {
	deck := make([]string, len(pool))
	copy(deck, pool)
	shuffle(r, deck)
	return deck[:n:n]
}

func drawHighlights(r *rng, n int) []TransitHighlight {
	deck := make([]highlightTemplate, len(highlightTemplates))
	copy(deck, highlightTemplates)
	shuffle(r, deck)

	out := make([]TransitHighlight, 0, n)
	for _, tmpl := range deck[:n] {
		out = append(out, TransitHighlight{
			Title:       tmpl.Title,
			Description: tmpl.Details[r.intn(len(tmpl.Details))],
		})
	}
	return out
}
