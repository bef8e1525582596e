package reading

import "time"

// TransitHighlight is one flavor line attached to a daily reading.
type TransitHighlight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Compatibility names the two signs highlighted for the day.
type Compatibility struct {
	Best   string `json:"best"`
	Rising string `json:"rising"`
}

// GeneratedDailyReading is the full horoscope for one sign on one date.
// It is fully determined by (zodiacSign, date): the same pair always
// reproduces the identical reading.
type GeneratedDailyReading struct {
	Date          string             `json:"date"`
	ZodiacSign    string             `json:"zodiacSign"`
	EnergyScore   int                `json:"energyScore"`
	Briefing      string             `json:"briefing"`
	Dos           []string           `json:"dos"`
	Donts         []string           `json:"donts"`
	Transits      []TransitHighlight `json:"transits"`
	LuckyColor    string             `json:"luckyColor"`
	LuckyNumber   int                `json:"luckyNumber"`
	LuckyTime     string             `json:"luckyTime"`
	Compatibility Compatibility      `json:"compatibility"`
	MoonPhase     string             `json:"moonPhase"`
}

// Config holds runtime knobs for the reading service.
type Config struct {
	CacheTTL time.Duration
}
