package astro

// PlanetPosition is the resolved state of one body at one instant.
type PlanetPosition struct {
	Name       Body    `json:"name"`
	Longitude  float64 `json:"longitude"`
	Sign       string  `json:"sign"`
	SignDegree int     `json:"signDegree"`
	SignMinute int     `json:"signMinute"`
	Retrograde bool    `json:"retrograde"`
	Symbol     string  `json:"symbol"`
}

// LunarPhaseInfo describes the moon at one instant, including the next
// full and new moon dates.
type LunarPhaseInfo struct {
	PhaseName         string  `json:"phaseName"`
	Illumination      float64 `json:"illumination"`
	PhaseAngle        float64 `json:"phaseAngle"`
	MoonSign          string  `json:"moonSign"`
	MoonSignDegree    int     `json:"moonSignDegree"`
	DaysUntilFullMoon float64 `json:"daysUntilFullMoon"`
	DaysUntilNewMoon  float64 `json:"daysUntilNewMoon"`
	NextFullMoonDate  string  `json:"nextFullMoonDate"`
	NextNewMoonDate   string  `json:"nextNewMoonDate"`
}

// AspectType names one of the five recognized angular relationships.
type AspectType string

const (
	Conjunction AspectType = "Conjunction"
	Sextile     AspectType = "Sextile"
	Square      AspectType = "Square"
	Trine       AspectType = "Trine"
	Opposition  AspectType = "Opposition"
)

// TransitAspect is one matched transit-to-natal angular relationship.
type TransitAspect struct {
	TransitPlanet  Body       `json:"transitPlanet"`
	NatalPlanet    Body       `json:"natalPlanet"`
	AspectType     AspectType `json:"aspectType"`
	Orb            float64    `json:"orb"`
	IsApplying     bool       `json:"isApplying"`
	Interpretation string     `json:"interpretation"`
}

// DailyTransitSummary bundles one sky snapshot with its qualitative read.
type DailyTransitSummary struct {
	Date          string           `json:"date"`
	Positions     []PlanetPosition `json:"positions"`
	MoonPhase     LunarPhaseInfo   `json:"moonPhase"`
	Aspects       []TransitAspect  `json:"aspects"`
	CosmicWeather string           `json:"cosmicWeather"`
	EnergyLevel   int              `json:"energyLevel"`
}

// EventType classifies a calendar event.
type EventType string

const (
	EventFullMoon   EventType = "full_moon"
	EventNewMoon    EventType = "new_moon"
	EventIngress    EventType = "ingress"
	EventRetrograde EventType = "retrograde"
	EventDirect     EventType = "direct"
)

// Impact grades how strongly an event colors its day.
type Impact string

const (
	ImpactPositive    Impact = "positive"
	ImpactChallenging Impact = "challenging"
	ImpactNeutral     Impact = "neutral"
	ImpactSignificant Impact = "significant"
)

// MonthEvent is one dated astrological event found by the month scanner.
type MonthEvent struct {
	Date        string    `json:"date"`
	Type        EventType `json:"type"`
	Description string    `json:"description"`
	Impact      Impact    `json:"impact"`
	Emoji       string    `json:"emoji"`
}
