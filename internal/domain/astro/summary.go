package astro

import (
	"fmt"
	"strings"
)

func buildWeather(positions []PlanetPosition, phase LunarPhaseInfo, aspects []TransitAspect) (string, int) {
	energy := 7
	var clauses []string

	var retro []string
	for _, p := range positions {
		if p.Retrograde {
			retro = append(retro, string(p.Name))
		}
	}
	switch {
	case len(retro) >= 3:
		clauses = append(clauses, fmt.Sprintf("With %d planets retrograde, the sky asks for review rather than launch; double-check anything you are about to commit to.", len(retro)))
		energy = 4
	case len(retro) >= 1:
		clauses = append(clauses, fmt.Sprintf("%s retrograde invites you to revisit and refine unfinished business in that area of life.", strings.Join(retro, " and ")))
		energy = 6
	}

	switch phase.PhaseName {
	case "Full Moon":
		clauses = append(clauses, "The Full Moon brings emotions to a peak and illuminates what has been hiding in plain sight.")
		energy += 2
		if energy > 10 {
			energy = 10
		}
	case "New Moon":
		clauses = append(clauses, "The New Moon marks a quiet reset, a seed moment for intentions rather than results.")
		energy--
		if energy < 1 {
			energy = 1
		}
	}

	harmonious, challenging := 0, 0
	for _, a := range aspects {
		switch aspectNatures[a.AspectType] {
		case "positive":
			harmonious++
		case "challenging":
			challenging++
		}
	}
	if harmonious > challenging {
		clauses = append(clauses, "Flowing aspects smooth the path today; momentum favors the bold move.")
		energy++
	} else if challenging > harmonious {
		clauses = append(clauses, "Tense aspects add friction; patience will get you further than force.")
		energy--
	}

	if len(clauses) == 0 {
		clauses = append(clauses, fmt.Sprintf("The %s in %s sets the day's tone: %s.",
			phase.PhaseName, phase.MoonSign, EnergyDescriptor(phase.MoonSign)))
	}

	if energy < 1 {
		energy = 1
	}
	if energy > 10 {
		energy = 10
	}
	return strings.Join(clauses, " "), energy
}
