package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/domain/astro"
	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/domain/reading"
)

var (
	colorPrimary = lipgloss.Color("#9D7CD8") // lavender
	colorAccent  = lipgloss.Color("#E0AF68") // gold
	colorDanger  = lipgloss.Color("#FF6B6B")
	colorSuccess = lipgloss.Color("#6BCF7F")
	colorMuted   = lipgloss.Color("#6C757D")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	labelStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	accentStyle = lipgloss.NewStyle().Foreground(colorAccent)
	retroStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorDanger)
	doStyle     = lipgloss.NewStyle().Foreground(colorSuccess)
	dontStyle   = lipgloss.NewStyle().Foreground(colorDanger)
)

func renderTransits(at time.Time, positions []astro.PlanetPosition) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Transits"))
	b.WriteString(labelStyle.Render("  " + at.Format("2006-01-02 15:04 MST")))
	for _, p := range positions {
		line := fmt.Sprintf("\n%s %-8s %2d°%02d' %s", p.Symbol, p.Name, p.SignDegree, p.SignMinute, p.Sign)
		if p.Retrograde {
			line += " " + retroStyle.Render("℞")
		}
		b.WriteString(line)
	}
	return b.String()
}

func renderMoon(at time.Time, info astro.LunarPhaseInfo) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Moon"))
	b.WriteString(labelStyle.Render("  " + at.Format("2006-01-02 15:04 MST")))
	b.WriteString("\n")
	b.WriteString(accentStyle.Render(info.PhaseName))
	b.WriteString(labelStyle.Render(fmt.Sprintf("  %.0f%% illuminated", info.Illumination*100)))
	b.WriteString(fmt.Sprintf("\nMoon in %s at %d°", info.MoonSign, info.MoonSignDegree))
	b.WriteString(fmt.Sprintf("\nNext full moon  %s  %s", info.NextFullMoonDate, labelStyle.Render(fmt.Sprintf("in %.1f days", info.DaysUntilFullMoon))))
	b.WriteString(fmt.Sprintf("\nNext new moon   %s  %s", info.NextNewMoonDate, labelStyle.Render(fmt.Sprintf("in %.1f days", info.DaysUntilNewMoon))))
	return b.String()
}

func renderReading(r reading.GeneratedDailyReading) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(r.ZodiacSign))
	b.WriteString(labelStyle.Render("  " + r.Date))
	b.WriteString(fmt.Sprintf("\nEnergy %s %d/10\n", energyBar(r.EnergyScore), r.EnergyScore))
	b.WriteString(r.Briefing + "\n")

	b.WriteString("\n" + accentStyle.Render("Do") + "\n")
	for _, item := range r.Dos {
		b.WriteString(doStyle.Render("  + ") + item + "\n")
	}
	b.WriteString(accentStyle.Render("Don't") + "\n")
	for _, item := range r.Donts {
		b.WriteString(dontStyle.Render("  - ") + item + "\n")
	}

	if len(r.Transits) > 0 {
		b.WriteString(accentStyle.Render("Transits") + "\n")
		for _, tr := range r.Transits {
			b.WriteString("  " + tr.Title + "  " + labelStyle.Render(tr.Description) + "\n")
		}
	}

	b.WriteString(fmt.Sprintf("\nLucky color %s, number %d, time %s", r.LuckyColor, r.LuckyNumber, r.LuckyTime))
	b.WriteString(fmt.Sprintf("\nBest with %s, rising %s", r.Compatibility.Best, r.Compatibility.Rising))
	b.WriteString("\n" + labelStyle.Render("Moon: "+r.MoonPhase))
	return b.String()
}

func renderCalendar(year int, month time.Month, events []astro.MonthEvent) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %d", month, year)))
	if len(events) == 0 {
		b.WriteString("\n" + labelStyle.Render("no notable events"))
		return b.String()
	}
	for _, e := range events {
		b.WriteString(fmt.Sprintf("\n%s  %s  %s %s",
			labelStyle.Render(e.Date), e.Emoji, e.Description,
			impactStyleFor(e.Impact).Render("("+string(e.Impact)+")")))
	}
	return b.String()
}

func energyBar(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}
	return accentStyle.Render(strings.Repeat("█", score)) + labelStyle.Render(strings.Repeat("░", 10-score))
}

func impactStyleFor(impact astro.Impact) lipgloss.Style {
	switch impact {
	case astro.ImpactPositive:
		return doStyle
	case astro.ImpactChallenging:
		return dontStyle
	case astro.ImpactSignificant:
		return accentStyle
	default:
		return labelStyle
	}
}
