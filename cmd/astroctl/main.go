package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/domain/astro"
	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/domain/reading"
	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/infra/ephemeris/meeus"
	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/infra/readingrepo"
	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/infra/readingstore"
	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/pkg/util"
)

var atFlag string

var rootCmd = &cobra.Command{
	Use:   "astroctl",
	Short: "Inspect the astrological engine from the terminal",
	Long: `astroctl runs the astrological computation engine in-process: current
transits, lunar phases, monthly event calendars, and deterministic daily
readings, without needing the HTTP service up.`,
	SilenceUsage: true,
}

var transitsCmd = &cobra.Command{
	Use:   "transits",
	Short: "Show where every tracked body sits",
	RunE:  runTransits,
}

var moonCmd = &cobra.Command{
	Use:   "moon",
	Short: "Show the lunar phase and the next full and new moon",
	RunE:  runMoon,
}

var readingCmd = &cobra.Command{
	Use:   "reading <sign> [date]",
	Short: "Generate the daily reading for a zodiac sign",
	Long: `Generate the deterministic daily reading for a zodiac sign. The date
defaults to today (UTC) and must be formatted as YYYY-MM-DD.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runReading,
}

var calendarCmd = &cobra.Command{
	Use:   "calendar <year> <month>",
	Short: "List the notable astrological events of a month",
	Args:  cobra.ExactArgs(2),
	RunE:  runCalendar,
}

func init() {
	transitsCmd.Flags().StringVar(&atFlag, "at", "", "RFC 3339 instant to inspect (default: now)")
	moonCmd.Flags().StringVar(&atFlag, "at", "", "RFC 3339 instant to inspect (default: now)")

	rootCmd.AddCommand(transitsCmd)
	rootCmd.AddCommand(moonCmd)
	rootCmd.AddCommand(readingCmd)
	rootCmd.AddCommand(calendarCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTransits(cmd *cobra.Command, args []string) error {
	at, err := resolveInstant(atFlag)
	if err != nil {
		return err
	}
	fmt.Println(renderTransits(at, newEngine().CurrentTransits(at)))
	return nil
}

func runMoon(cmd *cobra.Command, args []string) error {
	at, err := resolveInstant(atFlag)
	if err != nil {
		return err
	}
	fmt.Println(renderMoon(at, newEngine().MoonPhase(at)))
	return nil
}

func runReading(cmd *cobra.Command, args []string) error {
	date := util.NowUTC().Format("2006-01-02")
	if len(args) == 2 {
		date = args[1]
	}

	engine := newEngine()
	svc := reading.NewService(reading.Config{}, readingrepo.NewMemoryRepository(), readingstore.NewMemoryStore(), engine, cliLogger())
	result, err := svc.DailyReading(cmd.Context(), args[0], date)
	if err != nil {
		return err
	}
	fmt.Println(renderReading(result))
	return nil
}

func runCalendar(cmd *cobra.Command, args []string) error {
	year, err := strconv.Atoi(args[0])
	if err != nil || year < 1 {
		return fmt.Errorf("year must be a positive integer, got %q", args[0])
	}
	month, err := strconv.Atoi(args[1])
	if err != nil || month < 1 || month > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %q", args[1])
	}

	events := newEngine().MonthEvents(year, time.Month(month))
	fmt.Println(renderCalendar(year, time.Month(month), events))
	return nil
}

func newEngine() astro.Service {
	return astro.NewService(astro.Config{}, meeus.New(), cliLogger())
}

func cliLogger() *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	return slog.New(handler)
}

func resolveInstant(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return util.NowUTC(), nil
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("--at must be an RFC 3339 timestamp, got %q", raw)
	}
	return at.UTC(), nil
}
