package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"link-analytics-service/internal/analytics/core/aggregator"
	"link-analytics-service/internal/analytics/core/domain"
	"link-analytics-service/internal/logger"

	"gopkg.in/yaml.v3"
)

// report is the machine-readable output of summarize.
type report struct {
	Window  string         `json:"window" yaml:"window"`
	Now     time.Time      `json:"now" yaml:"now"`
	Clicks  int            `json:"clicksRead" yaml:"clicksRead"`
	Summary domain.Summary `json:"summary" yaml:"summary"`
}

// Execute implements the go-flags Commander interface for SummarizeCommand.
func (c *SummarizeCommand) Execute(args []string) error {
	fields, err := c.fields()
	if err != nil {
		return err
	}

	window := domain.Window(c.Window)
	if !c.All && !window.Valid() {
		return fmt.Errorf("unknown window %q (see `statsctl windows`)", c.Window)
	}

	now := time.Now()
	if c.Now != "" {
		now, err = time.Parse(time.RFC3339, c.Now)
		if err != nil {
			return fmt.Errorf("--now: %w", err)
		}
	}

	loc, err := time.LoadLocation(c.TZ)
	if err != nil {
		return fmt.Errorf("--tz: %w", err)
	}

	in, err := openInput(c.File)
	if err != nil {
		return err
	}
	defer in.Close()

	events, err := readClicks(in)
	if err != nil {
		return err
	}

	label := string(window)
	selected := events
	if c.All {
		label = "all"
	} else {
		selected = aggregator.FilterByWindow(events, window, now)
	}

	logger.Debug("clicks read", "file", c.File, "read", len(events), "selected", len(selected), "window", label)

	rep := report{
		Window:  label,
		Now:     now,
		Clicks:  len(events),
		Summary: aggregator.ComputeSummaryIn(selected, loc),
	}

	switch {
	case c.globals != nil && c.globals.JSON:
		return printJSON(rep)
	case c.YAML:
		return printYAML(rep)
	default:
		c.printText(rep, fields)
		return nil
	}
}

func (c *SummarizeCommand) fields() ([]domain.Field, error) {
	if len(c.Field) == 0 {
		return domain.Fields, nil
	}
	out := make([]domain.Field, 0, len(c.Field))
	for _, name := range c.Field {
		f, err := domain.ParseField(name)
		if err != nil {
			return nil, fmt.Errorf("--field: %w", err)
		}
		out = append(out, f)
	}
	return out, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printYAML(v any) error {
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (c *SummarizeCommand) printText(rep report, fields []domain.Field) {
	s := rep.Summary

	fmt.Printf("Clicks (%s): %d of %d\n", rep.Window, s.TotalClicks, rep.Clicks)

	for _, f := range fields {
		buckets := s.ByField(f).Ranked()
		if c.Top > 0 && len(buckets) > c.Top {
			buckets = buckets[:c.Top]
		}

		fmt.Println()
		fmt.Printf("By %s:\n", f)
		if len(buckets) == 0 {
			fmt.Println("  (none)")
			continue
		}
		for _, b := range buckets {
			fmt.Printf("  %-24s %6d  %5.1f%%\n", b.Label, b.Count, percent(b.Count, s.TotalClicks))
		}
	}

	if len(c.Field) > 0 {
		return
	}

	fmt.Println()
	fmt.Println("By hour:")
	if len(s.ClicksByTime) == 0 {
		fmt.Println("  (none)")
		return
	}
	for h := 0; h < 24; h++ {
		if n, ok := s.ClicksByTime[h]; ok {
			fmt.Printf("  %02d:00  %6d\n", h, n)
		}
	}
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
