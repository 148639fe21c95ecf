package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"link-analytics-service/internal/analytics/core/aggregator"
	"link-analytics-service/internal/analytics/core/domain"

	goflags "github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runSummarize(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var err error
	out := captureOutput(t, func() {
		err = RunWithArgs("test", args)
	})
	return out, err
}

func TestSummarize_JSON(t *testing.T) {
	path := writeInput(t, sampleClicks)

	out, err := runSummarize(t, "--json", "summarize", "--file", path, "--window", "1d", "--now", sampleNow, "--tz", "UTC")
	require.NoError(t, err)

	var rep report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))

	assert.Equal(t, "1d", rep.Window)
	assert.Equal(t, 4, rep.Clicks)

	s := rep.Summary
	assert.Equal(t, 3, s.TotalClicks)
	assert.Equal(t, domain.Counts{"USA": 2, aggregator.Unknown: 1}, s.ClicksByCountry)
	assert.Equal(t, domain.Counts{"mobile": 2, "desktop": 1}, s.ClicksByDevice)
	assert.Equal(t, domain.Counts{"Android": 1, "Windows": 1, aggregator.Unknown: 1}, s.ClicksByOS)
	assert.Equal(t, domain.Counts{aggregator.Unknown: 3}, s.ClicksByContinent)
	assert.Equal(t, domain.HourCounts{2: 1, 10: 1, 11: 1}, s.ClicksByTime)
}

func TestSummarize_AllIgnoresWindow(t *testing.T) {
	path := writeInput(t, sampleClicks)

	out, err := runSummarize(t, "--json", "summarize", "--file", path, "--all", "--window", "bogus", "--tz", "UTC")
	require.NoError(t, err)

	var rep report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))

	assert.Equal(t, "all", rep.Window)
	assert.Equal(t, 4, rep.Summary.TotalClicks)
	assert.Equal(t, 1, rep.Summary.ClicksByCountry["India"])
	assert.Equal(t, 1, rep.Summary.ClicksByDevice["tablet"])
}

func TestSummarize_Envelope(t *testing.T) {
	path := writeInput(t, `{"success": true, "data": {"clicks": `+sampleClicks+`}}`)

	out, err := runSummarize(t, "--json", "summarize", "--file", path, "--window", "30d", "--now", sampleNow, "--tz", "UTC")
	require.NoError(t, err)

	var rep report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 4, rep.Summary.TotalClicks)
}

func TestSummarize_YAML(t *testing.T) {
	path := writeInput(t, `{"clicks": `+sampleClicks+`}`)

	out, err := runSummarize(t, "summarize", "--yaml", "--file", path, "--window", "1h", "--now", sampleNow, "--tz", "UTC")
	require.NoError(t, err)

	var got struct {
		Window  string `yaml:"window"`
		Summary struct {
			TotalClicks     int            `yaml:"totalClicks"`
			ClicksByCountry map[string]int `yaml:"clicksByCountry"`
		} `yaml:"summary"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))

	assert.Equal(t, "1h", got.Window)
	assert.Equal(t, 1, got.Summary.TotalClicks)
	assert.Equal(t, map[string]int{"USA": 1}, got.Summary.ClicksByCountry)
}

func TestSummarize_TextReport(t *testing.T) {
	path := writeInput(t, sampleClicks)

	out, err := runSummarize(t, "summarize", "--file", path, "--window", "1d", "--now", sampleNow, "--tz", "UTC")
	require.NoError(t, err)

	assert.Contains(t, out, "Clicks (1d): 3 of 4")
	assert.Contains(t, out, "By country:")
	assert.Contains(t, out, "By os:")
	assert.Contains(t, out, "By hour:")
	assert.Contains(t, out, "  11:00       1")

	// USA (2) ranks above Unknown (1)
	country := out[strings.Index(out, "By country:"):]
	assert.Less(t, strings.Index(country, "USA"), strings.Index(country, aggregator.Unknown))
}

func TestSummarize_FieldAndTop(t *testing.T) {
	path := writeInput(t, sampleClicks)

	out, err := runSummarize(t, "summarize", "--file", path, "--all", "--field", "device", "--top", "1", "--tz", "UTC")
	require.NoError(t, err)

	assert.Contains(t, out, "By device:")
	assert.Contains(t, out, "mobile")
	assert.NotContains(t, out, "tablet")
	assert.NotContains(t, out, "By country:")
	assert.NotContains(t, out, "By hour:")
}

func TestSummarize_Errors(t *testing.T) {
	path := writeInput(t, sampleClicks)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown window", []string{"summarize", "--file", path, "--window", "2w"}, `unknown window "2w"`},
		{"bad now", []string{"summarize", "--file", path, "--now", "yesterday"}, "--now"},
		{"bad tz", []string{"summarize", "--file", path, "--tz", "Mars/Base"}, "--tz"},
		{"bad field", []string{"summarize", "--file", path, "--field", "referrer"}, `unknown field "referrer"`},
		{"missing file", []string{"summarize", "--file", path + ".missing"}, "open input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser, _, _ := buildParser("test")
			parser.Options &^= goflags.PrintErrors

			_, err := parser.ParseArgs(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReadClicks(t *testing.T) {
	t.Run("array", func(t *testing.T) {
		events, err := readClicks(strings.NewReader(`[{"createdAt": 1000, "browser": "Safari"}]`))
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, int64(1000), events[0].CreatedAt.UnixMilli())
		assert.Equal(t, domain.Some("Safari"), events[0].Browser)
	})

	t.Run("empty list", func(t *testing.T) {
		events, err := readClicks(strings.NewReader(`{"clicks": []}`))
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("not a list", func(t *testing.T) {
		_, err := readClicks(strings.NewReader(`{"urls": []}`))
		assert.ErrorIs(t, err, errNoClicks)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := readClicks(strings.NewReader("  "))
		assert.ErrorIs(t, err, errNoClicks)
	})

	t.Run("missing createdAt", func(t *testing.T) {
		_, err := readClicks(strings.NewReader(`[{"createdAt": 1}, {"country": "USA"}]`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "click 1: missing createdAt")
	})

	t.Run("bad createdAt", func(t *testing.T) {
		_, err := readClicks(strings.NewReader(`[{"createdAt": true}]`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode clicks")
		assert.Contains(t, err.Error(), "unix ms or RFC 3339")
	})
}
