package cli

import (
	"fmt"

	"link-analytics-service/internal/analytics/core/domain"
)

type windowJSON struct {
	Label  string `json:"label"`
	Millis int64  `json:"millis"`
}

// Execute implements the go-flags Commander interface for WindowsCommand.
func (c *WindowsCommand) Execute(args []string) error {
	if c.globals != nil && c.globals.JSON {
		out := make([]windowJSON, 0, len(domain.Windows))
		for _, w := range domain.Windows {
			out = append(out, windowJSON{Label: string(w), Millis: w.Millis()})
		}
		return printJSON(out)
	}

	for _, w := range domain.Windows {
		marker := ""
		if w == domain.DefaultWindow {
			marker = "  (default)"
		}
		fmt.Printf("%-4s %s%s\n", w, w.Duration(), marker)
	}
	return nil
}
