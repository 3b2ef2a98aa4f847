package cmd

import (
	"fmt"
	"io"

	"github.com/chris-regnier/protocolctl/internal/daily"
	"github.com/chris-regnier/protocolctl/internal/logstore"
	"github.com/chris-regnier/protocolctl/internal/ui"
)

// reportSaved writes the result of a write command: the day's summary as JSON,
// or a confirmation line followed by any alerts the write raised.
func reportSaved(w io.Writer, logs logstore.Logs, date, what string) error {
	s, err := daily.Summarize(logs, date)
	if err != nil {
		return err
	}
	if jsonOutput {
		return ui.FormatJSON(w, s)
	}
	ui.FormatSaved(w, date, what)
	for _, a := range ui.Alerts(s) {
		fmt.Fprintln(w, "!", a)
	}
	return nil
}

func resolveDate(date string) string {
	if date == "" {
		return svc.Today()
	}
	return date
}
