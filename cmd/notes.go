package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chris-regnier/protocolctl/internal/editor"
	"github.com/chris-regnier/protocolctl/internal/logstore"
	"github.com/spf13/cobra"
)

var notesDate string

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Edit the day's breakfast notes in your editor",
	Long: `Open the breakfast notes for a day in $EDITOR (or the editor config key).

Saving an empty or unchanged file leaves the notes as they were.
Use 'protocolctl check breakfast --notes ""' to clear them.`,
	Example: `  protocolctl notes
  protocolctl notes --date 2026-10-18`,
	PostRunE: invalidateCachePostRun,
	RunE: func(cmd *cobra.Command, args []string) error {
		ed := editor.New(editor.ResolveEditor(appConfig.Editor))
		err := notesRun(os.Stdout, ed, notesDate)
		if isEditorError(err) {
			fmt.Fprintln(os.Stderr, "Editor error:", err)
			os.Exit(3)
		}
		return exitOnError(err)
	},
}

type editorError struct{ err error }

func (e editorError) Error() string { return e.err.Error() }
func (e editorError) Unwrap() error { return e.err }

func isEditorError(err error) bool {
	var e editorError
	return errors.As(err, &e)
}

func notesRun(w io.Writer, ed *editor.Session, date string) error {
	date = resolveDate(date)
	current, _, err := svc.Resolve(date)
	if err != nil {
		return err
	}

	header := fmt.Sprintf("Breakfast notes for %s\nLines starting with # are ignored.", date)
	text, changed, err := ed.Edit(header, current.TyrosineBreakfastNotes)
	if err != nil {
		return editorError{err}
	}
	if !changed {
		fmt.Fprintln(w, "No changes.")
		return nil
	}

	logs, err := svc.Update(date, logstore.FieldBreakfastNotes, text)
	if err != nil {
		return err
	}
	return reportSaved(w, logs, date, "breakfast notes")
}

func init() {
	notesCmd.Flags().StringVar(&notesDate, "date", "", "day to edit (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(notesCmd)
}
