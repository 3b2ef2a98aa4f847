package cmd

import (
	"github.com/chris-regnier/protocolctl/internal/shell"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// invalidateCachePostRun is a PostRunE hook that drops the prompt cache after
// commands that write logs (check, train, sleep, cognitive, delete, seed).
func invalidateCachePostRun(cmd *cobra.Command, args []string) error {
	if appConfig == nil {
		return nil
	}
	if err := shell.InvalidateCache(appConfig.DataDir); err != nil {
		logrus.WithError(err).Debug("could not invalidate prompt cache")
	}
	return nil
}
