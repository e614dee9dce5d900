package logger

import (
	"fmt"

	"github.com/spf13/cobra"
)

// SetupDefault configures the process-wide fallback logger from CLI settings.
func SetupDefault(level string, json bool) {
	SetDefault(NewLogger(&Config{
		Level:      LogLevel(level),
		JSON:       json,
		TimeFormat: "15:04:05",
	}))
}

// ConfigFromCommand reads the logging flags registered on the root command.
func ConfigFromCommand(cmd *cobra.Command) (string, bool, error) {
	level, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return "", false, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	json, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		return "", false, fmt.Errorf("failed to get log-json flag: %w", err)
	}
	return level, json, nil
}
