package cli

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/baselinegen/baselinegen/pkg/logger"
)

const defaultEnvFile = ".env"

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "baselinegen",
		Short: "Parse compliance rules and generate building baselines",
		Long: "baselinegen turns human-authored compliance statements into a " +
			"versioned rule schema and evaluates that schema against building " +
			"specifications to produce baseline property profiles.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Missing .env is fine; flags and process env still apply.
			_ = godotenv.Load(defaultEnvFile)
			level, json, err := logger.ConfigFromCommand(cmd)
			if err != nil {
				return err
			}
			if env := os.Getenv("BASELINEGEN_LOG_LEVEL"); env != "" && !cmd.Flags().Changed("log-level") {
				level = env
			}
			logger.SetupDefault(level, json)
			return nil
		},
	}

	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")

	root.AddCommand(
		ParseCmd(),
		GenerateCmd(),
		ValidateCmd(),
	)

	return root
}
