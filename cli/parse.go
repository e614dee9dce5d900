package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/baselinegen/baselinegen/engine/parser"
	"github.com/baselinegen/baselinegen/engine/schema"
	"github.com/baselinegen/baselinegen/pkg/logger"
	"github.com/baselinegen/baselinegen/pkg/ruleio"
)

func ParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse rule sentences into a rule schema file",
		RunE:  runParse,
	}

	cmd.Flags().StringP("input", "i", "", "Rule text file, one sentence per line (required)")
	cmd.Flags().StringP("output", "o", "", "Schema file to write (required)")
	cmd.Flags().StringP("category", "c", "", "Category assigned to parsed rules")
	cmd.Flags().String("schema-version", "1.0", "Version recorded in the schema")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runParse(cmd *cobra.Command, _ []string) error {
	log := logger.FromContext(cmd.Context())

	input, err := cmd.Flags().GetString("input")
	if err != nil {
		return err
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	category, err := cmd.Flags().GetString("category")
	if err != nil {
		return err
	}
	version, err := cmd.Flags().GetString("schema-version")
	if err != nil {
		return err
	}

	text, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", input, err)
	}

	rules, err := parser.New().ParseRulesFromText(string(text), category)
	if err != nil {
		return fmt.Errorf("failed to parse rules from %s: %w", input, err)
	}
	if len(rules) == 0 {
		return fmt.Errorf("no rules found in %s", input)
	}

	s := schema.New(version, rules)
	if err := ruleio.SaveSchema(output, s); err != nil {
		return err
	}

	log.Info("schema written", "rules", len(rules), "version", version, "path", output)
	return nil
}
