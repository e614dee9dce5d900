package cli

import (
	"github.com/spf13/cobra"

	"github.com/baselinegen/baselinegen/engine/baseline"
	"github.com/baselinegen/baselinegen/pkg/ruleio"
)

func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a baseline from a rule schema and a building spec",
		RunE:  runGenerate,
	}

	cmd.Flags().StringP("rules", "r", "", "Rule schema file (required)")
	cmd.Flags().StringP("building", "b", "", "Building spec file (required)")
	cmd.Flags().StringP("format", "f", OutputFormatPretty, "Output format (pretty, json)")
	_ = cmd.MarkFlagRequired("rules")
	_ = cmd.MarkFlagRequired("building")

	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	rulesPath, err := cmd.Flags().GetString("rules")
	if err != nil {
		return err
	}
	buildingPath, err := cmd.Flags().GetString("building")
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	s, err := ruleio.LoadSchema(rulesPath)
	if err != nil {
		return err
	}
	spec, err := ruleio.LoadBuildingSpec(buildingPath)
	if err != nil {
		return err
	}

	result := baseline.NewEngine(s).GenerateBaseline(cmd.Context(), spec)
	return writeBaselineReport(cmd.OutOrStdout(), format, s, result)
}
