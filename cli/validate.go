package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baselinegen/baselinegen/engine/baseline"
	"github.com/baselinegen/baselinegen/pkg/ruleio"
)

func ValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a building spec against the fields a rule schema references",
		RunE:  runValidate,
	}

	cmd.Flags().StringP("rules", "r", "", "Rule schema file (required)")
	cmd.Flags().StringP("building", "b", "", "Building spec file (required)")
	cmd.Flags().StringP("format", "f", OutputFormatPretty, "Output format (pretty, json)")
	cmd.Flags().Bool("strict", false, "Exit non-zero when the spec has warnings")
	_ = cmd.MarkFlagRequired("rules")
	_ = cmd.MarkFlagRequired("building")

	return cmd
}

func runValidate(cmd *cobra.Command, _ []string) error {
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
	strict, err := cmd.Flags().GetBool("strict")
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

	validation := baseline.NewEngine(s).ValidateBuildingSpec(cmd.Context(), spec)
	if err := writeValidationReport(cmd.OutOrStdout(), format, validation); err != nil {
		return err
	}
	if !validation.Valid {
		return fmt.Errorf("building spec in %s is invalid", buildingPath)
	}
	if strict && len(validation.Warnings) > 0 {
		return fmt.Errorf("building spec in %s has %d warning(s)", buildingPath, len(validation.Warnings))
	}
	return nil
}
