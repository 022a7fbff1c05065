package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"game-database/feature/schema"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the game database schema",
	Long:  `Checks that the servers, charinfo and friends tables have the columns the game database reads.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.close("schema")

		svc := schema.NewService(rt.manager, rt.mu, rt.logger)
		report, err := svc.Check(cmd.Context())
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}

		if !report.Matched {
			rt.logger.Warn("Schema does not match", zap.Int("errors", len(report.Errors)))
			return fmt.Errorf("schema mismatch")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(schemaCmd)
}
