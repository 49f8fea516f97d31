package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe all data back to the seed defaults",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagYes, "yes", false, "Skip the confirmation check")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	if !flagYes {
		return fmt.Errorf("refusing to wipe data without --yes; consider 'erasmusbot export' first")
	}

	svc, db, _, l, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := svc.ResetAll(cmd.Context()); err != nil {
		return fmt.Errorf("reset data: %w", err)
	}

	l.Info("All data reset to defaults")
	return nil
}
