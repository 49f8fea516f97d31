package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/erasmus-survival/erasmusbot/internal/models"
)

var importCmd = &cobra.Command{
	Use:   "import <backup.json>",
	Short: "Restore collections from a JSON backup",
	Long: "Restore collections from a JSON backup. Only the sections present in\n" +
		"the file are replaced; anything missing keeps its current data.",
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}

	// Decode before touching the store; a corrupt file is rejected whole.
	var data models.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("invalid backup file: %w", err)
	}

	svc, db, _, l, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := svc.ImportSnapshot(cmd.Context(), data); err != nil {
		return fmt.Errorf("apply backup: %w", err)
	}

	l.Infof("Backup %s imported", args[0])
	return nil
}
