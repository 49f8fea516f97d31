package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var flagOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a JSON backup of all data to a file",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file (default erasmus-backup-<date>.json)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	svc, db, _, l, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	snapshot := svc.ExportSnapshot()

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	output := flagOutput
	if output == "" {
		output = fmt.Sprintf("erasmus-backup-%s.json", time.Now().Format("2006-01-02"))
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}

	l.Infof("Backup written to %s", output)
	return nil
}
