package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jkeller/etude/internal/backup"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the library to a JSON backup",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		now := time.Now()
		raw, err := backup.Export(cmd.Context(), st, version, now)
		if err != nil {
			return err
		}

		path := backup.Filename(now)
		if len(args) == 1 {
			path = args[0]
		}
		if path == "-" {
			_, err = os.Stdout.Write(raw)
			return err
		}

		if err := os.WriteFile(path, raw, 0o644); err != nil {
			return fmt.Errorf("write backup: %w", err)
		}
		fmt.Println("Exported to", path)
		return nil
	},
}
