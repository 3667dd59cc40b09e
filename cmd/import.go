package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jkeller/etude/internal/backup"
	"github.com/jkeller/etude/internal/youtube"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the library with a JSON backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read backup: %w", err)
		}

		sum, err := backup.Peek(raw)
		if err != nil {
			return err
		}
		fmt.Printf("Backup contains %d pieces and %d sessions (%s practiced).\n",
			sum.PieceCount, sum.SessionCount, youtube.FormatDuration(sum.TotalSecs))
		if sum.ExportDate != "" {
			fmt.Println("Exported", sum.ExportDate)
		}

		if !force {
			fmt.Print("This will replace all current data. Continue? [y/N] ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := backup.Import(cmd.Context(), st, raw); err != nil {
			return err
		}
		fmt.Println("Import complete.")
		return nil
	},
}

func init() {
	importCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
