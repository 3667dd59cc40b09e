package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jkeller/etude/internal/milestone"
	"github.com/jkeller/etude/internal/piece"
	"github.com/jkeller/etude/internal/youtube"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List pieces in the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		sortFlag, _ := cmd.Flags().GetString("sort")
		reverse, _ := cmd.Flags().GetBool("reverse")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		status, _ := cmd.Flags().GetString("status")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		pieces, err := st.PieceRepo().List(ctx)
		if err != nil {
			return err
		}
		log, err := st.SessionRepo().Log(ctx)
		if err != nil {
			return err
		}

		opts := piece.QueryOpts{
			Search:  search,
			Sort:    piece.ParseSortMode(sortFlag),
			Reverse: reverse,
		}
		if d := piece.ParseDifficulty(difficulty); d != piece.DifficultyUnknown {
			opts.Difficulties = []piece.Difficulty{d}
		}
		if status != "" {
			opts.Statuses = []milestone.Status{milestone.ParseStatus(status)}
		}

		result := piece.Query(pieces, log, opts, time.Now())
		if len(result) == 0 {
			fmt.Println("No pieces match.")
			return nil
		}

		for _, p := range result {
			total := 0
			for _, sess := range log.ForPiece(p.ID) {
				total += sess.Duration
			}
			status := p.Status()
			fmt.Printf("%s %-32s %-20s %-10s %s\n",
				status.Icon(), p.Title, p.Artist,
				p.Difficulty.DisplayName(), youtube.FormatDuration(total))
		}
		return nil
	},
}

func init() {
	listCmd.Flags().String("search", "", "Filter by title or artist substring")
	listCmd.Flags().String("sort", "default", "Sort mode (default, trending, random, lastPracticed, progress, difficulty, title, practiceTime)")
	listCmd.Flags().Bool("reverse", false, "Reverse the sort order")
	listCmd.Flags().String("difficulty", "", "Filter by difficulty")
	listCmd.Flags().String("status", "", "Filter by progress status")
}
