package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jkeller/etude/internal/stats"
	"github.com/jkeller/etude/internal/youtube"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		settings, err := st.SettingsRepo().Load(ctx)
		if err != nil {
			return err
		}

		agg := stats.Aggregate(pieces, log, time.Now())

		fmt.Printf("Total practice   %s\n", youtube.FormatDuration(agg.TotalSecs))
		fmt.Printf("Today            %s\n", youtube.FormatDuration(agg.TodaySecs))
		fmt.Printf("Last 7 days      %s\n", youtube.FormatDuration(agg.WeekSecs))
		fmt.Printf("Sessions         %d\n", agg.SessionCount)
		fmt.Printf("Average session  %s\n", youtube.FormatDuration(agg.AvgSessionSecs))
		fmt.Printf("Streak           %d days\n", agg.Streak)
		fmt.Printf("Pieces mastered  %d\n", agg.MasteredCount)

		next := stats.NextTimeMilestone(agg.TotalSecs)
		fmt.Printf("\nNext milestone: %dh (%s to go)\n",
			next.NextHours, youtube.FormatDuration(next.RemainingSecs))

		favorites := stats.Favorites(pieces, log, settings.FavoriteCount)
		if len(favorites) > 0 {
			fmt.Println("\nMost practiced:")
			for i, fav := range favorites {
				fmt.Printf("%d. %s — %s (%d sessions)\n",
					i+1, fav.Piece.Title,
					youtube.FormatDuration(fav.TotalSecs), fav.SessionCount)
			}
		}
		return nil
	},
}
