package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jkeller/etude/internal/youtube"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent practice sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		log, err := st.SessionRepo().Log(ctx)
		if err != nil {
			return err
		}
		pieces, err := st.PieceRepo().List(ctx)
		if err != nil {
			return err
		}

		titles := make(map[string]string, len(pieces))
		for _, p := range pieces {
			titles[p.ID] = p.Title
		}

		sessions := log.All()
		if len(sessions) == 0 {
			fmt.Println("No sessions logged yet.")
			return nil
		}
		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].Timestamp.After(sessions[j].Timestamp)
		})
		if limit > 0 && len(sessions) > limit {
			sessions = sessions[:limit]
		}

		for _, sess := range sessions {
			title := titles[sess.PieceID]
			if title == "" {
				title = "(deleted piece)"
			}
			fmt.Printf("%s  %-32s %s\n",
				sess.Timestamp.Local().Format("2006-01-02 15:04"),
				title, youtube.FormatDuration(sess.Duration))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of sessions to show")
}
