package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jkeller/etude/internal/heatmap"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the practice heat map",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		full, _ := cmd.Flags().GetBool("all")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		log, err := st.SessionRepo().Log(cmd.Context())
		if err != nil {
			return err
		}

		rng := heatmap.Range{TrailingDays: days}
		if full {
			rng = heatmap.Range{SinceFirstSession: true}
		}
		buckets := heatmap.Build(log, rng, time.Now())
		weeks := heatmap.Weeks(buckets)

		// One column per week, Sunday on top.
		glyphs := []string{"·", "░", "▒", "▓", "█"}
		for row := 0; row < 7; row++ {
			var b strings.Builder
			for _, week := range weeks {
				if row >= len(week) || week[row].Placeholder {
					b.WriteString("  ")
					continue
				}
				b.WriteString(glyphs[week[row].Level] + " ")
			}
			fmt.Println(b.String())
		}

		fmt.Printf("\n%s  (levels: %s)\n", rangeLabel(rng), strings.Join(glyphs, " "))
		return nil
	},
}

func rangeLabel(rng heatmap.Range) string {
	if rng.SinceFirstSession {
		return "since first session"
	}
	return fmt.Sprintf("last %d days", rng.TrailingDays)
}

func init() {
	calendarCmd.Flags().Int("days", 365, "Number of trailing days to show")
	calendarCmd.Flags().Bool("all", false, "Show everything since the first session")
}
