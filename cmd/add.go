package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jkeller/etude/internal/piece"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a piece to the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		artist, _ := cmd.Flags().GetString("artist")
		url, _ := cmd.Flags().GetString("url")
		difficulty, _ := cmd.Flags().GetString("difficulty")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		p := piece.Piece{
			ID:         uuid.NewString(),
			Title:      title,
			Artist:     artist,
			YouTubeURL: url,
			Difficulty: piece.ParseDifficulty(difficulty),
			CreatedAt:  time.Now(),
		}

		err = st.PieceRepo().Create(cmd.Context(), p)
		switch {
		case errors.Is(err, piece.ErrDuplicateVideo):
			return fmt.Errorf("that video is already in the library")
		case errors.Is(err, piece.ErrInvalidPiece):
			return fmt.Errorf("--title and --artist are required")
		case err != nil:
			return err
		}

		fmt.Printf("Added %q by %s\n", p.Title, p.Artist)
		return nil
	},
}

func init() {
	addCmd.Flags().String("title", "", "Piece title")
	addCmd.Flags().String("artist", "", "Artist or composer")
	addCmd.Flags().String("url", "", "YouTube URL")
	addCmd.Flags().String("difficulty", "", "Difficulty (Free, Easy, Medium, Hard, Ultrahard)")
}
