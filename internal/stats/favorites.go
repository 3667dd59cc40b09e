package stats

import (
	"sort"

	"github.com/jkeller/etude/internal/piece"
	"github.com/jkeller/etude/internal/practice"
)

// Favorite is a piece ranked by accumulated practice time.
type Favorite struct {
	Piece        piece.Piece
	TotalSecs    int
	SessionCount int
}

// Favorites returns the top n pieces by total practice time. Pieces
// without any sessions are excluded. Ties break on piece id so the
// ranking is stable.
func Favorites(pieces []piece.Piece, log practice.Log, n int) []Favorite {
	var ranked []Favorite
	for _, p := range pieces {
		sessions := log.ForPiece(p.ID)
		if len(sessions) == 0 {
			continue
		}
		ranked = append(ranked, Favorite{
			Piece:        p,
			TotalSecs:    TotalTime(sessions),
			SessionCount: len(sessions),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalSecs != ranked[j].TotalSecs {
			return ranked[i].TotalSecs > ranked[j].TotalSecs
		}
		return ranked[i].Piece.ID < ranked[j].Piece.ID
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
