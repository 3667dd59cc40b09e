package store

import (
	"context"
	"fmt"

	"github.com/jkeller/etude/ent"
	entpiece "github.com/jkeller/etude/ent/piece"
	"github.com/jkeller/etude/internal/milestone"
	"github.com/jkeller/etude/internal/piece"
)

type pieceRepo struct {
	client *ent.Client
}

func (r *pieceRepo) List(ctx context.Context) ([]piece.Piece, error) {
	rows, err := r.client.Piece.Query().
		Order(ent.Desc(entpiece.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pieces: %w", err)
	}

	pieces := make([]piece.Piece, 0, len(rows))
	for _, row := range rows {
		pieces = append(pieces, fromEntPiece(row))
	}
	return pieces, nil
}

func (r *pieceRepo) Get(ctx context.Context, id string) (piece.Piece, error) {
	row, err := r.client.Piece.Query().
		Where(entpiece.PieceID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return piece.Piece{}, ErrPieceNotFound
		}
		return piece.Piece{}, fmt.Errorf("get piece %s: %w", id, err)
	}
	return fromEntPiece(row), nil
}

func (r *pieceRepo) Create(ctx context.Context, p piece.Piece) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := r.checkDuplicate(ctx, p.YouTubeURL, p.ID); err != nil {
		return err
	}

	builder := r.client.Piece.Create().
		SetPieceID(p.ID).
		SetTitle(p.Title).
		SetArtist(p.Artist).
		SetYoutubeURL(p.YouTubeURL).
		SetDifficulty(string(p.Difficulty)).
		SetMilestones(milestoneStrings(p.Milestones)).
		SetNillableLastPracticedAt(p.LastPracticedAt)

	if !p.CreatedAt.IsZero() {
		builder = builder.SetCreatedAt(p.CreatedAt)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("create piece: %w", err)
	}
	return nil
}

func (r *pieceRepo) Update(ctx context.Context, p piece.Piece) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := r.checkDuplicate(ctx, p.YouTubeURL, p.ID); err != nil {
		return err
	}

	row, err := r.client.Piece.Query().
		Where(entpiece.PieceID(p.ID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrPieceNotFound
		}
		return fmt.Errorf("find piece %s: %w", p.ID, err)
	}

	builder := row.Update().
		SetTitle(p.Title).
		SetArtist(p.Artist).
		SetYoutubeURL(p.YouTubeURL).
		SetDifficulty(string(p.Difficulty)).
		SetMilestones(milestoneStrings(p.Milestones))

	if p.LastPracticedAt != nil {
		builder = builder.SetLastPracticedAt(*p.LastPracticedAt)
	} else {
		builder = builder.ClearLastPracticedAt()
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("update piece %s: %w", p.ID, err)
	}
	return nil
}

func (r *pieceRepo) Delete(ctx context.Context, id string) error {
	n, err := r.client.Piece.Delete().
		Where(entpiece.PieceID(id)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete piece %s: %w", id, err)
	}
	if n == 0 {
		return ErrPieceNotFound
	}
	return nil
}

// checkDuplicate enforces the one-piece-per-video rule against the
// stored catalog. excludeID lets an edit keep its own video.
func (r *pieceRepo) checkDuplicate(ctx context.Context, url, excludeID string) error {
	existing, err := r.List(ctx)
	if err != nil {
		return err
	}
	if dup := piece.FindDuplicate(existing, url, excludeID); dup != nil {
		return fmt.Errorf("%q: %w", dup.Title, piece.ErrDuplicateVideo)
	}
	return nil
}

func fromEntPiece(row *ent.Piece) piece.Piece {
	return piece.Piece{
		ID:              row.PieceID,
		Title:           row.Title,
		Artist:          row.Artist,
		YouTubeURL:      row.YoutubeURL,
		Difficulty:      piece.Difficulty(row.Difficulty),
		Milestones:      milestonesFromStrings(row.Milestones),
		LastPracticedAt: row.LastPracticedAt,
		CreatedAt:       row.CreatedAt,
	}
}

func milestoneStrings(set []milestone.Milestone) []string {
	out := make([]string, 0, len(set))
	for _, m := range set {
		out = append(out, string(m))
	}
	return out
}

// milestonesFromStrings drops values no longer in the milestone
// vocabulary so old databases load cleanly.
func milestonesFromStrings(raw []string) []milestone.Milestone {
	out := make([]milestone.Milestone, 0, len(raw))
	for _, s := range raw {
		m := milestone.Milestone(s)
		if m.Valid() {
			out = append(out, m)
		}
	}
	return out
}
