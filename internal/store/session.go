package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jkeller/etude/ent"
	entpiece "github.com/jkeller/etude/ent/piece"
	entsession "github.com/jkeller/etude/ent/practicesession"
	"github.com/jkeller/etude/internal/practice"
)

type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Record(ctx context.Context, pieceID string, endedAt time.Time, durationSecs int) error {
	// Any practice at all counts as touching the piece, even activity
	// too short to keep as a session.
	n, err := r.client.Piece.Update().
		Where(entpiece.PieceID(pieceID)).
		SetLastPracticedAt(endedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("bump last practiced: %w", err)
	}
	if n == 0 {
		return ErrPieceNotFound
	}

	if durationSecs < practice.MinSessionSecs {
		return nil
	}

	_, err = r.client.PracticeSession.Create().
		SetPieceID(pieceID).
		SetTimestamp(endedAt).
		SetDurationSecs(durationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Restore(ctx context.Context, pieceID string, timestamp time.Time, durationSecs int) error {
	_, err := r.client.PracticeSession.Create().
		SetPieceID(pieceID).
		SetTimestamp(timestamp).
		SetDurationSecs(durationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Log(ctx context.Context) (practice.Log, error) {
	rows, err := r.client.PracticeSession.Query().
		Order(ent.Asc(entsession.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	log := make(practice.Log)
	for _, row := range rows {
		log[row.PieceID] = append(log[row.PieceID], fromEntSession(row))
	}
	return log, nil
}

func (r *sessionRepo) ForPiece(ctx context.Context, pieceID string) ([]practice.Session, error) {
	rows, err := r.client.PracticeSession.Query().
		Where(entsession.PieceID(pieceID)).
		Order(ent.Asc(entsession.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions for %s: %w", pieceID, err)
	}

	sessions := make([]practice.Session, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, fromEntSession(row))
	}
	return sessions, nil
}

func (r *sessionRepo) Delete(ctx context.Context, pieceID string, timestamp time.Time) error {
	n, err := r.client.PracticeSession.Delete().
		Where(
			entsession.PieceID(pieceID),
			entsession.Timestamp(timestamp),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *sessionRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.client.PracticeSession.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete sessions: %w", err)
	}
	return nil
}

func fromEntSession(row *ent.PracticeSession) practice.Session {
	return practice.Session{
		PieceID:   row.PieceID,
		Timestamp: row.Timestamp,
		Duration:  row.DurationSecs,
	}
}
