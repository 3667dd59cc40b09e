package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeSession is one timed practice interval logged against a
// piece. Sessions are append-only; corrections are delete plus re-add,
// keyed by (piece_id, timestamp).
type PracticeSession struct {
	ent.Schema
}

func (PracticeSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("piece_id").
			NotEmpty().
			Immutable().
			Comment("Piece the session was logged against; not a hard FK, sessions may outlive their piece"),
		field.Time("timestamp").
			Immutable().
			Comment("When the session ended"),
		field.Int("duration_secs").
			NonNegative().
			Immutable(),
	}
}

func (PracticeSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("piece_id"),
		index.Fields("timestamp"),
		index.Fields("piece_id", "timestamp"),
	}
}
