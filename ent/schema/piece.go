package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Piece is a catalogued musical work. Derived values (status,
// thumbnail) are intentionally absent: they are recomputed from
// milestones and youtube_url on read.
type Piece struct {
	ent.Schema
}

func (Piece) Fields() []ent.Field {
	return []ent.Field{
		field.String("piece_id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("Opaque UUID identifying the piece"),
		field.String("title").
			NotEmpty(),
		field.String("artist").
			NotEmpty(),
		field.String("youtube_url").
			Default(""),
		field.String("difficulty").
			Default("").
			Comment("One of the ordered difficulty labels; empty = unknown"),
		field.JSON("milestones", []string{}).
			Optional().
			Comment("Milestone tags earned so far, at most 8"),
		field.Time("last_practiced_at").
			Optional().
			Nillable().
			Comment("Timestamp of the most recent practice activity"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Piece) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("piece_id"),
		index.Fields("created_at"),
	}
}
