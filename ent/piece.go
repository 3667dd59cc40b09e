// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jkeller/etude/ent/piece"
)

// Piece is the model entity for the Piece schema.
type Piece struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Opaque UUID identifying the piece
	PieceID string `json:"piece_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Artist holds the value of the "artist" field.
	Artist string `json:"artist,omitempty"`
	// YoutubeURL holds the value of the "youtube_url" field.
	YoutubeURL string `json:"youtube_url,omitempty"`
	// One of the ordered difficulty labels; empty = unknown
	Difficulty string `json:"difficulty,omitempty"`
	// Milestone tags earned so far, at most 8
	Milestones []string `json:"milestones,omitempty"`
	// Timestamp of the most recent practice activity
	LastPracticedAt *time.Time `json:"last_practiced_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Piece) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case piece.FieldMilestones:
			values[i] = new([]byte)
		case piece.FieldID:
			values[i] = new(sql.NullInt64)
		case piece.FieldPieceID, piece.FieldTitle, piece.FieldArtist, piece.FieldYoutubeURL, piece.FieldDifficulty:
			values[i] = new(sql.NullString)
		case piece.FieldLastPracticedAt, piece.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Piece fields.
func (_m *Piece) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case piece.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case piece.FieldPieceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field piece_id", values[i])
			} else if value.Valid {
				_m.PieceID = value.String
			}
		case piece.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case piece.FieldArtist:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field artist", values[i])
			} else if value.Valid {
				_m.Artist = value.String
			}
		case piece.FieldYoutubeURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field youtube_url", values[i])
			} else if value.Valid {
				_m.YoutubeURL = value.String
			}
		case piece.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case piece.FieldMilestones:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field milestones", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Milestones); err != nil {
					return fmt.Errorf("unmarshal field milestones: %w", err)
				}
			}
		case piece.FieldLastPracticedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_practiced_at", values[i])
			} else if value.Valid {
				_m.LastPracticedAt = new(time.Time)
				*_m.LastPracticedAt = value.Time
			}
		case piece.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Piece.
// This includes values selected through modifiers, order, etc.
func (_m *Piece) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Piece.
// Note that you need to call Piece.Unwrap() before calling this method if this Piece
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Piece) Update() *PieceUpdateOne {
	return NewPieceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Piece entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Piece) Unwrap() *Piece {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Piece is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Piece) String() string {
	var builder strings.Builder
	builder.WriteString("Piece(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("piece_id=")
	builder.WriteString(_m.PieceID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("artist=")
	builder.WriteString(_m.Artist)
	builder.WriteString(", ")
	builder.WriteString("youtube_url=")
	builder.WriteString(_m.YoutubeURL)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("milestones=")
	builder.WriteString(fmt.Sprintf("%v", _m.Milestones))
	builder.WriteString(", ")
	if v := _m.LastPracticedAt; v != nil {
		builder.WriteString("last_practiced_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Pieces is a parsable slice of Piece.
type Pieces []*Piece
