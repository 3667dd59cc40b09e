// Code generated by ent, DO NOT EDIT.

package piece

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the piece type in the database.
	Label = "piece"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPieceID holds the string denoting the piece_id field in the database.
	FieldPieceID = "piece_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldArtist holds the string denoting the artist field in the database.
	FieldArtist = "artist"
	// FieldYoutubeURL holds the string denoting the youtube_url field in the database.
	FieldYoutubeURL = "youtube_url"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldMilestones holds the string denoting the milestones field in the database.
	FieldMilestones = "milestones"
	// FieldLastPracticedAt holds the string denoting the last_practiced_at field in the database.
	FieldLastPracticedAt = "last_practiced_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the piece in the database.
	Table = "pieces"
)

// Columns holds all SQL columns for piece fields.
var Columns = []string{
	FieldID,
	FieldPieceID,
	FieldTitle,
	FieldArtist,
	FieldYoutubeURL,
	FieldDifficulty,
	FieldMilestones,
	FieldLastPracticedAt,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PieceIDValidator is a validator for the "piece_id" field. It is called by the builders before save.
	PieceIDValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// ArtistValidator is a validator for the "artist" field. It is called by the builders before save.
	ArtistValidator func(string) error
	// DefaultYoutubeURL holds the default value on creation for the "youtube_url" field.
	DefaultYoutubeURL string
	// DefaultDifficulty holds the default value on creation for the "difficulty" field.
	DefaultDifficulty string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Piece queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPieceID orders the results by the piece_id field.
func ByPieceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPieceID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByArtist orders the results by the artist field.
func ByArtist(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArtist, opts...).ToFunc()
}

// ByYoutubeURL orders the results by the youtube_url field.
func ByYoutubeURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYoutubeURL, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByLastPracticedAt orders the results by the last_practiced_at field.
func ByLastPracticedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPracticedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
