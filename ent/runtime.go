// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/jkeller/etude/ent/piece"
	"github.com/jkeller/etude/ent/practicesession"
	"github.com/jkeller/etude/ent/schema"
	"github.com/jkeller/etude/ent/setting"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	pieceFields := schema.Piece{}.Fields()
	_ = pieceFields
	// pieceDescPieceID is the schema descriptor for piece_id field.
	pieceDescPieceID := pieceFields[0].Descriptor()
	// piece.PieceIDValidator is a validator for the "piece_id" field. It is called by the builders before save.
	piece.PieceIDValidator = pieceDescPieceID.Validators[0].(func(string) error)
	// pieceDescTitle is the schema descriptor for title field.
	pieceDescTitle := pieceFields[1].Descriptor()
	// piece.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	piece.TitleValidator = pieceDescTitle.Validators[0].(func(string) error)
	// pieceDescArtist is the schema descriptor for artist field.
	pieceDescArtist := pieceFields[2].Descriptor()
	// piece.ArtistValidator is a validator for the "artist" field. It is called by the builders before save.
	piece.ArtistValidator = pieceDescArtist.Validators[0].(func(string) error)
	// pieceDescYoutubeURL is the schema descriptor for youtube_url field.
	pieceDescYoutubeURL := pieceFields[3].Descriptor()
	// piece.DefaultYoutubeURL holds the default value on creation for the youtube_url field.
	piece.DefaultYoutubeURL = pieceDescYoutubeURL.Default.(string)
	// pieceDescDifficulty is the schema descriptor for difficulty field.
	pieceDescDifficulty := pieceFields[4].Descriptor()
	// piece.DefaultDifficulty holds the default value on creation for the difficulty field.
	piece.DefaultDifficulty = pieceDescDifficulty.Default.(string)
	// pieceDescCreatedAt is the schema descriptor for created_at field.
	pieceDescCreatedAt := pieceFields[7].Descriptor()
	// piece.DefaultCreatedAt holds the default value on creation for the created_at field.
	piece.DefaultCreatedAt = pieceDescCreatedAt.Default.(func() time.Time)
	practicesessionFields := schema.PracticeSession{}.Fields()
	_ = practicesessionFields
	// practicesessionDescPieceID is the schema descriptor for piece_id field.
	practicesessionDescPieceID := practicesessionFields[0].Descriptor()
	// practicesession.PieceIDValidator is a validator for the "piece_id" field. It is called by the builders before save.
	practicesession.PieceIDValidator = practicesessionDescPieceID.Validators[0].(func(string) error)
	// practicesessionDescDurationSecs is the schema descriptor for duration_secs field.
	practicesessionDescDurationSecs := practicesessionFields[2].Descriptor()
	// practicesession.DurationSecsValidator is a validator for the "duration_secs" field. It is called by the builders before save.
	practicesession.DurationSecsValidator = practicesessionDescDurationSecs.Validators[0].(func(int) error)
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescKey is the schema descriptor for key field.
	settingDescKey := settingFields[0].Descriptor()
	// setting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	setting.KeyValidator = settingDescKey.Validators[0].(func(string) error)
}
