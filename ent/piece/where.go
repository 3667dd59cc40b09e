// Code generated by ent, DO NOT EDIT.

package piece

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jkeller/etude/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Piece {
	return predicate.Piece(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Piece {
	return predicate.Piece(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Piece {
	return predicate.Piece(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Piece {
	return predicate.Piece(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Piece {
	return predicate.Piece(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Piece {
	return predicate.Piece(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Piece {
	return predicate.Piece(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Piece {
	return predicate.Piece(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Piece {
	return predicate.Piece(sql.FieldLTE(FieldID, id))
}

// PieceID applies equality check predicate on the "piece_id" field. It's identical to PieceIDEQ.
func PieceID(v string) predicate.Piece {
	return predicate.Piece(sql.FieldEQ(FieldPieceID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Piece {
	return predicate.Piece(sql.FieldEQ(FieldTitle, v))
}

// Artist applies equality check predicate on the "artist" field. It's identical to ArtistEQ.
func Artist(v string) predicate.Piece {
	return predicate.Piece(sql.FieldEQ(FieldArtist, v))
}

// YoutubeURL applies equality check predicate on the "youtube_url" field. It's identical to YoutubeURLEQ.
func YoutubeURL(v string) predicate.Piece {
	return predicate.Piece(sql.FieldEQ(FieldYoutubeURL, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.Piece {
	return predicate.Piece(sql.FieldEQ(FieldDifficulty, v))
}

// LastPracticedAt applies equality check predicate on the "last_practiced_at" field. It's identical to LastPracticedAtEQ.
func LastPracticedAt(v time.Time) predicate.Piece {
	return predicate.Piece(sql.FieldEQ(FieldLastPracticedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Piece {
	return predicate.Piece(sql.FieldEQ(FieldCreatedAt, v))
}

// PieceIDEQ applies the EQ predicate on the "piece_id" field.
func PieceIDEQ(v string) predicate.Piece {
	return predicate.Piece(sql.FieldEQ(FieldPieceID, v))
}

// PieceIDNEQ applies the NEQ predicate on the "piece_id" field.
func PieceIDNEQ(v string) predicate.Piece {
	return predicate.Piece(sql.FieldNEQ(FieldPieceID, v))
}

// PieceIDIn applies the In predicate on the "piece_id" field.
func PieceIDIn(vs ...string) predicate.Piece {
	return predicate.Piece(sql.FieldIn(FieldPieceID, vs...))
}

// PieceIDNotIn applies the NotIn predicate on the "piece_id" field.
func PieceIDNotIn(vs ...string) predicate.Piece {
	return predicate.Piece(sql.FieldNotIn(FieldPieceID, vs...))
}

// PieceIDGT applies the GT predicate on the "piece_id" field.
func PieceIDGT(v string) predicate.Piece {
	return predicate.Piece(sql.FieldGT(FieldPieceID, v))
}

// PieceIDGTE applies the GTE predicate on the "piece_id" field.
func PieceIDGTE(v string) predicate.Piece {
	return predicate.Piece(sql.FieldGTE(FieldPieceID, v))
}

// PieceIDLT applies the LT predicate on the "piece_id" field.
func PieceIDLT(v string) predicate.Piece {
	return predicate.Piece(sql.FieldLT(FieldPieceID, v))
}

// PieceIDLTE applies the LTE predicate on the "piece_id" field.
func PieceIDLTE(v string) predicate.Piece {
	return predicate.Piece(sql.FieldLTE(FieldPieceID, v))
}

// PieceIDContains applies the Contains predicate on the "piece_id" field.
func PieceIDContains(v string) predicate.Piece {
	return predicate.Piece(sql.FieldContains(FieldPieceID, v))
}

// PieceIDHasPrefix applies the HasPrefix predicate on the "piece_id" field.
func PieceIDHasPrefix(v string) predicate.Piece {
	return predicate.Piece(sql.FieldHasPrefix(FieldPieceID, v))
}

// PieceIDHasSuffix applies the HasSuffix predicate on the "piece_id" field.
func PieceIDHasSuffix(v string) predicate.Piece {
	return predicate.Piece(sql.FieldHasSuffix(FieldPieceID, v))
}

// PieceIDEqualFold applies the EqualFold predicate on the "piece_id" field.
func PieceIDEqualFold(v string) predicate.Piece {
	return predicate.Piece(sql.FieldEqualFold(FieldPieceID, v))
}

// PieceIDContainsFold applies the ContainsFold predicate on the "piece_id" field.
func PieceIDContainsFold(v string) predicate.Piece {
	return predicate.Piece(sql.FieldContainsFold(FieldPieceID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Piece {
	return predicate.Piece(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Piece {
	return predicate.Piece(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Piece {
	return predicate.Piece(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Piece {
	return predicate.Piece(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Piece {
	return predicate.Piece(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Piece {
	return predicate.Piece(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Piece {
	return predicate.Piece(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Piece {
	return predicate.Piece(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Piece {
	return predicate.Piece(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Piece {
	return predicate.Piece(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Piece {
	return predicate.Piece(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Piece {
	return predicate.Piece(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Piece {
	return predicate.Piece(sql.FieldContainsFold(FieldTitle, v))
}

// ArtistEQ applies the EQ predicate on the "artist" field.
func ArtistEQ(v string) predicate.Piece {
	return predicate.Piece(sql.FieldEQ(FieldArtist, v))
}

// ArtistNEQ applies the NEQ predicate on the "artist" field.
func ArtistNEQ(v string) predicate.Piece {
	return predicate.Piece(sql.FieldNEQ(FieldArtist, v))
}

// ArtistIn applies the In predicate on the "artist" field.
func ArtistIn(vs ...string) predicate.Piece {
	return predicate.Piece(sql.FieldIn(FieldArtist, vs...))
}

// ArtistNotIn applies the NotIn predicate on the "artist" field.
func ArtistNotIn(vs ...string) predicate.Piece {
	return predicate.Piece(sql.FieldNotIn(FieldArtist, vs...))
}

// ArtistGT applies the GT predicate on the "artist" field.
func ArtistGT(v string) predicate.Piece {
	return predicate.Piece(sql.FieldGT(FieldArtist, v))
}

// ArtistGTE applies the GTE predicate on the "artist" field.
func ArtistGTE(v string) predicate.Piece {
	return predicate.Piece(sql.FieldGTE(FieldArtist, v))
}

// ArtistLT applies the LT predicate on the "artist" field.
func ArtistLT(v string) predicate.Piece {
	return predicate.Piece(sql.FieldLT(FieldArtist, v))
}

// ArtistLTE applies the LTE predicate on the "artist" field.
func ArtistLTE(v string) predicate.Piece {
	return predicate.Piece(sql.FieldLTE(FieldArtist, v))
}

// ArtistContains applies the Contains predicate on the "artist" field.
func ArtistContains(v string) predicate.Piece {
	return predicate.Piece(sql.FieldContains(FieldArtist, v))
}

// ArtistHasPrefix applies the HasPrefix predicate on the "artist" field.
func ArtistHasPrefix(v string) predicate.Piece {
	return predicate.Piece(sql.FieldHasPrefix(FieldArtist, v))
}

// ArtistHasSuffix applies the HasSuffix predicate on the "artist" field.
func ArtistHasSuffix(v string) predicate.Piece {
	return predicate.Piece(sql.FieldHasSuffix(FieldArtist, v))
}

// ArtistEqualFold applies the EqualFold predicate on the "artist" field.
func ArtistEqualFold(v string) predicate.Piece {
	return predicate.Piece(sql.FieldEqualFold(FieldArtist, v))
}

// ArtistContainsFold applies the ContainsFold predicate on the "artist" field.
func ArtistContainsFold(v string) predicate.Piece {
	return predicate.Piece(sql.FieldContainsFold(FieldArtist, v))
}

// YoutubeURLEQ applies the EQ predicate on the "youtube_url" field.
func YoutubeURLEQ(v string) predicate.Piece {
	return predicate.Piece(sql.FieldEQ(FieldYoutubeURL, v))
}

// YoutubeURLNEQ applies the NEQ predicate on the "youtube_url" field.
func YoutubeURLNEQ(v string) predicate.Piece {
	return predicate.Piece(sql.FieldNEQ(FieldYoutubeURL, v))
}

// YoutubeURLIn applies the In predicate on the "youtube_url" field.
func YoutubeURLIn(vs ...string) predicate.Piece {
	return predicate.Piece(sql.FieldIn(FieldYoutubeURL, vs...))
}

// YoutubeURLNotIn applies the NotIn predicate on the "youtube_url" field.
func YoutubeURLNotIn(vs ...string) predicate.Piece {
	return predicate.Piece(sql.FieldNotIn(FieldYoutubeURL, vs...))
}

// YoutubeURLGT applies the GT predicate on the "youtube_url" field.
func YoutubeURLGT(v string) predicate.Piece {
	return predicate.Piece(sql.FieldGT(FieldYoutubeURL, v))
}

// YoutubeURLGTE applies the GTE predicate on the "youtube_url" field.
func YoutubeURLGTE(v string) predicate.Piece {
	return predicate.Piece(sql.FieldGTE(FieldYoutubeURL, v))
}

// YoutubeURLLT applies the LT predicate on the "youtube_url" field.
func YoutubeURLLT(v string) predicate.Piece {
	return predicate.Piece(sql.FieldLT(FieldYoutubeURL, v))
}

// YoutubeURLLTE applies the LTE predicate on the "youtube_url" field.
func YoutubeURLLTE(v string) predicate.Piece {
	return predicate.Piece(sql.FieldLTE(FieldYoutubeURL, v))
}

// YoutubeURLContains applies the Contains predicate on the "youtube_url" field.
func YoutubeURLContains(v string) predicate.Piece {
	return predicate.Piece(sql.FieldContains(FieldYoutubeURL, v))
}

// YoutubeURLHasPrefix applies the HasPrefix predicate on the "youtube_url" field.
func YoutubeURLHasPrefix(v string) predicate.Piece {
	return predicate.Piece(sql.FieldHasPrefix(FieldYoutubeURL, v))
}

// YoutubeURLHasSuffix applies the HasSuffix predicate on the "youtube_url" field.
func YoutubeURLHasSuffix(v string) predicate.Piece {
	return predicate.Piece(sql.FieldHasSuffix(FieldYoutubeURL, v))
}

// YoutubeURLEqualFold applies the EqualFold predicate on the "youtube_url" field.
func YoutubeURLEqualFold(v string) predicate.Piece {
	return predicate.Piece(sql.FieldEqualFold(FieldYoutubeURL, v))
}

// YoutubeURLContainsFold applies the ContainsFold predicate on the "youtube_url" field.
func YoutubeURLContainsFold(v string) predicate.Piece {
	return predicate.Piece(sql.FieldContainsFold(FieldYoutubeURL, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.Piece {
	return predicate.Piece(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.Piece {
	return predicate.Piece(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.Piece {
	return predicate.Piece(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.Piece {
	return predicate.Piece(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.Piece {
	return predicate.Piece(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.Piece {
	return predicate.Piece(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.Piece {
	return predicate.Piece(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.Piece {
	return predicate.Piece(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.Piece {
	return predicate.Piece(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.Piece {
	return predicate.Piece(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.Piece {
	return predicate.Piece(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.Piece {
	return predicate.Piece(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.Piece {
	return predicate.Piece(sql.FieldContainsFold(FieldDifficulty, v))
}

// MilestonesIsNil applies the IsNil predicate on the "milestones" field.
func MilestonesIsNil() predicate.Piece {
	return predicate.Piece(sql.FieldIsNull(FieldMilestones))
}

// MilestonesNotNil applies the NotNil predicate on the "milestones" field.
func MilestonesNotNil() predicate.Piece {
	return predicate.Piece(sql.FieldNotNull(FieldMilestones))
}

// LastPracticedAtEQ applies the EQ predicate on the "last_practiced_at" field.
func LastPracticedAtEQ(v time.Time) predicate.Piece {
	return predicate.Piece(sql.FieldEQ(FieldLastPracticedAt, v))
}

// LastPracticedAtNEQ applies the NEQ predicate on the "last_practiced_at" field.
func LastPracticedAtNEQ(v time.Time) predicate.Piece {
	return predicate.Piece(sql.FieldNEQ(FieldLastPracticedAt, v))
}

// LastPracticedAtIn applies the In predicate on the "last_practiced_at" field.
func LastPracticedAtIn(vs ...time.Time) predicate.Piece {
	return predicate.Piece(sql.FieldIn(FieldLastPracticedAt, vs...))
}

// LastPracticedAtNotIn applies the NotIn predicate on the "last_practiced_at" field.
func LastPracticedAtNotIn(vs ...time.Time) predicate.Piece {
	return predicate.Piece(sql.FieldNotIn(FieldLastPracticedAt, vs...))
}

// LastPracticedAtGT applies the GT predicate on the "last_practiced_at" field.
func LastPracticedAtGT(v time.Time) predicate.Piece {
	return predicate.Piece(sql.FieldGT(FieldLastPracticedAt, v))
}

// LastPracticedAtGTE applies the GTE predicate on the "last_practiced_at" field.
func LastPracticedAtGTE(v time.Time) predicate.Piece {
	return predicate.Piece(sql.FieldGTE(FieldLastPracticedAt, v))
}

// LastPracticedAtLT applies the LT predicate on the "last_practiced_at" field.
func LastPracticedAtLT(v time.Time) predicate.Piece {
	return predicate.Piece(sql.FieldLT(FieldLastPracticedAt, v))
}

// LastPracticedAtLTE applies the LTE predicate on the "last_practiced_at" field.
func LastPracticedAtLTE(v time.Time) predicate.Piece {
	return predicate.Piece(sql.FieldLTE(FieldLastPracticedAt, v))
}

// LastPracticedAtIsNil applies the IsNil predicate on the "last_practiced_at" field.
func LastPracticedAtIsNil() predicate.Piece {
	return predicate.Piece(sql.FieldIsNull(FieldLastPracticedAt))
}

// LastPracticedAtNotNil applies the NotNil predicate on the "last_practiced_at" field.
func LastPracticedAtNotNil() predicate.Piece {
	return predicate.Piece(sql.FieldNotNull(FieldLastPracticedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Piece {
	return predicate.Piece(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Piece {
	return predicate.Piece(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Piece {
	return predicate.Piece(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Piece {
	return predicate.Piece(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Piece {
	return predicate.Piece(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Piece {
	return predicate.Piece(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Piece {
	return predicate.Piece(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Piece {
	return predicate.Piece(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Piece) predicate.Piece {
	return predicate.Piece(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Piece) predicate.Piece {
	return predicate.Piece(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Piece) predicate.Piece {
	return predicate.Piece(sql.NotPredicates(p))
}
