// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/jkeller/etude/ent/piece"
	"github.com/jkeller/etude/ent/predicate"
)

// PieceUpdate is the builder for updating Piece entities.
type PieceUpdate struct {
	config
	hooks    []Hook
	mutation *PieceMutation
}

// Where appends a list predicates to the PieceUpdate builder.
func (_u *PieceUpdate) Where(ps ...predicate.Piece) *PieceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *PieceUpdate) SetTitle(v string) *PieceUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PieceUpdate) SetNillableTitle(v *string) *PieceUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetArtist sets the "artist" field.
func (_u *PieceUpdate) SetArtist(v string) *PieceUpdate {
	_u.mutation.SetArtist(v)
	return _u
}

// SetNillableArtist sets the "artist" field if the given value is not nil.
func (_u *PieceUpdate) SetNillableArtist(v *string) *PieceUpdate {
	if v != nil {
		_u.SetArtist(*v)
	}
	return _u
}

// SetYoutubeURL sets the "youtube_url" field.
func (_u *PieceUpdate) SetYoutubeURL(v string) *PieceUpdate {
	_u.mutation.SetYoutubeURL(v)
	return _u
}

// SetNillableYoutubeURL sets the "youtube_url" field if the given value is not nil.
func (_u *PieceUpdate) SetNillableYoutubeURL(v *string) *PieceUpdate {
	if v != nil {
		_u.SetYoutubeURL(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *PieceUpdate) SetDifficulty(v string) *PieceUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *PieceUpdate) SetNillableDifficulty(v *string) *PieceUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetMilestones sets the "milestones" field.
func (_u *PieceUpdate) SetMilestones(v []string) *PieceUpdate {
	_u.mutation.SetMilestones(v)
	return _u
}

// AppendMilestones appends value to the "milestones" field.
func (_u *PieceUpdate) AppendMilestones(v []string) *PieceUpdate {
	_u.mutation.AppendMilestones(v)
	return _u
}

// ClearMilestones clears the value of the "milestones" field.
func (_u *PieceUpdate) ClearMilestones() *PieceUpdate {
	_u.mutation.ClearMilestones()
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *PieceUpdate) SetLastPracticedAt(v time.Time) *PieceUpdate {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *PieceUpdate) SetNillableLastPracticedAt(v *time.Time) *PieceUpdate {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (_u *PieceUpdate) ClearLastPracticedAt() *PieceUpdate {
	_u.mutation.ClearLastPracticedAt()
	return _u
}

// Mutation returns the PieceMutation object of the builder.
func (_u *PieceUpdate) Mutation() *PieceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PieceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PieceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PieceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PieceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PieceUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := piece.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Piece.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Artist(); ok {
		if err := piece.ArtistValidator(v); err != nil {
			return &ValidationError{Name: "artist", err: fmt.Errorf(`ent: validator failed for field "Piece.artist": %w`, err)}
		}
	}
	return nil
}

func (_u *PieceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(piece.Table, piece.Columns, sqlgraph.NewFieldSpec(piece.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(piece.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Artist(); ok {
		_spec.SetField(piece.FieldArtist, field.TypeString, value)
	}
	if value, ok := _u.mutation.YoutubeURL(); ok {
		_spec.SetField(piece.FieldYoutubeURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(piece.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Milestones(); ok {
		_spec.SetField(piece.FieldMilestones, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMilestones(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, piece.FieldMilestones, value)
		})
	}
	if _u.mutation.MilestonesCleared() {
		_spec.ClearField(piece.FieldMilestones, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(piece.FieldLastPracticedAt, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedAtCleared() {
		_spec.ClearField(piece.FieldLastPracticedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{piece.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PieceUpdateOne is the builder for updating a single Piece entity.
type PieceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PieceMutation
}

// SetTitle sets the "title" field.
func (_u *PieceUpdateOne) SetTitle(v string) *PieceUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PieceUpdateOne) SetNillableTitle(v *string) *PieceUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetArtist sets the "artist" field.
func (_u *PieceUpdateOne) SetArtist(v string) *PieceUpdateOne {
	_u.mutation.SetArtist(v)
	return _u
}

// SetNillableArtist sets the "artist" field if the given value is not nil.
func (_u *PieceUpdateOne) SetNillableArtist(v *string) *PieceUpdateOne {
	if v != nil {
		_u.SetArtist(*v)
	}
	return _u
}

// SetYoutubeURL sets the "youtube_url" field.
func (_u *PieceUpdateOne) SetYoutubeURL(v string) *PieceUpdateOne {
	_u.mutation.SetYoutubeURL(v)
	return _u
}

// SetNillableYoutubeURL sets the "youtube_url" field if the given value is not nil.
func (_u *PieceUpdateOne) SetNillableYoutubeURL(v *string) *PieceUpdateOne {
	if v != nil {
		_u.SetYoutubeURL(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *PieceUpdateOne) SetDifficulty(v string) *PieceUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *PieceUpdateOne) SetNillableDifficulty(v *string) *PieceUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetMilestones sets the "milestones" field.
func (_u *PieceUpdateOne) SetMilestones(v []string) *PieceUpdateOne {
	_u.mutation.SetMilestones(v)
	return _u
}

// AppendMilestones appends value to the "milestones" field.
func (_u *PieceUpdateOne) AppendMilestones(v []string) *PieceUpdateOne {
	_u.mutation.AppendMilestones(v)
	return _u
}

// ClearMilestones clears the value of the "milestones" field.
func (_u *PieceUpdateOne) ClearMilestones() *PieceUpdateOne {
	_u.mutation.ClearMilestones()
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *PieceUpdateOne) SetLastPracticedAt(v time.Time) *PieceUpdateOne {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *PieceUpdateOne) SetNillableLastPracticedAt(v *time.Time) *PieceUpdateOne {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (_u *PieceUpdateOne) ClearLastPracticedAt() *PieceUpdateOne {
	_u.mutation.ClearLastPracticedAt()
	return _u
}

// Mutation returns the PieceMutation object of the builder.
func (_u *PieceUpdateOne) Mutation() *PieceMutation {
	return _u.mutation
}

// Where appends a list predicates to the PieceUpdate builder.
func (_u *PieceUpdateOne) Where(ps ...predicate.Piece) *PieceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PieceUpdateOne) Select(field string, fields ...string) *PieceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Piece entity.
func (_u *PieceUpdateOne) Save(ctx context.Context) (*Piece, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PieceUpdateOne) SaveX(ctx context.Context) *Piece {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PieceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PieceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PieceUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := piece.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Piece.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Artist(); ok {
		if err := piece.ArtistValidator(v); err != nil {
			return &ValidationError{Name: "artist", err: fmt.Errorf(`ent: validator failed for field "Piece.artist": %w`, err)}
		}
	}
	return nil
}

func (_u *PieceUpdateOne) sqlSave(ctx context.Context) (_node *Piece, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(piece.Table, piece.Columns, sqlgraph.NewFieldSpec(piece.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Piece.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, piece.FieldID)
		for _, f := range fields {
			if !piece.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != piece.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(piece.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Artist(); ok {
		_spec.SetField(piece.FieldArtist, field.TypeString, value)
	}
	if value, ok := _u.mutation.YoutubeURL(); ok {
		_spec.SetField(piece.FieldYoutubeURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(piece.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Milestones(); ok {
		_spec.SetField(piece.FieldMilestones, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMilestones(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, piece.FieldMilestones, value)
		})
	}
	if _u.mutation.MilestonesCleared() {
		_spec.ClearField(piece.FieldMilestones, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(piece.FieldLastPracticedAt, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedAtCleared() {
		_spec.ClearField(piece.FieldLastPracticedAt, field.TypeTime)
	}
	_node = &Piece{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{piece.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
