// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jkeller/etude/ent/piece"
)

// PieceCreate is the builder for creating a Piece entity.
type PieceCreate struct {
	config
	mutation *PieceMutation
	hooks    []Hook
}

// SetPieceID sets the "piece_id" field.
func (_c *PieceCreate) SetPieceID(v string) *PieceCreate {
	_c.mutation.SetPieceID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *PieceCreate) SetTitle(v string) *PieceCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetArtist sets the "artist" field.
func (_c *PieceCreate) SetArtist(v string) *PieceCreate {
	_c.mutation.SetArtist(v)
	return _c
}

// SetYoutubeURL sets the "youtube_url" field.
func (_c *PieceCreate) SetYoutubeURL(v string) *PieceCreate {
	_c.mutation.SetYoutubeURL(v)
	return _c
}

// SetNillableYoutubeURL sets the "youtube_url" field if the given value is not nil.
func (_c *PieceCreate) SetNillableYoutubeURL(v *string) *PieceCreate {
	if v != nil {
		_c.SetYoutubeURL(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *PieceCreate) SetDifficulty(v string) *PieceCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *PieceCreate) SetNillableDifficulty(v *string) *PieceCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetMilestones sets the "milestones" field.
func (_c *PieceCreate) SetMilestones(v []string) *PieceCreate {
	_c.mutation.SetMilestones(v)
	return _c
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_c *PieceCreate) SetLastPracticedAt(v time.Time) *PieceCreate {
	_c.mutation.SetLastPracticedAt(v)
	return _c
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_c *PieceCreate) SetNillableLastPracticedAt(v *time.Time) *PieceCreate {
	if v != nil {
		_c.SetLastPracticedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PieceCreate) SetCreatedAt(v time.Time) *PieceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PieceCreate) SetNillableCreatedAt(v *time.Time) *PieceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the PieceMutation object of the builder.
func (_c *PieceCreate) Mutation() *PieceMutation {
	return _c.mutation
}

// Save creates the Piece in the database.
func (_c *PieceCreate) Save(ctx context.Context) (*Piece, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PieceCreate) SaveX(ctx context.Context) *Piece {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PieceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PieceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PieceCreate) defaults() {
	if _, ok := _c.mutation.YoutubeURL(); !ok {
		v := piece.DefaultYoutubeURL
		_c.mutation.SetYoutubeURL(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := piece.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := piece.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PieceCreate) check() error {
	if _, ok := _c.mutation.PieceID(); !ok {
		return &ValidationError{Name: "piece_id", err: errors.New(`ent: missing required field "Piece.piece_id"`)}
	}
	if v, ok := _c.mutation.PieceID(); ok {
		if err := piece.PieceIDValidator(v); err != nil {
			return &ValidationError{Name: "piece_id", err: fmt.Errorf(`ent: validator failed for field "Piece.piece_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Piece.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := piece.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Piece.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Artist(); !ok {
		return &ValidationError{Name: "artist", err: errors.New(`ent: missing required field "Piece.artist"`)}
	}
	if v, ok := _c.mutation.Artist(); ok {
		if err := piece.ArtistValidator(v); err != nil {
			return &ValidationError{Name: "artist", err: fmt.Errorf(`ent: validator failed for field "Piece.artist": %w`, err)}
		}
	}
	if _, ok := _c.mutation.YoutubeURL(); !ok {
		return &ValidationError{Name: "youtube_url", err: errors.New(`ent: missing required field "Piece.youtube_url"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Piece.difficulty"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Piece.created_at"`)}
	}
	return nil
}

func (_c *PieceCreate) sqlSave(ctx context.Context) (*Piece, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PieceCreate) createSpec() (*Piece, *sqlgraph.CreateSpec) {
	var (
		_node = &Piece{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(piece.Table, sqlgraph.NewFieldSpec(piece.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PieceID(); ok {
		_spec.SetField(piece.FieldPieceID, field.TypeString, value)
		_node.PieceID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(piece.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Artist(); ok {
		_spec.SetField(piece.FieldArtist, field.TypeString, value)
		_node.Artist = value
	}
	if value, ok := _c.mutation.YoutubeURL(); ok {
		_spec.SetField(piece.FieldYoutubeURL, field.TypeString, value)
		_node.YoutubeURL = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(piece.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Milestones(); ok {
		_spec.SetField(piece.FieldMilestones, field.TypeJSON, value)
		_node.Milestones = value
	}
	if value, ok := _c.mutation.LastPracticedAt(); ok {
		_spec.SetField(piece.FieldLastPracticedAt, field.TypeTime, value)
		_node.LastPracticedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(piece.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// PieceCreateBulk is the builder for creating many Piece entities in bulk.
type PieceCreateBulk struct {
	config
	err      error
	builders []*PieceCreate
}

// Save creates the Piece entities in the database.
func (_c *PieceCreateBulk) Save(ctx context.Context) ([]*Piece, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Piece, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PieceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PieceCreateBulk) SaveX(ctx context.Context) []*Piece {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PieceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PieceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
