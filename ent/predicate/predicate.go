// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Piece is the predicate function for piece builders.
type Piece func(*sql.Selector)

// PracticeSession is the predicate function for practicesession builders.
type PracticeSession func(*sql.Selector)

// Setting is the predicate function for setting builders.
type Setting func(*sql.Selector)
