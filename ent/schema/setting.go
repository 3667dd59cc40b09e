package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Setting stores application preferences as a single JSON document per
// key. Today the only key is "settings".
type Setting struct {
	ent.Schema
}

func (Setting) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty(),
		field.JSON("value", map[string]any{}),
	}
}
