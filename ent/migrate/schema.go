// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// PiecesColumns holds the columns for the "pieces" table.
	PiecesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "piece_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "artist", Type: field.TypeString},
		{Name: "youtube_url", Type: field.TypeString, Default: ""},
		{Name: "difficulty", Type: field.TypeString, Default: ""},
		{Name: "milestones", Type: field.TypeJSON, Nullable: true},
		{Name: "last_practiced_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PiecesTable holds the schema information for the "pieces" table.
	PiecesTable = &schema.Table{
		Name:       "pieces",
		Columns:    PiecesColumns,
		PrimaryKey: []*schema.Column{PiecesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "piece_piece_id",
				Unique:  false,
				Columns: []*schema.Column{PiecesColumns[1]},
			},
			{
				Name:    "piece_created_at",
				Unique:  false,
				Columns: []*schema.Column{PiecesColumns[8]},
			},
		},
	}
	// PracticeSessionsColumns holds the columns for the "practice_sessions" table.
	PracticeSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "piece_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "duration_secs", Type: field.TypeInt},
	}
	// PracticeSessionsTable holds the schema information for the "practice_sessions" table.
	PracticeSessionsTable = &schema.Table{
		Name:       "practice_sessions",
		Columns:    PracticeSessionsColumns,
		PrimaryKey: []*schema.Column{PracticeSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practicesession_piece_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionsColumns[1]},
			},
			{
				Name:    "practicesession_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionsColumns[2]},
			},
			{
				Name:    "practicesession_piece_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionsColumns[1], PracticeSessionsColumns[2]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeJSON},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PiecesTable,
		PracticeSessionsTable,
		SettingsTable,
	}
)

func init() {
}
