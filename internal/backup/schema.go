package backup

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema constrains the backup layout before any row is
// written. Progress stays loose on purpose, it has carried three
// shapes over the app's history.
const documentSchema = `{
  "type": "object",
  "required": ["pianoPieces", "practiceSessions"],
  "properties": {
    "pianoPieces": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title", "artist"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "title": {"type": "string", "minLength": 1},
          "artist": {"type": "string", "minLength": 1},
          "youtubeUrl": {"type": "string"},
          "difficulty": {"type": "string"},
          "milestones": {"type": "array", "items": {"type": "string"}},
          "progress": {"type": ["string", "number", "null"]},
          "lastPracticedAt": {"type": "string"},
          "createdAt": {"type": "string"}
        }
      }
    },
    "practiceSessions": {
      "type": "object",
      "additionalProperties": {
        "type": "array",
        "items": {
          "type": "object",
          "required": ["timestamp", "duration"],
          "properties": {
            "timestamp": {"type": "string"},
            "duration": {"type": "integer", "minimum": 0}
          }
        }
      }
    },
    "pianoSettings": {"type": "object"},
    "exportDate": {"type": "string"},
    "version": {"type": "string"}
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// Validate checks raw against the backup schema.
func Validate(raw []byte) error {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile backup schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("not a valid backup file: %w", err)
	}
	return nil
}

func compileSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(documentSchema)))
		if err != nil {
			schemaErr = err
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://backup.json", def); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = c.Compile("schema://backup.json")
	})
	return compiledSchema, schemaErr
}
