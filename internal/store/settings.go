package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jkeller/etude/ent"
	entsetting "github.com/jkeller/etude/ent/setting"
)

// settingsKey is the row key for the single settings document.
const settingsKey = "settings"

type settingsRepo struct {
	client *ent.Client
}

func (r *settingsRepo) Load(ctx context.Context) (Settings, error) {
	row, err := r.client.Setting.Query().
		Where(entsetting.Key(settingsKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return DefaultSettings(), nil
		}
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}

	// Start from defaults so fields added after the row was written
	// keep their default values.
	s := DefaultSettings()
	raw, err := json.Marshal(row.Value)
	if err != nil {
		return Settings{}, fmt.Errorf("marshal settings value: %w", err)
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	return s, nil
}

func (r *settingsRepo) Save(ctx context.Context, s Settings) error {
	value, err := settingsToMap(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	n, err := r.client.Setting.Update().
		Where(entsetting.Key(settingsKey)).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.Setting.Create().
		SetKey(settingsKey).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create settings: %w", err)
	}
	return nil
}

func settingsToMap(s Settings) (map[string]any, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
