package cmd

import (
	"context"
	"fmt"

	"github.com/jkeller/etude/internal/app"
	"github.com/jkeller/etude/internal/ui/theme"
	"github.com/spf13/cobra"
)

// runApp opens the store, applies the saved color scheme, and launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	settings, err := st.SettingsRepo().Load(context.Background())
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	theme.Apply(settings.ColorScheme)

	return app.Run(st)
}
