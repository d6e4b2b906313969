package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Initialise the change cursor",
	Long: `Fetches the Drive change feed's current start position and writes it
to the cursor file. Notifications arriving before bootstrap fail with a
missing-cursor error, so run this once before "driveingest serve".`,
	RunE: runBootstrap,
}

func init() {
	rootCmd.AddCommand(bootstrapCmd)
}

func runBootstrap(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	app, err := newDriveApp(ctx)
	if err != nil {
		return err
	}

	token, err := app.client.StartPageToken(ctx)
	if err != nil {
		return fmt.Errorf("fetch start page token: %w", err)
	}

	if err := app.cursor.Save(ctx, token); err != nil {
		return fmt.Errorf("save cursor: %w", err)
	}

	cmd.Printf("Cursor initialised at %q (%s)\n", token, app.cursor.Path())
	return nil
}
