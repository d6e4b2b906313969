package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	cfgfile "github.com/nimbus-labs/driveingest/internal/adapters/driven/config/file"
	"github.com/nimbus-labs/driveingest/internal/adapters/driven/storage/sqlite"
)

var deadLettersLimit int

var deadLettersCmd = &cobra.Command{
	Use:   "dead-letters",
	Short: "List changes whose hand-off failed",
	Long: `Lists dead-lettered changes, newest first. These are files whose text
was extracted but whose embedding or storage failed after the cursor had
already moved past them.`,
	RunE: runDeadLetters,
}

func init() {
	deadLettersCmd.Flags().IntVar(&deadLettersLimit, "limit", 50, "maximum entries to show")
	rootCmd.AddCommand(deadLettersCmd)
}

func runDeadLetters(cmd *cobra.Command, _ []string) error {
	cfg, err := cfgfile.Load(cfgPath)
	if err != nil {
		return err
	}

	store, err := sqlite.NewDeadLetterStore(cfg.DeadLetter.Path)
	if err != nil {
		return fmt.Errorf("open dead-letter store: %w", err)
	}
	defer store.Close()

	letters, err := store.List(cmd.Context(), deadLettersLimit)
	if err != nil {
		return fmt.Errorf("list dead letters: %w", err)
	}

	if len(letters) == 0 {
		cmd.Println("No dead letters.")
		return nil
	}

	for _, dl := range letters {
		cmd.Printf("%s  %-8s %s (%s): %s\n", dl.CreatedAt, dl.Reason, dl.FileID, dl.MimeType, dl.Detail)
	}
	return nil
}
