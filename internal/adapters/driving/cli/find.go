package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/roomctl/roomctl/internal/core/domain"
)

var (
	findExact   bool
	findListAll bool
)

var findCmd = &cobra.Command{
	Use:   "find [room_name]",
	Short: "Find a Webex room ID by room name",
	Long: `Searches your rooms for the given name and prints the matching
room IDs. The default match is a case-insensitive substring; --exact
requires the title to match exactly, case included.`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().BoolVarP(&findExact, "exact", "e", false, "require exact name match (case-sensitive)")
	findCmd.Flags().BoolVarP(&findListAll, "list", "l", false, "list all rooms if no match found")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	name := args[0]

	if roomService == nil {
		return errors.New("room service not configured")
	}

	stop := startSpinner()
	matched, all, err := roomService.Find(context.Background(), name, domain.MatchOptions{Exact: findExact})
	stop()
	if err != nil {
		return err
	}

	if len(all) == 0 {
		cmd.Println("No rooms found")
		return nil
	}
	cmd.Printf("Fetched %d rooms\n", len(all))

	if len(matched) == 0 {
		cmd.Printf("No room found matching %q\n", name)
		if findListAll {
			cmd.Println("\nAll available rooms:")
			for _, room := range domain.SortByTitle(all) {
				cmd.Printf("  %s\n", room.Title)
			}
		} else {
			cmd.Println("Use --list to see all available rooms")
		}
		return fmt.Errorf("%w: %q", domain.ErrNoMatch, name)
	}

	if len(matched) == 1 {
		cmd.Printf("Found room: %s\n", matched[0].Title)
		cmd.Println(matched[0].ID)
		return nil
	}

	cmd.Printf("Found %d matching rooms:\n", len(matched))
	for _, room := range matched {
		cmd.Printf("%s: %s\n", room.Title, room.ID)
	}
	return nil
}

// startSpinner shows fetch progress on stderr, mirroring the interactive
// feel of the tool this replaces. Returns the stop function.
func startSpinner() func() {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " Fetching rooms..."
	s.Start()
	return s.Stop
}
