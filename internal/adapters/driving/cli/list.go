package cli

import (
	"context"
	"errors"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/roomctl/roomctl/internal/core/domain"
)

var listMax int

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"list-rooms"},
	Short:   "List your rooms sorted by most recent activity",
	Long: `Lists the Webex rooms you are a member of, most recently active
first. Rooms without activity sort by their creation time. The default
limit is 100 and can also be set via WEBEX_MAX_ROOMS.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().IntVar(&listMax, "max", 0, "maximum number of rooms to display")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if roomService == nil {
		return errors.New("room service not configured")
	}

	max := listMax
	if max <= 0 {
		max = maxRooms
	}

	stop := startSpinner()
	rooms, err := roomService.List(context.Background(), max)
	stop()
	if err != nil {
		return err
	}

	if len(rooms) == 0 {
		cmd.Println("No rooms found")
		return nil
	}

	cmd.Printf("Showing %d most recent rooms (limit %d):\n\n", len(rooms), max)

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"TITLE", "ID", "LAST ACTIVITY"})
	for _, room := range rooms {
		t.AppendRow(table.Row{room.Title, room.ID, domain.FormatActivity(room.EffectiveTimestamp())})
	}
	t.Render()

	return nil
}
