package stats

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/nbarlow/gcryrand"
)

// NewCommand creates and returns the stats command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the entropy pool's operation counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := gcryrand.StatsSnapshot()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "canonical mixes:    %s\n", humanize.Comma(int64(s.MixRnd)))
			fmt.Fprintf(w, "key mixes:          %s\n", humanize.Comma(int64(s.MixKey)))
			fmt.Fprintf(w, "slow polls:         %s\n", humanize.Comma(int64(s.SlowPolls)))
			fmt.Fprintf(w, "fast polls:         %s\n", humanize.Comma(int64(s.FastPolls)))
			fmt.Fprintf(w, "reads serviced:     %s\n", humanize.Comma(int64(s.GetBytes1)))
			fmt.Fprintf(w, "bytes emitted:      %s\n", humanize.Bytes(s.GetBytes2))
			fmt.Fprintf(w, "add_bytes calls:    %s\n", humanize.Comma(int64(s.NAddBytes)))
			fmt.Fprintf(w, "bytes added:        %s\n", humanize.Bytes(s.AddBytes))
			fmt.Fprintf(w, "hw poll ever failed: %t\n", s.HWPollFail)
			return nil
		},
	}
}
