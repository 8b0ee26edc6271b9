package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ppiankov/calsigns/internal/cache"
	"github.com/ppiankov/calsigns/internal/host"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Refresh signs periodically and print changes",
	Long: `Watch keeps every enabled system refreshed on a fixed interval and prints
a line whenever a sign changes. The first refresh prints every system.

Stop with Ctrl-C.

Example:
  calsigns watch
  calsigns watch --interval 10m`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().Duration("interval", time.Minute, "refresh interval per system")
	_ = viper.BindPFlag("poll.interval", watchCmd.Flags().Lookup("interval"))
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := cache.NewMemoryCache(cfg.Cache.TTL, 10*time.Minute)
	publisher := host.NewPublisher(store, reg.EntryID(), cfg.Cache.TTL)
	poller := host.NewPoller(reg, publisher, cfg.Poll.Interval, cfg.Poll.Burst, logger)

	out := cmd.OutOrStdout()
	poller.OnChange(func(st host.State) {
		if err := renderStates(out, cfg.Output.Format, st.UpdatedAt.Format(time.RFC3339), []host.State{st}); err != nil {
			fmt.Fprintf(os.Stderr, "render: %v\n", err)
		}
	})

	fmt.Fprintf(os.Stderr, "Watching %d systems every %v (entry %s)\n", len(reg.Entities()), cfg.Poll.Interval, reg.EntryID())
	poller.Run(ctx)
	return nil
}
