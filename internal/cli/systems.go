package cli

import (
	"github.com/spf13/cobra"
)

// systemsCmd represents the systems command
var systemsCmd = &cobra.Command{
	Use:   "systems",
	Short: "List enabled sign systems and their possible signs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		tables, err := resolveTables(cfg)
		if err != nil {
			return err
		}

		infos := make([]systemInfo, len(tables))
		for i, t := range tables {
			infos[i] = systemInfo{
				ID:      t.ID,
				Name:    t.Name,
				Entries: len(t.Entries),
				Options: t.Options,
			}
		}
		return renderSystems(cmd.OutOrStdout(), cfg.Output.Format, infos)
	},
}

func init() {
	rootCmd.AddCommand(systemsCmd)
}
