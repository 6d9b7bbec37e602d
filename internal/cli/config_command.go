package cli

import (
	"fmt"
	"sort"

	"github.com/codalotl/annotext/internal/config"
	qcli "github.com/codalotl/annotext/internal/q/cli"
)

func newConfigCommand(s *session) *qcli.Command {
	cmd := &qcli.Command{
		Name:  "config",
		Short: "Print the effective configuration as JSON.",
		Long: `Settings come from defaults, ~/.annotext/config.json, the nearest .annotext/config.json above the working directory, and ANNOTEXT_*
environment variables, in increasing priority.`,
		Args: qcli.NoArgs,
	}
	sources := cmd.Flags().Bool("sources", 0, false, "Also print where each setting came from.")

	cmd.Run = s.run("config", func(c *qcli.Context, cfg config.Config) error {
		if err := cfg.WriteJSON(c.Out); err != nil {
			return err
		}
		if !*sources {
			return nil
		}
		keys := make([]string, 0, len(cfg.Providence))
		for k := range cfg.Providence {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintln(c.Out)
		for _, k := range keys {
			if _, err := fmt.Fprintf(c.Out, "%s: %s\n", k, cfg.Providence[k]); err != nil {
				return err
			}
		}
		return nil
	})
	return cmd
}
