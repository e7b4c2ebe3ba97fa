package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/faultbook/faultbook"
	"github.com/faultbook/faultbook/demo"
)

func runCmd() *cobra.Command {
	var (
		topic    string
		timeout  time.Duration
		parallel int
	)

	cmd := &cobra.Command{
		Use:   "run [demo...]",
		Short: "Run demos and report outcomes",
		Long: `Run the named demos, or the whole configured catalog when no names are
given. The command exits nonzero when any demo produced a different failure
than it announced, or none at all.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if timeout > 0 {
				cfg.Timeout = demo.Duration(timeout)
			}
			if parallel > 0 {
				cfg.Parallelism = parallel
			}
			if topic != "" {
				cfg.Topics = []string{topic}
			}

			names := args
			if len(names) == 0 {
				names = cfg.Select(registry)
				if len(names) == 0 {
					return faultbook.New("no demos match the selection",
						faultbook.ClassNotFound,
						"topics", cfg.Topics, "skip", cfg.Skip)
				}
			}

			defer log.Sync()
			runner := demo.NewRunner(registry, log, cfg)
			report, err := runner.Run(cmd.Context(), names...)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), report.Summary())
			if !report.Ok() {
				return faultbook.New("run finished with unexpected outcomes",
					faultbook.ClassInternal,
					"unexpected", report.Unexpected, "silent", report.Silent)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "only run demos of this topic")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "per-demo timeout")
	cmd.Flags().IntVar(&parallel, "parallel", 0, "how many demos run at once")
	return cmd
}
