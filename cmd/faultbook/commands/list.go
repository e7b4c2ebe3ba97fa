package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/faultbook/faultbook/demo"
)

func listCmd() *cobra.Command {
	var topic string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the demo catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			demos := registry.All()
			if topic != "" {
				demos = registry.ByTopic(topic)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTOPIC\tEXPECTS\tSYNOPSIS")
			for _, d := range demos {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.Name, d.Topic, d.Expect, d.Synopsis)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "only list demos of this topic")
	return cmd
}

func demoSummaries(demos []demo.Demo) []map[string]any {
	out := make([]map[string]any, len(demos))
	for i, d := range demos {
		out[i] = map[string]any{
			"name":     d.Name,
			"topic":    d.Topic,
			"synopsis": d.Synopsis,
			"expects":  d.Expect.String(),
		}
	}
	return out
}
