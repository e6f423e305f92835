package commands

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/zephyrtronium/keypad"
)

func pressCmd(s *settings) *cobra.Command {
	var wait bool
	cmd := &cobra.Command{
		Use:   "press KEYS...",
		Short: "Press a sequence of keys and print the result",
		Example: `  keypad press 78+9=
  keypad press 5n + 3 =`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := keypad.NewDeferred()
			disp := newConsole(cmd.OutOrStdout())
			b := keypad.New(keypad.WithDisplay(disp), keypad.WithEvaluator(d), keypad.Logger(s.log))

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				return s.load(d)
			})
			g.Go(func() error {
				if wait {
					if err := d.Wait(ctx); err != nil {
						return err
					}
				}
				for _, keys := range args {
					if err := b.Keys(keys); err != nil {
						return err
					}
				}
				disp.render()
				return nil
			})
			return g.Wait()
		},
	}
	cmd.Flags().BoolVar(&wait, "wait", true, "wait for the evaluator to load before pressing keys")
	return cmd
}
