package commands

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/zephyrtronium/keypad"
)

func replCmd(s *settings) *cobra.Command {
	var wait bool
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Type keys interactively, one line at a time",
		Long: `Each line of input is a sequence of keys: digits, + - * / (or × ÷),
n to toggle the sign, . for a decimal point, c to clear, and = to compute.
The expression is printed after every line. A line containing only q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := keypad.NewDeferred()
			disp := newConsole(cmd.OutOrStdout())
			b := keypad.New(keypad.WithDisplay(disp), keypad.WithEvaluator(d), keypad.Logger(s.log))

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				err := s.load(d)
				if err == nil || wait {
					return err
				}
				// The keypad works without an evaluator; it just can't
				// compute.
				s.log.Print(err)
				return nil
			})
			g.Go(func() error {
				if wait {
					if err := d.Wait(ctx); err != nil {
						return err
					}
				}
				return repl(ctx, cmd.InOrStdin(), b, disp, s.log)
			})
			return g.Wait()
		},
	}
	cmd.Flags().BoolVar(&wait, "wait", false, "wait for the evaluator to load before reading keys, and fail if it doesn't")
	return cmd
}

// repl dispatches lines of keys from in until EOF or a quit line.
func repl(ctx context.Context, in io.Reader, b *keypad.Builder, disp *console, logger *log.Logger) error {
	disp.render()
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := sc.Text()
		if strings.TrimSpace(line) == "q" {
			return nil
		}
		for _, r := range line {
			if _, err := b.Key(r); err != nil {
				var ke *keypad.KeyError
				if !errors.As(err, &ke) {
					return err
				}
				logger.Print(err)
			}
		}
		disp.render()
	}
	return sc.Err()
}
