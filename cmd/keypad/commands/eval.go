package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/keypad/arith"
)

func evalCmd(s *settings) *cobra.Command {
	var echo bool
	cmd := &cobra.Command{
		Use:   "eval [EXPR...]",
		Short: "Evaluate expressions directly",
		Long: `Evaluate each argument as an expression, or each line of standard input
if there are no arguments. Expressions may use + - * / ^, brackets, and
unary signs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				sc := bufio.NewScanner(cmd.InOrStdin())
				for sc.Scan() {
					if line := strings.TrimSpace(sc.Text()); line != "" {
						args = append(args, line)
					}
				}
				if err := sc.Err(); err != nil {
					return fmt.Errorf("reading input: %w", err)
				}
			}
			out := cmd.OutOrStdout()
			ctx := arith.NewContext(arith.Prec(s.cfg.Prec))
			for _, src := range args {
				a, err := arith.ParseString(src)
				if err != nil {
					fmt.Fprintln(out, err)
					continue
				}
				if echo {
					fmt.Fprintf(out, "%v : ", a)
				}
				r := ctx.Eval(a)
				if r == nil {
					fmt.Fprintln(out, ctx.Err())
					continue
				}
				txt, err := arith.Format(r, s.cfg.Digits)
				if err != nil {
					fmt.Fprintln(out, err)
					continue
				}
				fmt.Fprintln(out, txt)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&echo, "echo", false, "print parse trees")
	return cmd
}
