package commands

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/keypad"
	"github.com/zephyrtronium/keypad/arith"
	"github.com/zephyrtronium/keypad/internal/config"
)

// settings is the configuration shared by all commands, resolved from the
// environment and then flags.
type settings struct {
	cfg config.Config
	log *log.Logger
}

// Execute runs the keypad command tree with the process arguments.
func Execute() error {
	return NewRoot().Execute()
}

// NewRoot creates the keypad command tree.
func NewRoot() *cobra.Command {
	s := &settings{}
	root := &cobra.Command{
		Use:          "keypad",
		Short:        "Calculator keypad and arbitrary-precision evaluator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			env, err := config.Parse()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("prec") {
				s.cfg.Prec = env.Prec
			}
			if !flags.Changed("digits") {
				s.cfg.Digits = env.Digits
			}
			if !flags.Changed("quiet") {
				s.cfg.Quiet = env.Quiet
			}
			if err := s.cfg.Validate(); err != nil {
				return err
			}
			w := cmd.ErrOrStderr()
			if s.cfg.Quiet {
				w = io.Discard
			}
			s.log = log.New(w, "keypad: ", 0)
			return nil
		},
	}

	root.PersistentFlags().UintVarP(&s.cfg.Prec, "prec", "p", 64, "precision of calculations in bits (env KEYPAD_PREC)")
	root.PersistentFlags().IntVar(&s.cfg.Digits, "digits", 12, "maximum digits after the decimal point (env KEYPAD_DIGITS)")
	root.PersistentFlags().BoolVarP(&s.cfg.Quiet, "quiet", "q", false, "discard diagnostics (env KEYPAD_QUIET)")

	root.AddCommand(replCmd(s), pressCmd(s), evalCmd(s))
	return root
}

// load resolves d to an evaluator built from the settings.
func (s *settings) load(d *keypad.Deferred) error {
	err := d.Resolve(func() (keypad.Evaluator, error) {
		ev, err := arith.Load(s.cfg.Prec, s.cfg.Digits)
		if err != nil {
			return nil, err
		}
		return ev, nil
	})
	if err != nil {
		return fmt.Errorf("load evaluator: %w", err)
	}
	return nil
}
