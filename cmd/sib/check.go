package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/sib/bind"
)

var checkCmd = &cobra.Command{
	Use:   "check [bind files...]",
	Short: "Report every bad line in bind files",
	Long: `Check reads the profile's bind files and any given on the command line,
printing each line that fails. Exits non-zero when any line failed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfile(flagProfile, flagActions, args)
		if err != nil {
			return err
		}
		if len(p.Binds) == 0 {
			return errors.New("no bind files to check")
		}

		_, err = p.NewBinder()
		if n := printProblems(cmd.OutOrStdout(), err); n > 0 {
			return fmt.Errorf("%d problem(s) in %d file(s)", n, len(p.Binds))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d file(s)\n", len(p.Binds))
		return nil
	},
}

// printProblems writes one line per failure found in err and returns the count
func printProblems(w io.Writer, err error) int {
	switch e := err.(type) {
	case nil:
		return 0
	case *bind.LoadError:
		for _, le := range e.Errs {
			fmt.Fprintf(w, "%s:%d: %s [%v]\n", e.Source, le.Line, le.Msg, le.Code)
		}
		return len(e.Errs)
	case interface{ Unwrap() []error }:
		n := 0
		for _, inner := range e.Unwrap() {
			n += printProblems(w, inner)
		}
		return n
	}
	fmt.Fprintln(w, err)
	return 1
}
