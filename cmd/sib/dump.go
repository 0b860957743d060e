package main

import (
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/sib/bind"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [bind files...]",
	Short: "Print the resulting binding table as a bind file",
	Long: `Dump loads the bind files and prints every active binding, one command
per line, in a form that can be read back. Keycode lines are shown as the
scancode they resolved to. Failed lines are reported on stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfile(flagProfile, flagActions, args)
		if err != nil {
			return err
		}

		b, err := p.NewBinder()
		if b == nil {
			return err
		}
		if err != nil {
			log.Printf("dump: %v", err)
			printProblems(cmd.ErrOrStderr(), err)
		}

		writeBindings(cmd.OutOrStdout(), b)
		return nil
	},
}

// writeBindings prints b's table; unnamed actions are shown by id
func writeBindings(w io.Writer, b *bind.Binder) {
	for _, bd := range b.Bindings() {
		name, ok := b.ActionString(bd.Action)
		if !ok {
			name = "#" + strconv.Itoa(int(bd.Action))
		}
		fmt.Fprintln(w, bd.Line(name))
	}
}
