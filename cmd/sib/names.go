package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/sib/bind"
)

// nameTables lists the input names each bind command accepts
var nameTables = map[string]func() []string{
	"scancode": bind.ScancodeNames,
	"keycode":  bind.KeycodeNames,
	"mbutton":  bind.MouseButtonNames,
	"cbutton":  bind.ControllerButtonNames,
	"caxis":    bind.AxisDirectionNames,
}

var namesCmd = &cobra.Command{
	Use:   "names <scancode|keycode|mbutton|cbutton|caxis>",
	Short: "List the input names a bind command accepts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, ok := nameTables[args[0]]
		if !ok {
			kinds := make([]string, 0, len(nameTables))
			for k := range nameTables {
				kinds = append(kinds, k)
			}
			slices.Sort(kinds)
			return fmt.Errorf("unknown command %q, want one of %s", args[0], strings.Join(kinds, ", "))
		}
		for _, name := range table() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}
