// cmd/client/cmd/prefs/get.go
package prefs

import (
	"fmt"

	"github.com/spf13/cobra"
)

var GetCmd = &cobra.Command{
	Use:   "get <имя>",
	Short: "Прочитать настройку",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		value, ok := app.GetPreference(args[0])
		if !ok {
			return fmt.Errorf("настройка %q не задана", args[0])
		}

		fmt.Println(value)

		return nil
	},
}
