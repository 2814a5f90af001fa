// cmd/client/cmd/prefs/set.go
package prefs

import (
	"fmt"

	"github.com/spf13/cobra"
)

var SetCmd = &cobra.Command{
	Use:   "set <имя> <значение>",
	Short: "Сохранить настройку",
	Long: `Сохраняет настройку в локальном кэше, например:

  docvault prefs set theme dark
  docvault prefs set language ru`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		if !app.SetPreference(args[0], args[1]) {
			return fmt.Errorf("настройка %q отклонена", args[0])
		}

		fmt.Printf("✅ %s = %s\n", args[0], args[1])

		return nil
	},
}
