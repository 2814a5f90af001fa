package prefs

import (
	"fmt"

	"github.com/spf13/cobra"

	"docvault/cmd/client/cmd/types"
	"docvault/internal/app/client"
)

// Настройки хранятся только локально и не уезжают на сервер.
var PrefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Локальные настройки клиента",
	Long:  `Чтение и изменение пользовательских настроек (тема, язык и прочее).`,
}

func appFromContext(cmd *cobra.Command) (*client.App, error) {
	app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}
