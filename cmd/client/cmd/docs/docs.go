package docs

import (
	"fmt"

	"github.com/spf13/cobra"

	"docvault/cmd/client/cmd/types"
	"docvault/internal/app/client"
)

// DocsCmd - родительская команда для операций с документами
var DocsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Управление документами",
	Long:  `Загрузка, просмотр, поиск и удаление документов на сервере.`,
}

// appFromContext достаёт приложение и проверяет, что пользователь вошёл.
func appFromContext(cmd *cobra.Command) (*client.App, error) {
	app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	if !app.IsAuthenticated() {
		return nil, fmt.Errorf("требуется вход: docvault auth login")
	}
	return app, nil
}
