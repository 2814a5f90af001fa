// cmd/client/cmd/auth/logout.go
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"docvault/cmd/client/cmd/types"
	"docvault/internal/app/client"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти из системы",
	Long:  `Отзывает сессию на сервере и удаляет токен из локального кэша.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.Logout(ctx); err != nil {
			return fmt.Errorf("ошибка выхода: %w", err)
		}

		fmt.Println("✅ Выход выполнен")

		return nil
	},
}
