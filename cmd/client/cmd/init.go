// cmd/client/cmd/init.go
package cmd

import (
	"context"
	"fmt"
	"time"

	"docvault/cmd/client/cmd/auth"
	"docvault/cmd/client/cmd/docs"
	"docvault/cmd/client/cmd/prefs"

	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Проверить соединение с сервером",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if err := app.CheckConnection(ctx); err != nil {
			return fmt.Errorf("сервер недоступен: %w", err)
		}

		fmt.Println("✓ Соединение с сервером установлено")
		return nil
	},
}

func init() {
	// Добавляем команды аутентификации
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)

	// Добавляем команды работы с документами
	rootCmd.AddCommand(docs.DocsCmd)
	docs.DocsCmd.AddCommand(docs.UploadCmd)
	docs.DocsCmd.AddCommand(docs.ListCmd)
	docs.DocsCmd.AddCommand(docs.GetCmd)
	docs.DocsCmd.AddCommand(docs.UpdateCmd)
	docs.DocsCmd.AddCommand(docs.DeleteCmd)
	docs.DocsCmd.AddCommand(docs.SearchCmd)
	docs.DocsCmd.AddCommand(docs.UsageCmd)

	// Локальные настройки
	rootCmd.AddCommand(prefs.PrefsCmd)
	prefs.PrefsCmd.AddCommand(prefs.SetCmd)
	prefs.PrefsCmd.AddCommand(prefs.GetCmd)

	rootCmd.AddCommand(pingCmd)
}
