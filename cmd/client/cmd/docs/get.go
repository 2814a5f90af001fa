// cmd/client/cmd/docs/get.go
package docs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var GetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Показать документ",
	Long: `Возвращает метаданные документа и свежую ссылку на скачивание.

Ссылка подписана и действует ограниченное время.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		doc, err := app.GetDocument(ctx, args[0])
		if err != nil {
			return fmt.Errorf("ошибка получения документа: %w", err)
		}

		fmt.Printf("ID:        %s\n", doc.ID)
		fmt.Printf("Имя:       %s\n", doc.Name)
		fmt.Printf("Тип:       %s\n", doc.ContentType)
		fmt.Printf("Размер:    %s\n", formatSize(doc.Size))
		if doc.Category != "" {
			fmt.Printf("Категория: %s\n", doc.Category)
		}
		if len(doc.Tags) > 0 {
			fmt.Printf("Теги:      %s\n", strings.Join(doc.Tags, ", "))
		}
		fmt.Printf("Избранное: %v\n", doc.Starred)
		fmt.Printf("Загружен:  %s\n", doc.UploadedAt.Format(time.RFC3339))
		fmt.Printf("Ссылка:    %s\n", doc.URL)

		return nil
	},
}
