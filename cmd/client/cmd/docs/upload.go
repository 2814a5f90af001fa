// cmd/client/cmd/docs/upload.go
package docs

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	uploadCategory string
	uploadTags     []string
)

var UploadCmd = &cobra.Command{
	Use:   "upload <файл>",
	Short: "Загрузить документ на сервер",
	Long: `Читает файл с диска и загружает его на сервер DocVault.

Имя и MIME-тип определяются по файлу, категорию и теги можно
указать флагами.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		doc, err := app.UploadFile(ctx, args[0], uploadCategory, uploadTags,
			func(percent int, stage string) {
				fmt.Printf("  %3d%% %s\n", percent, stage)
			})
		if err != nil {
			return fmt.Errorf("ошибка загрузки: %w", err)
		}

		fmt.Println()
		fmt.Printf("✅ Документ загружен: %s (id: %s)\n", doc.Name, doc.ID)

		return nil
	},
}

func init() {
	UploadCmd.Flags().StringVarP(&uploadCategory, "category", "c", "", "категория документа")
	UploadCmd.Flags().StringSliceVarP(&uploadTags, "tag", "t", nil, "теги документа (можно несколько)")
}
