// cmd/client/cmd/docs/update.go
package docs

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"docvault/internal/domain/document"
)

var (
	updateName     string
	updateCategory string
	updateTags     []string
	updateStarred  bool
)

var UpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Изменить метаданные документа",
	Long: `Частичное обновление: меняются только поля, заданные флагами,
остальные остаются как были.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		var req document.UpdateRequest
		if cmd.Flags().Changed("name") {
			req.Name = &updateName
		}
		if cmd.Flags().Changed("category") {
			req.Category = &updateCategory
		}
		if cmd.Flags().Changed("tag") {
			req.Tags = &updateTags
		}
		if cmd.Flags().Changed("starred") {
			req.Starred = &updateStarred
		}

		if req.Name == nil && req.Category == nil && req.Tags == nil && req.Starred == nil {
			return fmt.Errorf("не указано ни одного поля для изменения")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.UpdateDocument(ctx, args[0], req); err != nil {
			return fmt.Errorf("ошибка обновления документа: %w", err)
		}

		fmt.Println("✅ Документ обновлён")

		return nil
	},
}

func init() {
	UpdateCmd.Flags().StringVar(&updateName, "name", "", "новое имя документа")
	UpdateCmd.Flags().StringVar(&updateCategory, "category", "", "новая категория")
	UpdateCmd.Flags().StringSliceVar(&updateTags, "tag", nil, "новый набор тегов")
	UpdateCmd.Flags().BoolVar(&updateStarred, "starred", false, "пометить как избранное")
}
