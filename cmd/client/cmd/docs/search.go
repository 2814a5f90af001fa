// cmd/client/cmd/docs/search.go
package docs

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var SearchCmd = &cobra.Command{
	Use:   "search <запрос>",
	Short: "Поиск документов",
	Long:  `Ищет документы по имени и тегам без учёта регистра.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		documents, err := app.SearchDocuments(ctx, args[0])
		if err != nil {
			return fmt.Errorf("ошибка поиска: %w", err)
		}

		return printDocumentsTable(documents)
	},
}
