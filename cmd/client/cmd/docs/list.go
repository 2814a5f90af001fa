// cmd/client/cmd/docs/list.go
package docs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"docvault/internal/domain/document"
)

var (
	listCategory string
	listFormat   string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список документов",
	Long:  `Просмотр всех документов пользователя с фильтрацией по категории.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		documents, err := app.ListDocuments(ctx, listCategory)
		if err != nil {
			return fmt.Errorf("ошибка получения списка документов: %w", err)
		}

		switch listFormat {
		case "json":
			return printDocumentsJSON(documents)
		default:
			return printDocumentsTable(documents)
		}
	},
}

func printDocumentsJSON(documents []document.Document) error {
	data, err := json.MarshalIndent(documents, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printDocumentsTable(documents []document.Document) error {
	if len(documents) == 0 {
		fmt.Println("Документы не найдены")
		return nil
	}

	fmt.Printf("Найдено документов: %d\n\n", len(documents))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tИМЯ\tКАТЕГОРИЯ\tРАЗМЕР\tЗАГРУЖЕН")
	for _, doc := range documents {
		starred := ""
		if doc.Starred {
			starred = " ★"
		}
		fmt.Fprintf(w, "%s\t%s%s\t%s\t%s\t%s\n",
			doc.ID,
			doc.Name, starred,
			doc.Category,
			formatSize(doc.Size),
			doc.UploadedAt.Format("2006-01-02 15:04"),
		)
	}
	return w.Flush()
}

func formatSize(size int64) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(size)/(1<<10))
	default:
		return fmt.Sprintf("%d B", size)
	}
}

func init() {
	ListCmd.Flags().StringVarP(&listCategory, "category", "c", "", "фильтр по категории")
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "формат вывода: table, json")
}
