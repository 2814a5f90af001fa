// cmd/client/cmd/docs/usage.go
package docs

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var usageVerbose bool

var UsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Занятое место в хранилище",
	Long:  `Показывает суммарный объём файлов пользователя на сервере.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		usage, err := app.StorageUsage(ctx)
		if err != nil {
			return fmt.Errorf("ошибка получения статистики: %w", err)
		}

		fmt.Printf("Файлов: %d, всего: %s\n", len(usage.Files), formatSize(usage.TotalBytes))

		if usageVerbose && len(usage.Files) > 0 {
			fmt.Println()
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "КЛЮЧ\tРАЗМЕР")
			for _, f := range usage.Files {
				fmt.Fprintf(w, "%s\t%s\n", f.Key, formatSize(f.Size))
			}
			if err := w.Flush(); err != nil {
				return err
			}
		}

		return nil
	},
}

func init() {
	UsageCmd.Flags().BoolVarP(&usageVerbose, "verbose", "v", false, "показать каждый файл")
}
