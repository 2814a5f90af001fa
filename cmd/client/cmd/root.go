// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/slog"

	"docvault/cmd/client/cmd/types"
	"docvault/internal/app/client"
	"docvault/internal/app/client/config"
	"docvault/internal/app/client/notify"
	"docvault/internal/utils/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
	debug     bool
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "docvault",
	Short: "DocVault - клиент для хранения документов",
	Long: `DocVault — это клиентское приложение для загрузки и управления
документами: файлы хранятся на сервере, а настройки и сессия
кэшируются локально.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	// Загружаем конфигурацию
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}
	if debug {
		cfg.Env = "dev"
	}

	// Настраиваем логгер
	log = logger.New(cfg.Env)

	// Создаем приложение
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	// Уведомления приложения печатаем в терминал по мере появления
	renderNotifications(app.Notifications())

	// Кладём приложение в контекст для подкоманд
	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))

	return nil
}

// renderNotifications печатает каждое новое уведомление цветом по типу.
func renderNotifications(m *notify.Manager) {
	var lastSeen int
	m.Subscribe(func(items []notify.Notification) {
		if len(items) <= lastSeen {
			lastSeen = len(items)
			return
		}
		for _, n := range items[lastSeen:] {
			line := fmt.Sprintf("[%s] %s", n.Title, n.Message)
			switch n.Type {
			case notify.TypeSuccess:
				color.Green(line)
			case notify.TypeError:
				color.Red(line)
			case notify.TypeWarning:
				color.Yellow(line)
			default:
				color.Cyan(line)
			}
		}
		lastSeen = len(items)
	})
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Ищем конфиг в стандартных местах
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		configDir := filepath.Join(home, ".docvault")
		viper.AddConfigPath(configDir)
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Конфиг не найден, используем значения по умолчанию
	}

	return config.MustLoad(), nil
}

func init() {
	cobra.OnInitialize()

	// Глобальные флаги
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес сервера DocVault")

	// Команды будут добавлены в init() соответствующих файлов
}
