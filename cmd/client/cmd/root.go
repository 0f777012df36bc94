// cmd/client/cmd/root.go
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"usersapi/cmd/client/cmd/users"
	"usersapi/internal/app/client"
	"usersapi/internal/app/client/config"
	"usersapi/internal/utils/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	debug     bool
	serverURL string
	v         = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "usersctl",
	Short: "usersctl - клиент API пользователей",
	Long: `usersctl — консольный клиент для сервиса пользователей.

Позволяет просматривать, создавать, обновлять и удалять записи
через HTTP API сервера.`,
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
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	level := cfg.LogLevel
	if debug {
		level = "debug"
	} else if level == "" {
		level = "warn"
	}
	log := logger.NewWithLevel(cfg.Env, level)

	cmd.SetContext(client.NewContext(cmd.Context(), client.NewHTTPClient(cfg, log)))
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Ищем конфиг в стандартных местах
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".usersctl"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Конфиг не найден, используем значения по умолчанию
	}

	return config.MustLoad(v), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().Bool("json", false, "вывод в формате JSON")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес сервера, например localhost:3000")

	rootCmd.AddCommand(users.UsersCmd)
}
