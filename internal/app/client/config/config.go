package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress = "localhost:3000"
	defaultEnv           = "prod"
	defaultTimeout       = 30 * time.Second
)

type Config struct {
	Env           string        `mapstructure:"app_env"`
	ServerAddress string        `mapstructure:"server_address"`
	LogLevel      string        `mapstructure:"log_level"`
	Timeout       time.Duration `mapstructure:"client_timeout"`
}

// MustLoad загружает конфигурацию клиента
func MustLoad(v *viper.Viper) *Config {
	// Загружаем .env файл если существует
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
		}
	}

	v.AutomaticEnv()

	// Устанавливаем значения по умолчанию
	v.SetDefault("APP_ENV", defaultEnv)
	v.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	v.SetDefault("CLIENT_TIMEOUT", defaultTimeout)

	config := &Config{
		Env:           v.GetString("APP_ENV"),
		ServerAddress: v.GetString("SERVER_ADDRESS"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		Timeout:       v.GetDuration("CLIENT_TIMEOUT"),
	}

	if err := config.validate(); err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}

	return config
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.ServerAddress) == "" {
		return fmt.Errorf("server_address не может быть пустым")
	}
	return nil
}

// BaseURL - адрес сервера со схемой; без схемы подразумевается http://
func (c *Config) BaseURL() string {
	addr := strings.TrimRight(c.ServerAddress, "/")
	if strings.Contains(addr, "://") {
		return addr
	}
	return "http://" + addr
}
