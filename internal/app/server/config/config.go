package config

import (
	"log"
	"net"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	defaultPort       = "3000"
	defaultDBHost     = "postgres-db"
	defaultDBPort     = 5432
	defaultDBName     = "crud_db"
	defaultDBUser     = "postgres"
	defaultDBPassword = "postgres"
	defaultEnv        = EnvProd
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Logger Logger
}

// DB - параметры подключения. URL (DATABASE_URL) имеет приоритет над остальными полями
type DB struct {
	URL        string `env:"DATABASE_URL"`
	Host       string `env:"DB_HOST"`
	Port       int    `env:"DB_PORT"`
	Name       string `env:"POSTGRES_DB"`
	User       string `env:"POSTGRES_USER"`
	Password   string `env:"POSTGRES_PASSWORD"`
	SSL        bool   `env:"DATABASE_SSL"`
	Migrations string `env:"MIGRATIONS_PATH"`
}

type Server struct {
	Port string `env:"PORT"`
}

type Logger struct {
	LogLevel string `env:"LOG_LEVEL"`
}

// MustLoad читает .env (если есть) и переменные окружения
func MustLoad() *Config {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			log.Println("failed to load .env file, relying on environment variables:", err)
		}
	}

	return Load(viper.New())
}

// Load собирает Config из viper с автоматическим чтением окружения
func Load(v *viper.Viper) *Config {
	v.AutomaticEnv()

	v.SetDefault("PORT", defaultPort)
	v.SetDefault("DB_HOST", defaultDBHost)
	v.SetDefault("DB_PORT", defaultDBPort)
	v.SetDefault("POSTGRES_DB", defaultDBName)
	v.SetDefault("POSTGRES_USER", defaultDBUser)
	v.SetDefault("POSTGRES_PASSWORD", defaultDBPassword)
	v.SetDefault("DATABASE_SSL", false)
	v.SetDefault("APP_ENV", defaultEnv)

	return &Config{
		Env: v.GetString("APP_ENV"),
		DB: DB{
			URL:        v.GetString("DATABASE_URL"),
			Host:       v.GetString("DB_HOST"),
			Port:       v.GetInt("DB_PORT"),
			Name:       v.GetString("POSTGRES_DB"),
			User:       v.GetString("POSTGRES_USER"),
			Password:   v.GetString("POSTGRES_PASSWORD"),
			SSL:        v.GetBool("DATABASE_SSL"),
			Migrations: v.GetString("MIGRATIONS_PATH"),
		},
		Server: Server{Port: v.GetString("PORT")},
		Logger: Logger{LogLevel: v.GetString("LOG_LEVEL")},
	}
}

// ConnString возвращает строку подключения в формате postgres://
func (d DB) ConnString() string {
	if d.URL != "" {
		if !d.SSL {
			return d.URL
		}
		return withSSL(d.URL)
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.Name,
	}
	q := url.Values{}
	if d.SSL {
		q.Set("sslmode", "require")
	} else {
		q.Set("sslmode", "disable")
	}
	u.RawQuery = q.Encode()

	return u.String()
}

// withSSL добавляет sslmode=require, если sslmode не задан явно
func withSSL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if q.Get("sslmode") != "" {
		return raw
	}
	q.Set("sslmode", "require")
	u.RawQuery = q.Encode()
	return u.String()
}

func (s Server) Addr() string {
	return ":" + s.Port
}
