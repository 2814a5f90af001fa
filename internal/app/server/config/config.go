package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress = "localhost:8080"
	defaultLogLevel   = "info"
	defaultEnv        = EnvLocal
	defaultMigrations = "migrations"
	defaultS3Region   = "us-east-1"
)

// placeholderValues — значения-заглушки из примеров .env файлов.
// Считаются отсутствующими при валидации.
var placeholderValues = []string{"changeme", "your-", "example", "xxx"}

type Config struct {
	Env    string
	DB     DB
	Server Server
	S3     S3
	Admin  Admin
	Logger Logger
}

type DB struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type Server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type S3 struct {
	Endpoint  string `env:"S3_ENDPOINT"`
	Region    string `env:"S3_REGION"`
	Bucket    string `env:"S3_BUCKET"`
	AccessKey string `env:"S3_ACCESS_KEY"`
	SecretKey string `env:"S3_SECRET_KEY"`
}

type Admin struct {
	// Token защищает админские операции. Пустое значение отключает их.
	Token string `env:"ADMIN_TOKEN"`
	// TestUserIDs — список email тестовых пользователей для массового
	// удаления, через запятую.
	TestUserIDs string `env:"TEST_USER_IDS"`
}

type Logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load читает .env (если есть) и переменные окружения.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("RUN_ADDRESS", defaultRunAddress)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("MIGRATIONS_PATH", defaultMigrations)
	viper.SetDefault("S3_REGION", defaultS3Region)

	return &Config{
		Env: viper.GetString("app_env"),
		DB: DB{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: Server{RunAddress: viper.GetString("run_address")},
		S3: S3{
			Endpoint:  viper.GetString("s3_endpoint"),
			Region:    viper.GetString("s3_region"),
			Bucket:    viper.GetString("s3_bucket"),
			AccessKey: viper.GetString("s3_access_key"),
			SecretKey: viper.GetString("s3_secret_key"),
		},
		Admin: Admin{
			Token:       viper.GetString("admin_token"),
			TestUserIDs: viper.GetString("test_user_ids"),
		},
		Logger: Logger{LogLevel: viper.GetString("log_level")},
	}
}

// MustLoad загружает и валидирует конфигурацию. В prod отсутствие
// обязательных значений фатально — до инициализации сетевых клиентов.
func MustLoad() *Config {
	cfg := Load()
	if err := cfg.Validate(); err != nil {
		if cfg.Env == EnvProd {
			log.Fatalf("configuration is invalid:\n%v", err)
		}
		log.Printf("configuration warnings (non-prod, continuing):\n%v", err)
	}
	return cfg
}

// Validate проверяет наличие и вид обязательных значений и возвращает
// ВСЕ найденные проблемы одной ошибкой, а не первую попавшуюся.
func (c *Config) Validate() error {
	var errs []error

	required := []struct {
		name  string
		value string
	}{
		{"DATABASE_URI", c.DB.DatabaseURI},
		{"RUN_ADDRESS", c.Server.RunAddress},
		{"S3_ENDPOINT", c.S3.Endpoint},
		{"S3_BUCKET", c.S3.Bucket},
		{"S3_ACCESS_KEY", c.S3.AccessKey},
		{"S3_SECRET_KEY", c.S3.SecretKey},
	}

	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("%s is not set", r.name))
			continue
		}
		if isPlaceholder(r.value) {
			errs = append(errs, fmt.Errorf("%s contains a placeholder value", r.name))
		}
	}

	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		errs = append(errs, fmt.Errorf("APP_ENV must be one of local, dev, prod (got %q)", c.Env))
	}

	return errors.Join(errs...)
}

// TestUsers разбирает TEST_USER_IDS в список, отбрасывая пустые элементы.
func (c *Config) TestUsers() []string {
	if c.Admin.TestUserIDs == "" {
		return nil
	}
	var ids []string
	for _, part := range strings.Split(c.Admin.TestUserIDs, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func isPlaceholder(v string) bool {
	lower := strings.ToLower(v)
	for _, p := range placeholderValues {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
