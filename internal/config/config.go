package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Режимы хранения
const (
	ModeDatabase = "database"
	ModeFile     = "file"
	ModeMemory   = "in-memory"
)

// Config хранит конфигурацию сервера
type Config struct {
	ServerAddress   string
	GRPCAddress     string
	DatabaseDSN     string
	FileStoragePath string
	JWTSecret       string
	TokenTTL        time.Duration
	AllowedOrigins  []string
	EnableHTTPS     bool
	TLSCertPath     string
	TLSKeyPath      string
	LogLevel        string
	Mode            string
}

var defaults = map[string]any{
	"SERVER_ADDRESS":    "localhost:8080",
	"GRPC_ADDRESS":      "localhost:3200",
	"DATABASE_DSN":      "",
	"FILE_STORAGE_PATH": "",
	"JWT_SECRET":        "",
	"TOKEN_TTL":         "24h",
	"ALLOWED_ORIGINS":   "*",
	"ENABLE_HTTPS":      false,
	"TLS_CERT_PATH":     "cert.pem",
	"TLS_KEY_PATH":      "key.pem",
	"LOG_LEVEL":         "info",
}

// Load собирает конфигурацию. Приоритет: флаг > переменная окружения > JSON-файл > значение по умолчанию.
func Load(args []string) (*Config, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	fs := flag.NewFlagSet("secondbrain", flag.ContinueOnError)
	flags := map[string]*string{
		"SERVER_ADDRESS":    fs.String("a", "", "HTTP server address"),
		"GRPC_ADDRESS":      fs.String("g", "", "gRPC server address, \"-\" disables gRPC"),
		"DATABASE_DSN":      fs.String("d", "", "PostgreSQL DSN"),
		"FILE_STORAGE_PATH": fs.String("f", "", "file storage path (JSON lines)"),
		"JWT_SECRET":        fs.String("j", "", "token signing secret"),
		"TOKEN_TTL":         fs.String("ttl", "", "token lifetime, e.g. 24h"),
		"ALLOWED_ORIGINS":   fs.String("origins", "", "comma separated CORS origins"),
		"TLS_CERT_PATH":     fs.String("cert", "", "path to TLS certificate"),
		"TLS_KEY_PATH":      fs.String("key", "", "path to TLS key"),
		"LOG_LEVEL":         fs.String("l", "", "log level"),
	}
	enableHTTPS := fs.Bool("s", false, "enable HTTPS")
	configPath := fs.String("c", "", "path to JSON config file")
	fs.StringVar(configPath, "config", "", "path to JSON config file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// JSON-файл подменяет значения по умолчанию
	if *configPath == "" {
		*configPath = os.Getenv("CONFIG")
	}
	if *configPath != "" {
		if err := applyFile(v, *configPath); err != nil {
			return nil, err
		}
	}

	// Читаем .env, если есть (не переопределяет переменные окружения!)
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // Ошибку игнорируем, если файла нет

	v.AutomaticEnv()

	for key, val := range flags {
		if *val != "" {
			v.Set(key, *val)
		}
	}
	if *enableHTTPS {
		v.Set("ENABLE_HTTPS", true)
	}

	ttl, err := time.ParseDuration(v.GetString("TOKEN_TTL"))
	if err != nil {
		return nil, fmt.Errorf("TOKEN_TTL: %w", err)
	}

	cfg := &Config{
		ServerAddress:   v.GetString("SERVER_ADDRESS"),
		GRPCAddress:     v.GetString("GRPC_ADDRESS"),
		DatabaseDSN:     v.GetString("DATABASE_DSN"),
		FileStoragePath: v.GetString("FILE_STORAGE_PATH"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		TokenTTL:        ttl,
		AllowedOrigins:  splitList(v.GetString("ALLOWED_ORIGINS")),
		EnableHTTPS:     v.GetBool("ENABLE_HTTPS"),
		TLSCertPath:     v.GetString("TLS_CERT_PATH"),
		TLSKeyPath:      v.GetString("TLS_KEY_PATH"),
		LogLevel:        v.GetString("LOG_LEVEL"),
	}
	if cfg.GRPCAddress == "-" {
		cfg.GRPCAddress = ""
	}

	// Определяем режим работы
	switch {
	case cfg.DatabaseDSN != "":
		cfg.Mode = ModeDatabase
	case cfg.FileStoragePath != "":
		cfg.Mode = ModeFile
	default:
		cfg.Mode = ModeMemory
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFile читает JSON-файл отдельным экземпляром viper и подставляет
// известные ключи вместо значений по умолчанию.
func applyFile(v *viper.Viper, path string) error {
	fv := viper.New()
	fv.SetConfigFile(path)
	fv.SetConfigType("json")
	if err := fv.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file %q: %w", path, err)
	}

	for key := range defaults {
		if fv.IsSet(key) {
			v.SetDefault(key, fv.Get(key))
		}
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate проверяет корректность конфигурации
func (cfg *Config) Validate() error {
	if cfg.ServerAddress == "" {
		return errors.New("адрес сервера не может быть пустым")
	}
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET не может быть пустым")
	}
	if cfg.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL должен быть положительным")
	}
	if cfg.EnableHTTPS && (cfg.TLSCertPath == "" || cfg.TLSKeyPath == "") {
		return errors.New("для HTTPS нужны пути к сертификату и ключу")
	}
	return nil
}
