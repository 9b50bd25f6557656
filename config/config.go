// Package config loads the service configuration once at process start.
// Components receive the resulting Config at construction time and never read
// the environment themselves.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/radhian/remittance-docgen/consts"
)

// ErrConfiguration marks missing or malformed configuration.
var ErrConfiguration = errors.New("configuration error")

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Name     string
	Password string
}

type Config struct {
	BaseDir string

	NotionToken           string
	NotionBaseURL         string
	NotionVersion         string
	NotionTimeout         time.Duration
	RemitterDatabaseID    string
	BeneficiaryDatabaseID string

	TemplatePath          string
	TemplateCaseSensitive bool
	SignatureWidthMM      int
	DefaultCharges        string
	OutputDir             string

	// AllowLocalAssets permits plain http and loopback or private hosts for
	// signature downloads. Development only.
	AllowLocalAssets bool

	Port     string
	LogLevel string

	RedisAddr      string
	SchemaCacheTTL time.Duration

	DB DBConfig
}

// LoadFromEnv reads baseDir/.env (when present) and then the process
// environment. Variables already set in the environment win over the file.
func LoadFromEnv(baseDir string) (Config, error) {
	if err := godotenv.Load(filepath.Join(baseDir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: failed to read .env: %v", ErrConfiguration, err)
	}

	cfg := Config{
		BaseDir:               baseDir,
		NotionToken:           strings.TrimSpace(os.Getenv("NOTION_TOKEN")),
		NotionBaseURL:         getenv("NOTION_BASE_URL", consts.DefaultNotionBaseURL),
		NotionVersion:         getenv("NOTION_VERSION", consts.DefaultNotionVersion),
		RemitterDatabaseID:    strings.TrimSpace(os.Getenv("REMITTER_DATABASE_ID")),
		BeneficiaryDatabaseID: strings.TrimSpace(os.Getenv("BENEFICIARY_DATABASE_ID")),
		TemplatePath:          strings.TrimSpace(os.Getenv("TT_TEMPLATE")),
		OutputDir:             strings.TrimSpace(os.Getenv("OUTPUT_DIR")),
		DefaultCharges:        os.Getenv("DEFAULT_CHARGES"),
		Port:                  getenv("PORT", consts.DefaultPort),
		LogLevel:              getenv("LOG_LEVEL", "info"),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
		DB: DBConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     getenv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Name:     os.Getenv("DB_NAME"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	var err error
	if cfg.NotionTimeout, err = getenvDuration("NOTION_TIMEOUT", consts.DefaultNotionTimeout); err != nil {
		return Config{}, err
	}
	if cfg.SchemaCacheTTL, err = getenvDuration("SCHEMA_CACHE_TTL", consts.DefaultSchemaCacheTTL); err != nil {
		return Config{}, err
	}
	if cfg.SignatureWidthMM, err = getenvInt("SIGNATURE_WIDTH_MM", consts.DefaultSignatureWidthMM); err != nil {
		return Config{}, err
	}
	if cfg.TemplateCaseSensitive, err = getenvBool("TEMPLATE_CASE_SENSITIVE", false); err != nil {
		return Config{}, err
	}
	if cfg.AllowLocalAssets, err = getenvBool("ALLOW_LOCAL_ASSETS", false); err != nil {
		return Config{}, err
	}

	if cfg.NotionTimeout <= 0 {
		return Config{}, fmt.Errorf("%w: NOTION_TIMEOUT must be > 0", ErrConfiguration)
	}
	if cfg.SignatureWidthMM <= 0 {
		return Config{}, fmt.Errorf("%w: SIGNATURE_WIDTH_MM must be > 0", ErrConfiguration)
	}

	return cfg, nil
}

// Validate checks the credentials and the template artifact.
func (c Config) Validate() error {
	if c.NotionToken == "" {
		return fmt.Errorf("%w: NOTION_TOKEN missing", ErrConfiguration)
	}
	if !strings.HasPrefix(c.NotionToken, "secret_") && !strings.HasPrefix(c.NotionToken, "ntn_") {
		return fmt.Errorf("%w: NOTION_TOKEN must start with 'secret_' or 'ntn_'", ErrConfiguration)
	}
	if len(c.RemitterDatabaseID) != 32 || len(c.BeneficiaryDatabaseID) != 32 {
		return fmt.Errorf("%w: database IDs must be 32 characters (no dashes)", ErrConfiguration)
	}
	_, err := c.TemplateFile()
	return err
}

// TemplateFile resolves the template path against BaseDir and checks it exists.
func (c Config) TemplateFile() (string, error) {
	if c.TemplatePath == "" {
		return "", fmt.Errorf("%w: TT_TEMPLATE missing", ErrConfiguration)
	}

	p := c.TemplatePath
	if !filepath.IsAbs(p) {
		p = filepath.Join(c.BaseDir, p)
	}
	p, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("%w: invalid template path %q: %v", ErrConfiguration, c.TemplatePath, err)
	}

	if _, err := os.Stat(p); err != nil {
		return "", fmt.Errorf("%w: template not found: %s", ErrConfiguration, p)
	}
	return p, nil
}

// OutputRoot is the absolute directory documents may be written under:
// OUTPUT_DIR resolved against BaseDir, or BaseDir itself.
func (c Config) OutputRoot() (string, error) {
	dir := c.OutputDir
	if dir == "" {
		dir = c.BaseDir
	} else if !filepath.IsAbs(dir) {
		dir = filepath.Join(c.BaseDir, dir)
	}

	root, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: invalid output dir %q: %v", ErrConfiguration, c.OutputDir, err)
	}
	return root, nil
}

func (c Config) DBEnabled() bool {
	return c.DB.Host != ""
}

func (c Config) DBURI() string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s",
		c.DB.Host, c.DB.Port, c.DB.User, c.DB.Name, c.DB.Password)
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrConfiguration, k)
	}
	return n, nil
}

func getenvBool(k string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean", ErrConfiguration, k)
	}
	return b, nil
}

func getenvDuration(k string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a duration (e.g. 30s)", ErrConfiguration, k)
	}
	return d, nil
}
