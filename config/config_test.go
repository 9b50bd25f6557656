package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDatabaseID = "0123456789abcdef0123456789abcdef"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"NOTION_TOKEN", "NOTION_BASE_URL", "NOTION_VERSION", "NOTION_TIMEOUT",
		"REMITTER_DATABASE_ID", "BENEFICIARY_DATABASE_ID", "TT_TEMPLATE",
		"DEFAULT_CHARGES", "PORT", "LOG_LEVEL", "REDIS_ADDR", "SCHEMA_CACHE_TTL",
		"SIGNATURE_WIDTH_MM", "TEMPLATE_CASE_SENSITIVE", "DB_HOST", "OUTPUT_DIR",
		"ALLOW_LOCAL_ASSETS",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromEnv(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "5055", cfg.Port)
	assert.Equal(t, "https://api.notion.com/v1", cfg.NotionBaseURL)
	assert.Equal(t, "2022-06-28", cfg.NotionVersion)
	assert.Equal(t, 30*time.Second, cfg.NotionTimeout)
	assert.Equal(t, 40, cfg.SignatureWidthMM)
	assert.False(t, cfg.TemplateCaseSensitive)
	assert.False(t, cfg.AllowLocalAssets)
	assert.False(t, cfg.DBEnabled())
}

func TestLoadFromEnv_ReadsDotEnvWithoutOverridingEnvironment(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	content := "PORT=9090\nTT_TEMPLATE=tt.docx\nTEMPLATE_CASE_SENSITIVE=true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644))
	t.Setenv("PORT", "7070")

	cfg, err := LoadFromEnv(dir)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "tt.docx", cfg.TemplatePath)
	assert.True(t, cfg.TemplateCaseSensitive)
}

func TestLoadFromEnv_Malformed(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "timeout not a duration", key: "NOTION_TIMEOUT", val: "soon"},
		{name: "timeout not positive", key: "NOTION_TIMEOUT", val: "0s"},
		{name: "width not an integer", key: "SIGNATURE_WIDTH_MM", val: "wide"},
		{name: "width not positive", key: "SIGNATURE_WIDTH_MM", val: "-1"},
		{name: "case policy not a bool", key: "TEMPLATE_CASE_SENSITIVE", val: "maybe"},
		{name: "local assets not a bool", key: "ALLOW_LOCAL_ASSETS", val: "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := LoadFromEnv(t.TempDir())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tt.docx"), []byte("x"), 0o644))

	valid := Config{
		BaseDir:               dir,
		NotionToken:           "ntn_abc",
		RemitterDatabaseID:    testDatabaseID,
		BeneficiaryDatabaseID: testDatabaseID,
		TemplatePath:          "tt.docx",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(c *Config)
		errText string
	}{
		{name: "missing token", mutate: func(c *Config) { c.NotionToken = "" }, errText: "NOTION_TOKEN missing"},
		{name: "bad token prefix", mutate: func(c *Config) { c.NotionToken = "abc" }, errText: "must start with"},
		{name: "short database id", mutate: func(c *Config) { c.RemitterDatabaseID = "abc" }, errText: "32 characters"},
		{name: "missing template", mutate: func(c *Config) { c.TemplatePath = "" }, errText: "TT_TEMPLATE missing"},
		{name: "template not found", mutate: func(c *Config) { c.TemplatePath = "nope.docx" }, errText: "template not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfiguration)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestTemplateFile_ResolvesRelativeToBaseDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tt.docx"), []byte("x"), 0o644))

	p, err := Config{BaseDir: dir, TemplatePath: "tt.docx"}.TemplateFile()
	require.NoError(t, err)

	want, err := filepath.Abs(filepath.Join(dir, "tt.docx"))
	require.NoError(t, err)
	assert.Equal(t, want, p)
}

func TestOutputRoot(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()

	tests := []struct {
		name      string
		outputDir string
		want      string
	}{
		{name: "defaults to base dir", outputDir: "", want: dir},
		{name: "relative to base dir", outputDir: "out", want: filepath.Join(dir, "out")},
		{name: "absolute", outputDir: other, want: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Config{BaseDir: dir, OutputDir: tt.outputDir}.OutputRoot()
			require.NoError(t, err)

			want, err := filepath.Abs(tt.want)
			require.NoError(t, err)
			assert.Equal(t, want, root)
		})
	}
}
