package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Vazio", input: "", expected: ""},
		{name: "Somente espaços", input: "   ", expected: ""},
		{name: "Quebra de linha no final", input: "https://hook.example.com/a\r\n", expected: "https://hook.example.com/a"},
		{name: "Aspas duplas", input: `"https://hook.example.com/a"`, expected: "https://hook.example.com/a"},
		{name: "Aspas simples com espaços", input: "' https://hook.example.com/a '", expected: "https://hook.example.com/a"},
		{name: "Aspa sem par", input: `"https://hook.example.com/a`, expected: `"https://hook.example.com/a`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanURL(tt.input))
		})
	}
}

func TestConfig_Normalize(t *testing.T) {
	cfg := &Config{
		Database: Database{Driver: " Postgres ", URL: "localhost:5432/ranks", User: "u", Password: "p"},
		WeCom:    WeCom{FallbackWebhookURL: "'https://wecom.example.com/hook'"},
		Feishu:   Feishu{WebhookURL: "https://feishu.example.com/hook\n"},
	}

	cfg.Normalize()

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://u:p@localhost:5432/ranks", cfg.Database.DSN)
	assert.Equal(t, "https://wecom.example.com/hook", cfg.WeCom.WebhookURL)
	assert.Equal(t, "https://feishu.example.com/hook", cfg.Feishu.WebhookURL)
	assert.Equal(t, WeComMarkdownMaxBytes, cfg.WeCom.MaxBytes)
}

func TestConfig_NormalizeDefaultsToSQLite(t *testing.T) {
	cfg := &Config{}
	cfg.Normalize()

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Empty(t, cfg.Database.DSN)
}

func TestConfig_Channels(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected []string
	}{
		{name: "Nenhum webhook", cfg: Config{}, expected: []string{}},
		{name: "Somente Feishu", cfg: Config{Feishu: Feishu{WebhookURL: "https://f"}}, expected: []string{"feishu"}},
		{name: "Somente WeCom pelo fallback", cfg: Config{WeCom: WeCom{FallbackWebhookURL: "https://w"}}, expected: []string{"wecom"}},
		{name: "Ambos", cfg: Config{Feishu: Feishu{WebhookURL: "https://f"}, WeCom: WeCom{WebhookURL: "https://w"}}, expected: []string{"feishu", "wecom"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.Normalize()

			names := make([]string, 0)
			for _, ch := range cfg.Channels() {
				names = append(names, ch.Name)
				if ch.Name == "wecom" {
					assert.Equal(t, WeComMarkdownMaxBytes, ch.MaxPayloadBytes)
					assert.True(t, ch.SplitDomains)
				}
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestNewConfig_CorsOrigins(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := NewConfig()

	assert.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CorsOrigins)
}
