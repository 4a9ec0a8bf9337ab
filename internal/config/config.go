package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/vfg2006/weekly-rank-digest/internal/domain"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	// WeComMarkdownMaxBytes é o limite do WeCom para uma mensagem markdown (UTF-8); acima disso o bot responde 40058
	WeComMarkdownMaxBytes = 4096
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Stores       Stores       `mapstructure:",squash"`
	Report       Report       `mapstructure:",squash"`
	Feishu       Feishu       `mapstructure:",squash"`
	WeCom        WeCom        `mapstructure:",squash"`
	WeeklyDigest WeeklyDigest `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host        string   `mapstructure:"host"`
	Port        string   `mapstructure:"port"`
	CorsOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Database descreve o driver usado para abrir os bancos de ranking.
// Para sqlite o DSN é o caminho do arquivo de cada domínio.
type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Stores struct {
	VideosDBPath      string `mapstructure:"videos_db_path"`
	SensorTowerDBPath string `mapstructure:"sensortower_db_path"`
}

type Report struct {
	OutputDir             string `mapstructure:"output_dir"`
	DryRun                bool   `mapstructure:"dry_run"`
	DetailLink            string `mapstructure:"detail_link"`
	NewEntrantRankCeiling int    `mapstructure:"new_entrant_rank_ceiling"`
	SurgeLimit            int    `mapstructure:"surge_limit"`
	DigestTitle           string `mapstructure:"digest_title"`
}

type Feishu struct {
	WebhookURL string        `mapstructure:"feishu_webhook_url"`
	Timeout    time.Duration `mapstructure:"feishu_timeout"`
}

type WeCom struct {
	WebhookURL         string        `mapstructure:"wecom_webhook_url_real"`
	FallbackWebhookURL string        `mapstructure:"wecom_webhook_url"`
	Timeout            time.Duration `mapstructure:"wecom_timeout"`
	MaxBytes           int           `mapstructure:"wecom_max_bytes"`
}

type WeeklyDigest struct {
	CronSchedule string `mapstructure:"weekly_digest_cron"`
	Enabled      bool   `mapstructure:"weekly_digest_enabled"`
}

type Auth struct {
	LoginUsername     string `mapstructure:"login_username"`
	LoginPasswordHash string `mapstructure:"login_password_hash"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 3001)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173,https://olivr-hzk.github.io")

	viper.SetDefault("DATABASE_DRIVER", DriverSQLite)
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DATABASE_USER", "")
	viper.SetDefault("DATABASE_PASSWORD", "")

	viper.SetDefault("VIDEOS_DB_PATH", "public/videos.db")
	viper.SetDefault("SENSORTOWER_DB_PATH", "public/sensortower_top100.db")

	viper.SetDefault("OUTPUT_DIR", "")
	viper.SetDefault("DRY_RUN", false)
	viper.SetDefault("DETAIL_LINK", "https://olivr-hzk.github.io/monitor-web/")
	viper.SetDefault("NEW_ENTRANT_RANK_CEILING", 50) // Top50 de novos no ranking
	viper.SetDefault("SURGE_LIMIT", 10)              // Top10 de maiores subidas
	viper.SetDefault("DIGEST_TITLE", "小游戏周报（微信/抖音 + SensorTower）")

	viper.SetDefault("FEISHU_WEBHOOK_URL", "")
	viper.SetDefault("FEISHU_TIMEOUT", "15s")
	viper.SetDefault("WECOM_WEBHOOK_URL_REAL", "")
	viper.SetDefault("WECOM_WEBHOOK_URL", "")
	viper.SetDefault("WECOM_TIMEOUT", "15s")
	viper.SetDefault("WECOM_MAX_BYTES", WeComMarkdownMaxBytes)

	viper.SetDefault("WEEKLY_DIGEST_CRON", "0 10 * * 1") // Toda segunda-feira às 10h
	viper.SetDefault("WEEKLY_DIGEST_ENABLED", false)

	viper.SetDefault("SECRET_KEY", "monitor-web-secret-change-in-production")
	viper.SetDefault("LOGIN_USERNAME", "admin")
	viper.SetDefault("LOGIN_PASSWORD_HASH", "")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Debug("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Normalize()

	return config, nil
}

// Normalize limpa URLs e aplica os valores derivados
func (c *Config) Normalize() {
	c.Feishu.WebhookURL = CleanURL(c.Feishu.WebhookURL)
	c.WeCom.WebhookURL = CleanURL(c.WeCom.WebhookURL)
	c.WeCom.FallbackWebhookURL = CleanURL(c.WeCom.FallbackWebhookURL)
	if c.WeCom.WebhookURL == "" {
		c.WeCom.WebhookURL = c.WeCom.FallbackWebhookURL
	}
	if c.WeCom.MaxBytes <= 0 {
		c.WeCom.MaxBytes = WeComMarkdownMaxBytes
	}

	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	if c.Database.Driver == "" {
		c.Database.Driver = DriverSQLite
	}

	if c.Database.Driver == DriverPostgres && c.Database.URL != "" {
		c.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			c.Database.Driver,
			c.Database.User,
			c.Database.Password,
			c.Database.URL,
		)
	}
}

// Channels devolve os canais com webhook configurado: Feishu (cartão) e WeCom (markdown limitado, um envio por domínio)
func (c *Config) Channels() []domain.DeliveryChannel {
	channels := make([]domain.DeliveryChannel, 0, 2)

	if c.Feishu.WebhookURL != "" {
		channels = append(channels, domain.DeliveryChannel{
			Name:         "feishu",
			EndpointURL:  c.Feishu.WebhookURL,
			PayloadStyle: domain.PayloadCardWithTitle,
			Timeout:      c.Feishu.Timeout,
		})
	}

	if c.WeCom.WebhookURL != "" {
		channels = append(channels, domain.DeliveryChannel{
			Name:            "wecom",
			EndpointURL:     c.WeCom.WebhookURL,
			PayloadStyle:    domain.PayloadPlainMarkdown,
			MaxPayloadBytes: c.WeCom.MaxBytes,
			Timeout:         c.WeCom.Timeout,
			SplitDomains:    true,
		})
	}

	return channels
}

// CleanURL remove quebras de linha, espaços e aspas que costumam vir de arquivos .env
func CleanURL(value string) string {
	v := strings.ReplaceAll(value, "\r", "")
	v = strings.ReplaceAll(v, "\n", "")
	v = strings.TrimSpace(v)

	if len(v) >= 2 && ((v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'')) {
		v = strings.TrimSpace(v[1 : len(v)-1])
	}

	return v
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de: ", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Debug("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
