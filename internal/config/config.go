package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	Geocoder            Geocoder            `mapstructure:",squash"`
	Notifications       Notifications       `mapstructure:",squash"`
	NotificationRefresh NotificationRefresh `mapstructure:",squash"`
	Seller              Seller              `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Geocoder configura o provedor de geocodificação (Nominatim/OpenStreetMap)
type Geocoder struct {
	SearchURL         string        `mapstructure:"geocoder_search_url"`
	ReverseURL        string        `mapstructure:"geocoder_reverse_url"`
	UserAgent         string        `mapstructure:"geocoder_user_agent"`
	CountryQualifier  string        `mapstructure:"geocoder_country_qualifier"`
	CacheTTL          time.Duration `mapstructure:"geocoder_cache_ttl"`
	Timeout           time.Duration `mapstructure:"geocoder_timeout"`
	RequestsPerSecond float64       `mapstructure:"geocoder_requests_per_second"`
}

type Notifications struct {
	FollowUpPrazoDays int           `mapstructure:"follow_up_prazo_days"`
	IDWindow          time.Duration `mapstructure:"notification_id_window"`
	DeliveryEnabled   bool          `mapstructure:"notification_delivery_enabled"`
	SoundEnabled      bool          `mapstructure:"notification_sound_enabled"`
	WebhookURL        string        `mapstructure:"notification_webhook_url"`
}

type NotificationRefresh struct {
	Interval time.Duration `mapstructure:"notification_refresh_interval"`
	Enabled  bool          `mapstructure:"notification_refresh_enabled"`
}

type Seller struct {
	Name string `mapstructure:"vendedor"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173,http://localhost:8080")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/visita360?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("GEOCODER_SEARCH_URL", "https://nominatim.openstreetmap.org/search")
	viper.SetDefault("GEOCODER_REVERSE_URL", "https://nominatim.openstreetmap.org/reverse")
	viper.SetDefault("GEOCODER_USER_AGENT", "Visita360 App (contact@example.com)") // Exigido pela API
	viper.SetDefault("GEOCODER_COUNTRY_QUALIFIER", "Brasil")
	viper.SetDefault("GEOCODER_CACHE_TTL", "24h")
	viper.SetDefault("GEOCODER_TIMEOUT", "10s")
	viper.SetDefault("GEOCODER_REQUESTS_PER_SECOND", 1) // Política de uso do Nominatim

	viper.SetDefault("FOLLOW_UP_PRAZO_DAYS", 3)
	viper.SetDefault("NOTIFICATION_ID_WINDOW", "24h") // Uma notificação por visita e tipo a cada janela
	viper.SetDefault("NOTIFICATION_DELIVERY_ENABLED", true)
	viper.SetDefault("NOTIFICATION_SOUND_ENABLED", false)
	viper.SetDefault("NOTIFICATION_WEBHOOK_URL", "")

	viper.SetDefault("NOTIFICATION_REFRESH_INTERVAL", "60s") // Verificar a cada minuto
	viper.SetDefault("NOTIFICATION_REFRESH_ENABLED", true)

	viper.SetDefault("VENDEDOR", "Jhone")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate verifica valores que tornariam o motor de notificações inconsistente
func (c *Config) Validate() error {
	if c.Notifications.FollowUpPrazoDays < 0 {
		return fmt.Errorf("config: FOLLOW_UP_PRAZO_DAYS não pode ser negativo: %d", c.Notifications.FollowUpPrazoDays)
	}

	if c.Geocoder.CacheTTL <= 0 {
		return fmt.Errorf("config: GEOCODER_CACHE_TTL deve ser positivo: %s", c.Geocoder.CacheTTL)
	}

	if c.Geocoder.UserAgent == "" {
		return fmt.Errorf("config: GEOCODER_USER_AGENT é obrigatório")
	}

	if c.NotificationRefresh.Enabled && c.NotificationRefresh.Interval <= 0 {
		return fmt.Errorf("config: NOTIFICATION_REFRESH_INTERVAL deve ser positivo: %s", c.NotificationRefresh.Interval)
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
