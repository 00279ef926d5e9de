package config

type ServerConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	BasePath string `yaml:"base_path"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// DriveConfig : настройки провайдера хранилища (Google Drive v3)
type DriveConfig struct {
	// Путь до JSON-ключа сервисного аккаунта
	ServiceAccountFile string `yaml:"service_account_file"`
	// Общий диск, внутри которого создаются папки учеников
	SharedDriveID string `yaml:"shared_drive_id"`
}

type JWTConfig struct {
	SecretKey       string `yaml:"secret_key"`
	AccessTokenTTL  string `yaml:"access_token_ttl"`
	RefreshTokenTTL string `yaml:"refresh_token_ttl"`
}

// GoogleOAuthConfig : client id нужен как audience при проверке Google ID-токенов
type GoogleOAuthConfig struct {
	ClientID string `yaml:"client_id"`
}

type WebhookConfig struct {
	URL     string `yaml:"url"`
	Timeout string `yaml:"timeout"`
}

type AdminConfig struct {
	AdminToken string `yaml:"admin_token"`
}

// TTL : времена жизни кэша в секундах
type TTL struct {
	KidCache       int `yaml:"kid_cache"`
	AdminAllowList int `yaml:"admin_allow_list"`
}
