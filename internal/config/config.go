package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	// DatabaseURL selects MySQL when set; empty falls back to a local
	// sqlite file, which is what development and tests want.
	DatabaseURL string `env:"DATABASE_URL"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"receiptpro.db"`

	SMTP SMTP `envPrefix:"SMTP_"`
	Auth Auth
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

func (e Environment) IsProduction() bool {
	return e.Name == "production"
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

type SMTP struct {
	Host     string        `env:"HOST"`
	Port     string        `env:"PORT" envDefault:"587"`
	Username string        `env:"USER"`
	Password string        `env:"PASSWORD"`
	From     string        `env:"MAIL_FROM"`
	Timeout  time.Duration `env:"SEND_TIMEOUT" envDefault:"10s"`
}

type Auth struct {
	// JWTSecret signs both user and admin session cookies.
	JWTSecret string `env:"JWT_SECRET"`
	// SessionTTL bounds how long an issued session cookie stays valid.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"168h"`

	// First-run admin provisioning. The admin row is only created when a
	// password is supplied through the environment; there is no baked-in
	// default credential.
	AdminBootstrapUsername string `env:"ADMIN_BOOTSTRAP_USERNAME" envDefault:"admin1"`
	AdminBootstrapPassword string `env:"ADMIN_BOOTSTRAP_PASSWORD"`
}
