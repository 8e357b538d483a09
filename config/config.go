package config

import "os"

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Stripe   StripeConfig
	Mail     MailConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	URI  string
	Name string
}

type JWTConfig struct {
	Secret string
}

type StripeConfig struct {
	SecretKey string
}

// MailConfig holds the Mailgun credentials plus the fixed sender/recipient
// pair used for order-confirmation emails.
type MailConfig struct {
	APIKey    string
	Domain    string
	From      string
	Recipient string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "5000"),
		},
		Database: DatabaseConfig{
			URI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Name: getEnv("DB_NAME", "Hungry_Dine"),
		},
		JWT: JWTConfig{
			Secret: getEnv("ACCESS_TOKEN_SECRET", "hungry_dine_dev_secret"),
		},
		Stripe: StripeConfig{
			SecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		},
		Mail: MailConfig{
			APIKey:    getEnv("MAIL_API_KEY", ""),
			Domain:    getEnv("MAIL_DOMAIN", ""),
			From:      getEnv("MAIL_FROM", "orders@hungrydine.com"),
			Recipient: getEnv("MAIL_RECIPIENT", "kitchen@hungrydine.com"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
