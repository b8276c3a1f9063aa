package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"shopcart.db"`

	JWT     JWT     `envPrefix:"JWT_"`
	Payment Payment `envPrefix:"PAYMENT_"`
}

type JWT struct {
	// shared with the auth service that issues tokens
	AccessSecret string `env:"ACCESS_SECRET,notEmpty"`
}

type Payment struct {
	// merchant identity embedded in UPI deep links
	MerchantVPA  string `env:"MERCHANT_VPA" envDefault:"merchant@ybl"`
	MerchantName string `env:"MERCHANT_NAME" envDefault:"Shopcart"`
	// simulated payment pages are rooted here
	GatewayBaseURL string `env:"GATEWAY_BASE_URL" envDefault:"https://payments.example.com"`
	WebhookSecret  string `env:"WEBHOOK_SECRET" envDefault:"dev-webhook-secret"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
