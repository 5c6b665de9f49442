package config

type Config struct {
	Environment Environment
	HTTP        HTTPServer
	Database    Database `envPrefix:"DATABASE_"`
	AMQP        AMQP     `envPrefix:"AMQP_"`

	JWTSecret string `env:"JWT_SECRET" envDefault:"secreto"`
	UploadDir string `env:"UPLOAD_DIR" envDefault:"./uploads"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"4000"`
}

type Database struct {
	Driver string `env:"DRIVER" envDefault:"mysql"` // mysql or sqlite
	URL    string `env:"URL"`
}

type AMQP struct {
	// empty URL disables the notification publisher
	URL      string `env:"URL"`
	Exchange string `env:"EXCHANGE" envDefault:"notifications"`
}
