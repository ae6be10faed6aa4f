package configs

// Redis configures the optional Redis connection used to cache advisory
// answers. An empty Addr disables Redis.
type Redis struct {
	Addr     string `env:"ADDRESS"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}
