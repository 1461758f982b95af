package configs

type App struct {
	Environment     string `env:"ENVIRONMENT,notEmpty"`
	HealthCheckAddr string `env:"HEALTHCHECK_ADDR" envDefault:":8080"`
}

func (c App) IsDevEnvironment() bool {
	return c.Environment == "dev"
}
