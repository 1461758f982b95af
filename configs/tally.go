package configs

// Tally drives the periodic refresh of the stored per-poll vote counter.
type Tally struct {
	Cron     string `env:"TALLY_CRON" envDefault:"*/5 * * * *"`
	Timezone string `env:"TALLY_TIMEZONE" envDefault:"UTC"`
}
