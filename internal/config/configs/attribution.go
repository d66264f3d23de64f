package configs

import "time"

// Attribution sizes the background click attribution pipeline.
type Attribution struct {
	Buffer  int           `env:"BUFFER" envDefault:"256"`
	Workers int           `env:"WORKERS" envDefault:"2"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
}
