package config

import (
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Astemirdum/library-engine/pkg/auth"
	"github.com/Astemirdum/library-engine/pkg/database"
	"github.com/Astemirdum/library-engine/pkg/kafka"
	"github.com/Astemirdum/library-engine/pkg/logger"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"LIBRARY_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"LIBRARY_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

// LoanPolicy toggles the double-issue guard.
type LoanPolicy struct {
	StrictIssue bool `envconfig:"LOAN_STRICT_ISSUE" default:"true"`
}

type Config struct {
	Server           HTTPServer   `yaml:"server"`
	Database         database.DB  `yaml:"db"`
	Kafka            kafka.Config `yaml:"kafka"`
	Auth             auth.Config  `yaml:"auth"`
	Loan             LoanPolicy   `yaml:"loan"`
	Log              logger.Log   `yaml:"log"`
	SeedDemoAccounts bool         `envconfig:"SEED_DEMO_ACCOUNTS" default:"true"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment. Options are applied on top of it.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		for _, op := range ops {
			op(&config)
		}
		cfg = &config
	})

	return cfg
}
