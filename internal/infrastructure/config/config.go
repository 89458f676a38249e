package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "scalehouse/internal/shared/config"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Documents sharedConfig.DocumentsConfig `mapstructure:"documents"`
	Jobs      sharedConfig.JobsConfig      `mapstructure:"jobs"`
	Printing  sharedConfig.PrintingConfig  `mapstructure:"printing"`
	Company   sharedConfig.CompanyConfig   `mapstructure:"company"`
	Business  sharedConfig.BusinessConfig  `mapstructure:"business"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables.
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")

	viper.SetEnvPrefix("SCALEHOUSE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine for a freshly unpacked install;
		// defaults plus env vars carry a working local setup.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration.
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults() {
	viper.SetDefault("server.host", "127.0.0.1")
	viper.SetDefault("server.port", 5000)
	viper.SetDefault("server.mode", "debug")

	viper.SetDefault("database.path", "data/tickets.db")
	viper.SetDefault("database.busy_timeout_ms", 5000)
	viper.SetDefault("database.journal_mode", "WAL")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	viper.SetDefault("documents.root", "tickets_pdf")
	viper.SetDefault("documents.reports_dir", "reports_pdf")

	viper.SetDefault("jobs.source", "")
	viper.SetDefault("jobs.dsn", "")
	viper.SetDefault("jobs.query", defaultJobsQuery)
	viper.SetDefault("jobs.csv_path", "data/jobs.csv")
	viper.SetDefault("jobs.timeout_seconds", 10)
	viper.SetDefault("jobs.refresh_on_startup", true)

	viper.SetDefault("printing.enabled", false)
	viper.SetDefault("printing.command", "lp")
	viper.SetDefault("printing.printer", "")

	viper.SetDefault("company.header_lines", []string{
		"McCracken Materials, LLC",
		"13675 McCracken Road",
		"Garfield Heights, Ohio 44125",
		"Phone: (216) 206-2600",
	})

	viper.SetDefault("business.timezone", "America/New_York")
}

// defaultJobsQuery is the stock query against the remote system of record.
// Any replacement must yield exactly these five columns; the synchronizer
// rejects anything else.
const defaultJobsQuery = `
SELECT
    CAST(job_code AS CHAR(100)) AS job_code,
    CAST(job_name AS CHAR(255)) AS job_name,
    CAST(customer AS CHAR(255)) AS customer,
    CAST(active AS SIGNED) AS active,
    source_updated_at
FROM jobs
`
