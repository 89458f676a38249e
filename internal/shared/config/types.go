package config

import "fmt"

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig describes the local SQLite store. The store is the single
// source of truth for ticket numbering, so it lives on local disk rather
// than behind a network connection.
type DatabaseConfig struct {
	Path          string `mapstructure:"path"`
	BusyTimeoutMS int    `mapstructure:"busy_timeout_ms"`
	JournalMode   string `mapstructure:"journal_mode"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("file:%s?_busy_timeout=%d&_journal_mode=%s&_foreign_keys=on",
		d.Path, d.BusyTimeoutMS, d.JournalMode)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// DocumentsConfig locates the filesystem side of ticket document storage.
// Ticket PDFs are written under Root partitioned by year; report PDFs go
// under ReportsDir.
type DocumentsConfig struct {
	Root       string `mapstructure:"root"`
	ReportsDir string `mapstructure:"reports_dir"`
}

// JobsConfig configures the external jobs source for the cache synchronizer.
// Source selects the implementation: "sql" runs Query against DSN, "csv"
// reads CSVPath. TimeoutSeconds bounds the external fetch.
type JobsConfig struct {
	Source           string `mapstructure:"source"`
	DSN              string `mapstructure:"dsn"`
	Query            string `mapstructure:"query"`
	CSVPath          string `mapstructure:"csv_path"`
	TimeoutSeconds   int    `mapstructure:"timeout_seconds"`
	RefreshOnStartup bool   `mapstructure:"refresh_on_startup"`
}

// PrintingConfig configures best-effort printer dispatch. When Enabled is
// false all print requests are reported as skipped without error.
type PrintingConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Command string `mapstructure:"command"`
	Printer string `mapstructure:"printer"`
}

// CompanyConfig holds the letterhead lines rendered at the top of every
// ticket document.
type CompanyConfig struct {
	HeaderLines []string `mapstructure:"header_lines"`
}

type BusinessConfig struct {
	Timezone string `mapstructure:"timezone"`
}
