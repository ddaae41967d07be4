package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	// DefaultIPAddress is the bind address used when IP_ADDRESS is missing or invalid.
	DefaultIPAddress = "0.0.0.0"
	// DefaultPort is the TCP port used when PORT is missing or invalid.
	DefaultPort = 5634
)

// Config represents the application configuration. Values come from the yaml
// file, then from environment variables (including those loaded from the
// dotenv file), then from the env-default tags.
type Config struct {
	// Environment selects the logger preset (development or production).
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogFile, when set, receives a copy of every log line.
	LogFile string `env:"LOG_FILE" yaml:"logFile"`

	// TCP configures the raw lint protocol listener.
	TCP struct {
		// IPAddress is the address to bind to. It has no default here: a missing
		// value must reach CheckEnvironment, which falls back to DefaultIPAddress.
		IPAddress string `env:"IP_ADDRESS" yaml:"ipAddress"`
		// Port is kept as text so that missing or invalid values fall back to
		// DefaultPort in CheckEnvironment instead of failing the whole configuration.
		Port string `env:"PORT" yaml:"port"`
		// Delimiter terminates a request.
		Delimiter string `env:"TCP_DELIMITER" env-default:"<<EOF>>" yaml:"delimiter"`
		// ReadChunkSize is the size of a single read from the connection.
		ReadChunkSize int `env:"TCP_READ_CHUNK_SIZE" env-default:"4096" yaml:"readChunkSize"`
		// MaxPayloadBytes bounds the source a client may send.
		MaxPayloadBytes int `env:"TCP_MAX_PAYLOAD_BYTES" env-default:"1048576" yaml:"maxPayloadBytes"`
		// ReadTimeout bounds the time a client has to send its whole request.
		ReadTimeout time.Duration `env:"TCP_READ_TIMEOUT" env-default:"30s" yaml:"readTimeout"`
		// WriteTimeout bounds each write of the response.
		WriteTimeout time.Duration `env:"TCP_WRITE_TIMEOUT" env-default:"30s" yaml:"writeTimeout"`
	} `yaml:"tcp"`

	// Pylint configures how the pylint executable is run.
	Pylint struct {
		// Binary is the pylint executable, looked up in PATH when not absolute.
		Binary string `env:"PYLINT_BINARY" env-default:"pylint" yaml:"binary"`
		// Args are extra command line arguments, split with shell quoting rules.
		Args string `env:"PYLINT_ARGS" yaml:"args"`
		// Timeout bounds a single pylint run.
		Timeout time.Duration `env:"PYLINT_TIMEOUT" env-default:"1m" yaml:"timeout"`
		// MaxConcurrentRuns bounds the number of pylint processes alive at once.
		MaxConcurrentRuns int64 `env:"PYLINT_MAX_CONCURRENT_RUNS" env-default:"4" yaml:"maxConcurrentRuns"`
		// CacheSize is the number of reports kept in memory; 0 disables the cache.
		CacheSize int `env:"PYLINT_CACHE_SIZE" env-default:"256" yaml:"cacheSize"`
	} `yaml:"pylint"`

	// HTTP contains the HTTP API server configuration.
	HTTP struct {
		// Enabled turns on the HTTP API, the background worker and the database.
		Enabled bool `env:"HTTP_ENABLED" env-default:"false" yaml:"enabled"`
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"90s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins restricts CORS to these origins; empty allows any origin
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
	} `yaml:"http"`

	// JWT holds the RS256 key pair used for API authentication.
	JWT struct {
		// PublicKey verifies bearer tokens (PEM).
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey signs tokens in the jwt subcommand (PEM).
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"pylintd" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"pylintd" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"pylintd" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Worker configures the background analysis queue.
	Worker struct {
		// MaxWorkers bounds concurrently running analysis jobs.
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// MaxAttempts is how many times a job is tried before its analyses fail.
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// UniquePeriod is the window in which identical sources share one job.
		UniquePeriod time.Duration `env:"WORKER_UNIQUE_PERIOD" env-default:"1h" yaml:"uniquePeriod"`
		// SnoozeDuration delays a job whose pylint run timed out or found no executable.
		SnoozeDuration time.Duration `env:"WORKER_SNOOZE_DURATION" env-default:"30s" yaml:"snoozeDuration"`
		// MaxSourceBytes bounds the source accepted by the HTTP API.
		MaxSourceBytes int `env:"WORKER_MAX_SOURCE_BYTES" env-default:"1048576" yaml:"maxSourceBytes"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing work to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads the dotenv file at envPath into the process environment (without
// overriding variables that are already set) and then fills Config from the
// yaml file at configPath and the environment. Missing files are skipped.
func Load(configPath, envPath string) (*Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not read env file: %w", err)
		}
	}

	var cfg Config
	if _, err := os.Stat(configPath); configPath != "" && err == nil {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read config from environment: %w", err)
	}

	return &cfg, nil
}

// EnvironmentStatus is the outcome of validating the listener address.
type EnvironmentStatus struct {
	// OK is false when the defaults had to be used.
	OK        bool
	IPAddress string
	Port      int
	// Err explains why the defaults were used.
	Err error
}

// Addr returns the host:port pair to listen on.
func (s EnvironmentStatus) Addr() string {
	return net.JoinHostPort(s.IPAddress, strconv.Itoa(s.Port))
}

// CheckEnvironment validates the IP_ADDRESS and PORT values. When either is
// missing or invalid the defaults are returned with OK set to false; the
// caller is expected to log Err.
func CheckEnvironment(ipAddress, port string) EnvironmentStatus {
	fallback := func(err error) EnvironmentStatus {
		return EnvironmentStatus{OK: false, IPAddress: DefaultIPAddress, Port: DefaultPort, Err: err}
	}

	ipAddress = strings.TrimSpace(ipAddress)
	if ipAddress == "" {
		return fallback(fmt.Errorf("missing or invalid IP_ADDRESS %q", ipAddress))
	}

	port = strings.TrimSpace(port)
	if port == "" || strings.Trim(port, "0123456789") != "" {
		return fallback(fmt.Errorf("missing or invalid PORT %q", port))
	}
	p, err := strconv.Atoi(port)
	if err != nil || p <= 0 || p > 65535 {
		return fallback(fmt.Errorf("missing or invalid PORT %q", port))
	}

	return EnvironmentStatus{OK: true, IPAddress: ipAddress, Port: p}
}
