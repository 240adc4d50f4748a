package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hooplabs/courtside/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string
	LogLevel           logging.Level

	NBAAPIBaseURL               string
	NBAAPISeason                string
	NBAAPITimeout               time.Duration
	NBAAPIMaxRetries            int
	NBAAPICircuitEnabled        bool
	NBAAPICircuitFailureCount   int
	NBAAPICircuitOpenTimeout    time.Duration
	NBAAPICircuitHalfOpenMaxReq int

	TeamCacheTTL       time.Duration
	PlayerCacheTTL     time.Duration
	RosterCacheTTL     time.Duration
	StatsCacheTTL      time.Duration
	CacheSweepInterval time.Duration

	RosterBatchSize  int
	RosterBatchDelay time.Duration

	PprofEnabled bool
	PprofAddr    string

	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	UptraceCaptureRequestBody  bool
	UptraceRequestBodyMaxBytes int

	BetterStackEnabled  bool
	BetterStackEndpoint string
	BetterStackToken    string
	BetterStackTimeout  time.Duration
	BetterStackMinLevel logging.Level

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

var seasonPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}

	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}
	uptraceCaptureRequestBody, err := strconv.ParseBool(getEnv("UPTRACE_CAPTURE_REQUEST_BODY", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_CAPTURE_REQUEST_BODY: %w", err)
	}
	uptraceRequestBodyMaxBytes, err := getEnvAsInt("UPTRACE_REQUEST_BODY_MAX_BYTES", 8192)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_REQUEST_BODY_MAX_BYTES: %w", err)
	}
	if uptraceRequestBodyMaxBytes <= 0 {
		return Config{}, fmt.Errorf("UPTRACE_REQUEST_BODY_MAX_BYTES must be > 0")
	}

	betterStackEnabled, err := strconv.ParseBool(getEnv("BETTERSTACK_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BETTERSTACK_ENABLED: %w", err)
	}
	betterStackEndpoint := strings.TrimSpace(getEnv("BETTERSTACK_ENDPOINT", ""))
	if betterStackEnabled && betterStackEndpoint == "" {
		return Config{}, fmt.Errorf("BETTERSTACK_ENDPOINT is required when BETTERSTACK_ENABLED=true")
	}
	betterStackTimeout, err := time.ParseDuration(getEnv("BETTERSTACK_TIMEOUT", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BETTERSTACK_TIMEOUT: %w", err)
	}
	if betterStackTimeout <= 0 {
		return Config{}, fmt.Errorf("BETTERSTACK_TIMEOUT must be > 0")
	}
	betterStackMinLevel := parseLogLevel(getEnv("BETTERSTACK_MIN_LEVEL", "error"))

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	nbaSeason := strings.TrimSpace(getEnv("NBA_API_SEASON", "2024-25"))
	if !seasonPattern.MatchString(nbaSeason) {
		return Config{}, fmt.Errorf("invalid NBA_API_SEASON %q, expected YYYY-YY", nbaSeason)
	}
	nbaTimeout, err := time.ParseDuration(getEnv("NBA_API_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NBA_API_TIMEOUT: %w", err)
	}
	if nbaTimeout <= 0 {
		return Config{}, fmt.Errorf("NBA_API_TIMEOUT must be > 0")
	}
	nbaMaxRetries, err := getEnvAsInt("NBA_API_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse NBA_API_MAX_RETRIES: %w", err)
	}
	if nbaMaxRetries < 0 {
		return Config{}, fmt.Errorf("NBA_API_MAX_RETRIES must be >= 0")
	}
	nbaCircuitEnabled, err := strconv.ParseBool(getEnv("NBA_API_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NBA_API_CIRCUIT_ENABLED: %w", err)
	}
	nbaCircuitFailureCount, err := getEnvAsInt("NBA_API_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse NBA_API_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if nbaCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("NBA_API_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	nbaCircuitOpenTimeout, err := time.ParseDuration(getEnv("NBA_API_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NBA_API_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if nbaCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("NBA_API_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	nbaCircuitHalfOpenMaxReq, err := getEnvAsInt("NBA_API_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse NBA_API_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if nbaCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("NBA_API_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	teamCacheTTL, err := getEnvAsTTL("TEAM_CACHE_TTL", "10m")
	if err != nil {
		return Config{}, err
	}
	playerCacheTTL, err := getEnvAsTTL("PLAYER_CACHE_TTL", "15m")
	if err != nil {
		return Config{}, err
	}
	rosterCacheTTL, err := getEnvAsTTL("ROSTER_CACHE_TTL", "30m")
	if err != nil {
		return Config{}, err
	}
	statsCacheTTL, err := getEnvAsTTL("STATS_CACHE_TTL", "5m")
	if err != nil {
		return Config{}, err
	}
	cacheSweepInterval, err := getEnvAsTTL("CACHE_SWEEP_INTERVAL", "5m")
	if err != nil {
		return Config{}, err
	}

	rosterBatchSize, err := getEnvAsInt("ROSTER_BATCH_SIZE", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse ROSTER_BATCH_SIZE: %w", err)
	}
	if rosterBatchSize < 1 {
		return Config{}, fmt.Errorf("ROSTER_BATCH_SIZE must be >= 1")
	}
	rosterBatchDelay, err := time.ParseDuration(getEnv("ROSTER_BATCH_DELAY", "100ms"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ROSTER_BATCH_DELAY: %w", err)
	}
	if rosterBatchDelay < 0 {
		return Config{}, fmt.Errorf("ROSTER_BATCH_DELAY must be >= 0")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "courtside-api"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),

		NBAAPIBaseURL:               strings.TrimSpace(getEnv("NBA_API_BASE_URL", "https://stats.nba.com/stats")),
		NBAAPISeason:                nbaSeason,
		NBAAPITimeout:               nbaTimeout,
		NBAAPIMaxRetries:            nbaMaxRetries,
		NBAAPICircuitEnabled:        nbaCircuitEnabled,
		NBAAPICircuitFailureCount:   nbaCircuitFailureCount,
		NBAAPICircuitOpenTimeout:    nbaCircuitOpenTimeout,
		NBAAPICircuitHalfOpenMaxReq: nbaCircuitHalfOpenMaxReq,

		TeamCacheTTL:       teamCacheTTL,
		PlayerCacheTTL:     playerCacheTTL,
		RosterCacheTTL:     rosterCacheTTL,
		StatsCacheTTL:      statsCacheTTL,
		CacheSweepInterval: cacheSweepInterval,

		RosterBatchSize:  rosterBatchSize,
		RosterBatchDelay: rosterBatchDelay,

		PprofEnabled: pprofEnabled,
		PprofAddr:    pprofAddr,

		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		UptraceLogsEnabled:         uptraceLogsEnabled,
		UptraceCaptureRequestBody:  uptraceCaptureRequestBody,
		UptraceRequestBodyMaxBytes: uptraceRequestBodyMaxBytes,

		BetterStackEnabled:  betterStackEnabled,
		BetterStackEndpoint: betterStackEndpoint,
		BetterStackToken:    strings.TrimSpace(getEnv("BETTERSTACK_TOKEN", "")),
		BetterStackTimeout:  betterStackTimeout,
		BetterStackMinLevel: betterStackMinLevel,

		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsTTL(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
