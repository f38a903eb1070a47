package config

const (
	defaultServerPort = 8080

	defaultAutosaveMaxFailures = 3
	defaultRateLimitBurst      = 20
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"storage.path":                  "phone_directory.json",
		"storage.format":                "",
		"storage.strict":                false,
		"storage.passphrase_env":        "",
		"storage.autosave.interval":     "0s",
		"storage.autosave.max_failures": defaultAutosaveMaxFailures,
		"storage.autosave.cooldown":     "1m",

		"log.level":  "info",
		"log.format": "text",
		"log.file":   "",

		"server.host":             "127.0.0.1",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "15s",
		"server.request_timeout":  "8s",

		"server.rate_limit.requests_per_second": 0,
		"server.rate_limit.burst_size":          defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "phonebook",
	}
}
