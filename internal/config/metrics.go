package config

// MetricsConfig selects where load and request metrics are exported.
// A Port equal to the API port mounts /metrics on the API listener.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	cfg := MetricsConfig{
		Enabled:     boolEnvOrDefault(envMetricsOn, true),
		Port:        envOrDefault(envMetricsPort, defaultMetricsPort),
		ServiceName: envOrDefault(envOtelService, defaultServiceName),
	}
	if endpoint := envOrDefault(envOtelEndpoint, ""); endpoint != "" {
		cfg.OtlpEndpoint = endpoint
		cfg.OtlpInsecure = boolEnvOrDefault(envOtelInsecure, true)
	}
	return cfg
}
