package env

import "strconv"

const MetricsPath = "/__metrics"

type MetricsEnvironment struct {
	Enabled bool
}

func NewMetricsEnvironment() MetricsEnvironment {
	enabled, _ := strconv.ParseBool(GetEnvVar("ENV_METRICS_ENABLED"))

	return MetricsEnvironment{Enabled: enabled}
}
