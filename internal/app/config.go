package app

import (
	"github.com/yungbote/roster/internal/observability"
	"github.com/yungbote/roster/internal/platform/codec"
	"github.com/yungbote/roster/internal/platform/envutil"
	"github.com/yungbote/roster/internal/platform/logger"
)

type Config struct {
	Environment string
	Format      codec.Format
	Otel        observability.OtelConfig
}

func LoadConfig(log *logger.Logger) (Config, error) {
	env := envutil.String("APP_ENV", "local", log)
	format, err := codec.ParseFormat(envutil.String("ROSTER_FORMAT", string(codec.FormatJSON), log))
	if err != nil {
		return Config{}, err
	}
	return Config{
		Environment: env,
		Format:      format,
		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false, log),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", "roster", log),
			Environment: env,
			Version:     envutil.String("APP_VERSION", "dev", log),
			SampleRatio: envutil.Float("OTEL_SAMPLER_RATIO", 1, log),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", "", log),
			Headers:     observability.ParseHeaders(envutil.String("OTEL_EXPORTER_OTLP_HEADERS", "", log)),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false, log),
		},
	}, nil
}
