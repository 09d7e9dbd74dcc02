package postgres

import (
	"context"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// spanLogExporter escribe cada span terminado como una línea de log: sentencia, duración y error.
type spanLogExporter struct {
	zl zerolog.Logger
}

func (e spanLogExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, s := range spans {
		ev := e.zl.Debug()
		if s.Status().Code == codes.Error {
			ev = e.zl.Warn().Str("error", s.Status().Description)
		}
		for _, kv := range s.Attributes() {
			ev = ev.Str(string(kv.Key), kv.Value.Emit())
		}
		ev.Str("span", s.Name()).
			Dur("duration", s.EndTime().Sub(s.StartTime())).
			Msg("sql")
	}
	return nil
}

func (spanLogExporter) Shutdown(context.Context) error { return nil }

// newSQLTracerProvider provider síncrono que vuelca los spans de otelsql al logger.
func newSQLTracerProvider(zl zerolog.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(spanLogExporter{zl: zl.With().Str("component", "otelsql").Logger()}),
	)
}
