package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/contractor-site-api/internal/observability"
	"github.com/noah-isme/contractor-site-api/internal/repository"
)

// MaxListedCollections caps how many collection names a probe reports.
const MaxListedCollections = 10

// ProbeStatus is the outcome of a database reachability probe.
type ProbeStatus string

const (
	// ProbeUnavailable means no store handle exists because connecting failed.
	ProbeUnavailable ProbeStatus = "unavailable"
	// ProbeUninitialized means no store was configured.
	ProbeUninitialized ProbeStatus = "uninitialized"
	// ProbeConnected means collections were listed successfully.
	ProbeConnected ProbeStatus = "connected"
	// ProbeConnectedWithError means a handle exists but listing collections failed.
	ProbeConnectedWithError ProbeStatus = "connected_with_error"
)

// ProbeResult reports what a probe found. Err is set for ProbeUnavailable and ProbeConnectedWithError.
type ProbeResult struct {
	Status       ProbeStatus
	DatabaseName string
	Collections  []string
	Err          error
}

// DiagnosticsService checks backend and database health without ever failing.
type DiagnosticsService interface {
	Probe(ctx context.Context) ProbeResult
}

type diagnosticsService struct {
	store      repository.DocumentStore
	connectErr error
	timeout    time.Duration
	logger     zerolog.Logger
	tracer     trace.Tracer
}

// NewDiagnosticsService constructs the probe. store is nil when no connection exists;
// connectErr records why connecting failed, if it was attempted.
func NewDiagnosticsService(store repository.DocumentStore, connectErr error, timeout time.Duration, logger zerolog.Logger) DiagnosticsService {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &diagnosticsService{
		store:      store,
		connectErr: connectErr,
		timeout:    timeout,
		logger:     logger.With().Str("component", "diagnostics_service").Logger(),
		tracer:     otel.Tracer("github.com/noah-isme/contractor-site-api/internal/service/diagnostics"),
	}
}

func (s *diagnosticsService) Probe(ctx context.Context) ProbeResult {
	ctx, span := s.tracer.Start(ctx, "diagnostics.probe")
	defer span.End()

	result := s.probe(ctx)
	span.SetAttributes(attribute.String("diagnostics.status", string(result.Status)))
	if result.Err != nil {
		span.RecordError(result.Err)
		s.logger.Warn().Err(result.Err).Str("status", string(result.Status)).Msg("database probe degraded")
	}
	observability.DiagnosticsProbes().WithLabelValues(string(result.Status)).Inc()

	return result
}

func (s *diagnosticsService) probe(ctx context.Context) ProbeResult {
	if s.store == nil {
		if s.connectErr != nil {
			return ProbeResult{Status: ProbeUnavailable, Err: s.connectErr}
		}
		return ProbeResult{Status: ProbeUninitialized}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result := ProbeResult{DatabaseName: s.store.Name()}
	names, err := s.store.ListCollectionNames(ctx)
	if err != nil {
		result.Status = ProbeConnectedWithError
		result.Err = err
		return result
	}

	if len(names) > MaxListedCollections {
		names = names[:MaxListedCollections]
	}
	result.Status = ProbeConnected
	result.Collections = names
	return result
}
