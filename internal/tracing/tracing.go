/*
   Copyright 2020 Docker Compose CLI authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package tracing

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/docker/btrfs-list/internal"
)

// EnvExperimentalOTel enables exporting traces when set to a true value
const EnvExperimentalOTel = "BTRFS_LIST_EXPERIMENTAL_OTEL"

func init() {
	// do not log tracing errors to stdio
	otel.SetErrorHandler(skipErrors{})
}

var Tracer = otel.Tracer("btrfs-list")

// ShutdownFunc flushes and stops an OTEL exporter.
type ShutdownFunc func(ctx context.Context) error

// envMap is a convenience type for OS environment variables.
type envMap map[string]string

type skipErrors struct{}

func (skipErrors) Handle(error) {}

// Initialize configures tracing for the application.
//
// Tracing is opt-in through EnvExperimentalOTel and exports to the OTLP/gRPC
// endpoint set by the standard OTEL_ environment variables. A nil
// ShutdownFunc means nothing was started.
func Initialize(ctx context.Context) (ShutdownFunc, error) {
	// set global propagator to tracecontext (the default is no-op).
	otel.SetTextMapPropagator(propagation.TraceContext{})

	if v, _ := strconv.ParseBool(os.Getenv(EnvExperimentalOTel)); !v {
		return nil, nil
	}

	res, err := createResource(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tracerProvider, shutdown, err := createTraceProvider(ctx, res, readOTelEnv())
	if err != nil {
		return nil, fmt.Errorf("failed to create trace provider: %w", err)
	}
	if tracerProvider == nil {
		return nil, nil
	}
	otel.SetTracerProvider(tracerProvider)
	return shutdown, nil
}

// createTraceProvider creates a trace.TracerProvider based on OS environment.
func createTraceProvider(ctx context.Context, res *resource.Resource, otelEnv envMap) (trace.TracerProvider, ShutdownFunc, error) {
	client := userTraceClient(otelEnv)
	if client == nil {
		return nil, nil, nil
	}
	exporter, err := otlptrace.New(ctx, client)
	if err != nil {
		return nil, nil, err
	}
	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
	)
	return tracerProvider, tracerProvider.Shutdown, nil
}

// createResource creates the resource.Resource with common metadata attached.
func createResource(ctx context.Context) (*resource.Resource, error) {
	return resource.New(ctx, resource.WithAttributes(
		attribute.String("service.name", "btrfs-list"),
		attribute.String("service.version", internal.Version),
	))
}

// readOTelEnv returns a map of all environment variables that start with `OTEL_`.
func readOTelEnv() envMap {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if strings.HasPrefix(k, "OTEL_") {
			env[k] = v
		}
	}
	return env
}

// userTraceClient creates a gRPC OTLP client based on OS environment
// variables.
//
// https://opentelemetry.io/docs/concepts/sdk-configuration/otlp-exporter-configuration/
func userTraceClient(otelEnv envMap) otlptrace.Client {
	for k := range otelEnv {
		if strings.HasSuffix(k, "ENDPOINT") {
			return otlptracegrpc.NewClient()
		}
	}
	return nil
}

// SpanWrapFunc runs fn in a child span of ctx named spanName. A returned
// error is recorded on the span.
func SpanWrapFunc(ctx context.Context, spanName string, fn func(ctx context.Context) error, attrs ...attribute.KeyValue) error {
	ctx, span := Tracer.Start(ctx, spanName, trace.WithAttributes(attrs...))
	defer span.End()

	if err := fn(ctx); err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
		return err
	}
	span.SetStatus(codes.Ok, "")
	return nil
}
