// Package telemetry wires OpenTelemetry trace export. Fetch cycles are
// traced through the global provider; without an OTLP endpoint the spans
// go nowhere.
package telemetry
