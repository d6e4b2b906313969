// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports). The ingestion orchestrator depends on these
// interfaces only; concrete implementations live under internal/adapters
// and internal/connectors.
package driven
