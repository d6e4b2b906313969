// Package domain defines the core business entities for driveingest.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ChangeRecord: One detected modification event from the change feed
//   - Format: Closed classification of supported document formats
//   - ExtractionResult: Outcome of pulling plain text out of a file
//   - IngestedDocument: The record handed to the vector store
//
// Domain types only. Behaviour lives in services; I/O lives in adapters
// and connectors.
package domain
