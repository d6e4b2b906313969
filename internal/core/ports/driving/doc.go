// Package driving defines the inbound ports: interfaces the transport
// adapters call into the core through.
package driving
