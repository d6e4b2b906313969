// Package services contains the core orchestration logic, wired to the
// outside world only through the driven ports.
package services
