// Package app wires configuration, logging, the store and the services into
// one value the CLI consumes.
package app
