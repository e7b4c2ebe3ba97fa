// Package commands wires the faultbook CLI: listing the demo catalog,
// running demonstrations and serving them over HTTP.
package commands
