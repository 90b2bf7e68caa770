// Package app wires the pipeline together: configuration, logging, input
// expansion, graph synthesis, description emission, and the handoff to the
// external build executor.
package app
