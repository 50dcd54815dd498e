// Package wfc provides the run configuration and the generation
// pipeline: load catalog, build boundary sides, collapse the wave, and
// validate the result into an artifact.
package wfc
