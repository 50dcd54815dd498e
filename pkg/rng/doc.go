// Package rng provides deterministic, stage-scoped random number
// generation. Each pipeline stage derives its own seed from the master
// seed, the stage name, and a configuration hash, so identical inputs
// replay identical sequences while distinct stages stay independent.
package rng
