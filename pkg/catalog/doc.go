// Package catalog loads tile sets from YAML files and materializes
// every tile variant, including the 90/180/270 degree rotations of
// rotateable tiles.
package catalog
