// Package tile defines tile variants (fields), their hyphen-tokenized
// edge labels, and the edge compatibility predicate the wave solver is
// built on.
package tile
