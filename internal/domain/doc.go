// Package domain contains the core geometry model for ventmap.
//
// The domain is input- and output-agnostic: it does not depend on the text
// format of segment files, YAML or the terminal. Infra/adapters map into/from
// these types.
package domain
