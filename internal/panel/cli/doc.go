// Package cli implements the interactive terminal surface of the user admin
// console: a read-eval-print loop over the view controller, the mutation
// coordinator and the session gate.
package cli
