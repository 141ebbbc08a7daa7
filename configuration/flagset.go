package configuration

import (
	flag "github.com/spf13/pflag"
)

// NewUnsortedFlagSet creates a new FlagSet that keeps its flags in
// registration order.
func NewUnsortedFlagSet(name string, errorHandling flag.ErrorHandling) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, errorHandling)
	flagset.SortFlags = false

	return flagset
}
