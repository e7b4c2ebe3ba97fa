// Package samples is the catalog of failure demonstrations. Every demo is an
// independent leaf: it provokes exactly one failure mode against throwaway
// data and returns the resulting error. Demos share nothing but the sample
// library data.
package samples

import "github.com/faultbook/faultbook/demo"

// All assembles the full demo catalog into a fresh registry.
func All() *demo.Registry {
	reg := demo.NewRegistry()
	register(reg, collectionDemos())
	register(reg, conversionDemos())
	register(reg, encodingDemos())
	register(reg, filesystemDemos())
	register(reg, networkDemos())
	register(reg, apiDemos())
	register(reg, databaseDemos())
	register(reg, concurrencyDemos())
	return reg
}

func register(reg *demo.Registry, demos []demo.Demo) {
	for _, d := range demos {
		reg.MustRegister(d)
	}
}
