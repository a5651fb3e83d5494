// Package multiplication defines the metric multiplication factor prefixes
// used by the unit catalogues.
package multiplication

const (
	Yotta = 1e24
	Zetta = 1e21
	Exa   = 1e18
	Peta  = 1e15
	Tera  = 1e12
	Giga  = 1e9
	Mega  = 1e6
	Kilo  = 1e3
	Hecto = 1e2
	Deca  = 1e1
	Deci  = 1e-1
	Centi = 1e-2
	Milli = 1e-3
	Micro = 1e-6
	Nano  = 1e-9
	Pico  = 1e-12
	Femto = 1e-15
	Atto  = 1e-18
	Zepto = 1e-21
	Yocto = 1e-24
)
