// Package pagination pages truth table rows and saved comparisons by offset.
package pagination

const (
	// PageDefaultSize applies when a request omits size.
	PageDefaultSize = 100
	// PageMaxSize bounds one page, a 16 variable table is 65536 rows.
	PageMaxSize = 10_000
)
