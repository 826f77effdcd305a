// Package tool defines the typed tool abstraction the financial engines are
// exposed through: a generic Tool[I, O] with reflection-derived JSON schemas,
// the type-erased GenericTool interface, and a Catalog for dispatch by name.
//
// Concrete tools live in the subpackages (fxconvert, cashflow, budget,
// riskprofile, retirement, stockquote), each exporting a New*Tool
// constructor.
package tool
