// Package frontenderr defines ErrorCore, the opaque error type produced by
// the frontend (parser/resolver) and propagated unchanged by this module —
// spec.md §6.3: "Frontend errors: opaque ErrorCore structs with a location
// and a renderable payload; propagated unchanged."
package frontenderr

import "github.com/vesperlang/vesperc/internal/ir"

// ErrorCore is never constructed by this module's own passes; it is only
// read off the IR (when a provider attaches one to a Node) and re-emitted
// verbatim by the driver. Payload is deliberately untyped: rendering and
// localization belong to the external frontend, not to TYCORE or CODEGEN.
type ErrorCore struct {
	Location ir.Pos
	Payload  any
}
