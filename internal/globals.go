package internal

import "time"

// defineGlobals populates env with the core's only native binding,
// clock() — spec.md §5's sole standard-library surface. Everything else
// grotsky's globals.go wires (import, strings, net, env) is intentionally
// not carried over; see DESIGN.md.
func defineGlobals(env *Environment) {
	env.Define("clock", NewNativeFunction("clock", 0, func(interp *Interpreter, arguments []interface{}) interface{} {
		return float64(time.Now().UnixNano()) / float64(time.Second)
	}))
}
