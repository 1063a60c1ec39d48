// Package lua lets Lua functions observe events.
//
// A Handler wraps a Lua function so it can be registered with the
// event core like any other observer. On each firing the sender and
// payload are converted to Lua values, the function is called, and a
// Lua error propagates back to the firer as a handler failure,
// aborting the rest of the firing.
//
//	L := glua.NewState() // glua "github.com/yuin/gopher-lua"
//	defer L.Close()
//
//	if err := L.DoString(`function on_saved(sender, path)
//	    print("saved " .. path)
//	end`); err != nil {
//	    log.Fatal(err)
//	}
//
//	fn := L.GetGlobal("on_saved").(*glua.LFunction)
//	h := lua.NewHandler(L, fn)
//
//	_ = saved.AddHandler(h)
//	_ = saved.Fire(doc, "notes.txt")
//
// Each NewHandler call produces a distinct handler, so the same Lua
// function can be registered more than once and removed individually.
//
// Value conversion covers booleans, numbers, strings, byte slices,
// []any, and map[string]any; tables convert back to slices or maps.
// Other Go values cross as opaque userdata. Conversion is scoped to
// the payload shapes events carry - it is not a general Go-Lua
// marshaling layer.
//
// Lua states are not goroutine-safe. All firings that reach a Handler
// must happen on the goroutine that owns its LState, which the
// library's synchronous delivery makes the firing goroutine.
package lua
