package lua

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/evoke/event"
)

// Handler adapts a Lua function to the event core's Handler interface.
// Each Handler is a distinct observer: register the same Lua function
// through two NewHandler calls and it is two handlers.
type Handler struct {
	bridge *Bridge
	fn     *lua.LFunction
}

// Compile-time interface check.
var _ event.Handler = (*Handler)(nil)

// NewHandler wraps a Lua function as an event handler. The function is
// called as fn(sender, args...) with values converted by a Bridge over
// the given state.
func NewHandler(L *lua.LState, fn *lua.LFunction) *Handler {
	return &Handler{
		bridge: NewBridge(L),
		fn:     fn,
	}
}

// Handle implements event.Handler. A Lua error aborts the firing and
// propagates to the firer.
func (h *Handler) Handle(sender any, args ...any) error {
	L := h.bridge.L

	L.Push(h.fn)
	L.Push(h.bridge.ToLua(sender))
	for _, arg := range args {
		L.Push(h.bridge.ToLua(arg))
	}

	if err := L.PCall(1+len(args), 0, nil); err != nil {
		return fmt.Errorf("lua handler: %w", err)
	}
	return nil
}
