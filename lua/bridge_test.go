package lua

import (
	"reflect"
	"testing"

	lua "github.com/yuin/gopher-lua"
)

func TestBridge_ToLua(t *testing.T) {
	L := lua.NewState()
	defer L.Close()
	b := NewBridge(L)

	tests := []struct {
		name string
		in   any
		want lua.LValue
	}{
		{"nil", nil, lua.LNil},
		{"bool", true, lua.LTrue},
		{"int", 7, lua.LNumber(7)},
		{"int64", int64(7), lua.LNumber(7)},
		{"float", 1.5, lua.LNumber(1.5)},
		{"string", "go", lua.LString("go")},
		{"bytes", []byte("go"), lua.LString("go")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.ToLua(tt.in); got != tt.want {
				t.Errorf("ToLua(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBridge_ToLuaSlice(t *testing.T) {
	L := lua.NewState()
	defer L.Close()
	b := NewBridge(L)

	lv := b.ToLua([]any{"a", 2})
	table, ok := lv.(*lua.LTable)
	if !ok {
		t.Fatalf("ToLua(slice) type = %T, want *lua.LTable", lv)
	}
	if got := table.RawGetInt(1); got != lua.LString("a") {
		t.Errorf("table[1] = %v, want a", got)
	}
	if got := table.RawGetInt(2); got != lua.LNumber(2) {
		t.Errorf("table[2] = %v, want 2", got)
	}
}

func TestBridge_ToLuaUserData(t *testing.T) {
	L := lua.NewState()
	defer L.Close()
	b := NewBridge(L)

	type opaque struct{ n int }
	v := &opaque{n: 3}

	lv := b.ToLua(v)
	ud, ok := lv.(*lua.LUserData)
	if !ok {
		t.Fatalf("ToLua(struct) type = %T, want *lua.LUserData", lv)
	}
	if ud.Value != any(v) {
		t.Error("userdata does not carry the original value")
	}
}

func TestBridge_ToGo(t *testing.T) {
	L := lua.NewState()
	defer L.Close()
	b := NewBridge(L)

	tests := []struct {
		name string
		in   lua.LValue
		want any
	}{
		{"bool", lua.LTrue, true},
		{"integral number", lua.LNumber(3), int64(3)},
		{"fractional number", lua.LNumber(1.5), 1.5},
		{"string", lua.LString("go"), "go"},
		{"nil", lua.LNil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.ToGo(tt.in); got != tt.want {
				t.Errorf("ToGo(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBridge_RoundTripTable(t *testing.T) {
	L := lua.NewState()
	defer L.Close()
	b := NewBridge(L)

	in := map[string]any{
		"name": "evoke",
		"tags": []any{"events", "observers"},
	}

	out := b.ToGo(b.ToLua(in))
	m, ok := out.(map[string]any)
	if !ok {
		t.Fatalf("round trip type = %T, want map[string]any", out)
	}
	if m["name"] != "evoke" {
		t.Errorf("name = %v, want evoke", m["name"])
	}
	if !reflect.DeepEqual(m["tags"], []any{"events", "observers"}) {
		t.Errorf("tags = %v, want [events observers]", m["tags"])
	}
}

func TestBridge_ToGoCycle(t *testing.T) {
	L := lua.NewState()
	defer L.Close()
	b := NewBridge(L)

	table := L.NewTable()
	table.RawSetString("self", table)

	out := b.ToGo(table)
	m, ok := out.(map[string]any)
	if !ok {
		t.Fatalf("ToGo(cyclic table) type = %T, want map[string]any", out)
	}
	if m["self"] != nil {
		t.Errorf("self = %v, want nil (cycle broken)", m["self"])
	}
}
