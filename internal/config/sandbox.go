package config

import (
	lua "github.com/yuin/gopher-lua"
)

// safeLibs are the only standard libraries opened in a manifest VM.
var safeLibs = []struct {
	name string
	open lua.LGFunction
}{
	{lua.BaseLibName, lua.OpenBase},
	{lua.TabLibName, lua.OpenTable},
	{lua.StringLibName, lua.OpenString},
	{lua.MathLibName, lua.OpenMath},
}

// blockedGlobals are base library functions that can load code from disk
// or from strings.
var blockedGlobals = []string{
	"require",
	"dofile",
	"loadfile",
	"load",
	"loadstring",
	"module",
}

// sandboxLuaVM strips a VM down to declarative use: no os, io, debug or
// package libraries, and no way to load further chunks.
func sandboxLuaVM(L *lua.LState) {
	for _, name := range []string{"os", "io", "debug", "package", "channel", "coroutine"} {
		L.SetGlobal(name, lua.LNil)
	}
	for _, name := range blockedGlobals {
		L.SetGlobal(name, lua.LNil)
	}
}

// newSandboxedVM creates a VM with only the safe libraries opened.
func newSandboxedVM() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range safeLibs {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	sandboxLuaVM(L)
	return L
}
