// Package luabind exposes the core version to embedded Lua hosts as the
// "dml" module.
package luabind

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/flarebyte/daggerml"
	lua "github.com/yuin/gopher-lua"
)

// ModuleName is the name scripts pass to require.
const ModuleName = "dml"

const defaultTimeout = time.Second

var (
	// ErrTimeout is returned by Eval when the chunk exceeds its deadline.
	ErrTimeout = errors.New("lua: timeout")
	// ErrNotString is returned by Eval when the chunk result is not a string.
	ErrNotString = errors.New("lua: result is not a string")
)

var exports = map[string]lua.LGFunction{
	"version": luaVersion,
}

// Loader is the lua.LGFunction that builds the module table.
func Loader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), exports)
	mod.RawSetString("VERSION", lua.LString(daggerml.Version))
	L.Push(mod)
	return 1
}

// Preload makes require("dml") available in L. The package library must be
// open.
func Preload(L *lua.LState) {
	L.PreloadModule(ModuleName, Loader)
}

func luaVersion(L *lua.LState) int {
	if L.GetTop() != 0 {
		L.RaiseError("%s.version takes no arguments", ModuleName)
		return 0
	}
	L.Push(lua.LString(daggerml.GetVersion()))
	return 1
}

func newState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openLib := func(name string, f lua.LGFunction) {
		L.Push(L.NewFunction(f))
		L.Push(lua.LString(name))
		L.Call(1, 0)
	}
	openLib(lua.LoadLibName, lua.OpenPackage)
	openLib(lua.BaseLibName, lua.OpenBase)
	openLib(lua.StringLibName, lua.OpenString)
	openLib(lua.TabLibName, lua.OpenTable)
	Preload(L)
	return L
}

// Eval runs source in a fresh state with the dml module preloaded and returns
// its first result. Only the package, base, string and table libraries are
// open. A deadline of one second applies unless ctx is already shorter.
func Eval(ctx context.Context, source string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	L := newState()
	defer L.Close()
	L.SetContext(ctx)

	fn, err := L.LoadString(source)
	if err != nil {
		return "", fmt.Errorf("lua: %w", err)
	}
	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		if ctx.Err() != nil {
			return "", ErrTimeout
		}
		return "", fmt.Errorf("lua: %w", err)
	}
	ret := L.Get(-1)
	L.Pop(1)
	s, ok := ret.(lua.LString)
	if !ok {
		return "", fmt.Errorf("%w: got %s", ErrNotString, ret.Type())
	}
	return string(s), nil
}

// Version evaluates require("dml").version() in a fresh state.
func Version(ctx context.Context) (string, error) {
	return Eval(ctx, `return require("`+ModuleName+`").version()`)
}
