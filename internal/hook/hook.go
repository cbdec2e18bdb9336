// Package hook runs an optional user Lua script that can rewrite the
// formatted commit message before it is handed to git. Scripts execute in a
// sandboxed interpreter with only the base, string, table and math
// libraries available.
package hook

import (
	"fmt"
	"os"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
)

const defaultTimeoutMs = 500

// Hook is a loaded message hook script.
type Hook struct {
	path    string
	code    string
	timeout time.Duration
}

// Path returns where the script was loaded from.
func (h *Hook) Path() string { return h.path }

// Load reads the script at path. A non-positive timeoutMs selects the
// default.
func Load(path string, timeoutMs int) (*Hook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hook script: %w", err)
	}
	if timeoutMs <= 0 {
		timeoutMs = defaultTimeoutMs
	}
	return &Hook{
		path:    path,
		code:    string(data),
		timeout: time.Duration(timeoutMs) * time.Millisecond,
	}, nil
}

// Apply runs the hook against a formatted message. The script sees the
// globals `ctype` and `message` and must return the final message string.
func (h *Hook) Apply(ctype, message string) (string, error) {
	L := newSandboxState()
	defer L.Close()
	L.SetGlobal("ctype", lua.LString(ctype))
	L.SetGlobal("message", lua.LString(message))

	fn, err := L.LoadString(h.code)
	if err != nil {
		return "", fmt.Errorf("hook: %v", err)
	}
	L.Push(fn)

	done := make(chan struct{})
	var callErr error
	go func() {
		callErr = L.PCall(0, 1, nil)
		close(done)
	}()
	select {
	case <-done:
		if callErr != nil {
			return "", fmt.Errorf("hook: %v", callErr)
		}
	case <-time.After(h.timeout):
		return "", fmt.Errorf("hook: timeout after %s", h.timeout)
	}

	ret := L.Get(-1)
	L.Pop(1)
	out, ok := ret.(lua.LString)
	if !ok {
		return "", fmt.Errorf("hook: script must return a string, got %s", ret.Type())
	}
	final := string(out)
	if strings.TrimSpace(final) == "" {
		return "", fmt.Errorf("hook: script returned an empty message")
	}
	return final, nil
}

// newSandboxState builds an interpreter without io, os or package access.
func newSandboxState() *lua.LState {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
		RegistrySize: 256,
	})
	openLib := func(name string, f lua.LGFunction) {
		L.Push(L.NewFunction(f))
		L.Push(lua.LString(name))
		L.Call(1, 0)
	}
	openLib("base", lua.OpenBase)
	openLib("string", lua.OpenString)
	openLib("table", lua.OpenTable)
	openLib("math", lua.OpenMath)
	return L
}
