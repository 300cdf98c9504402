package game

import (
	"errors"
	"fmt"
	"os"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

const luaEntryPoint = "nextCommand"

// DefaultAutoPilotScript lays bars flat and drops every shape over the
// lowest column. heights is 1-indexed by column, like every Lua array.
const DefaultAutoPilotScript = `
function nextCommand(state)
	if state.kind == "Bar" and state.rotation == 0 then
		return "RotateRight"
	end

	local best = 1
	for c = 2, state.width do
		if state.heights[c] < state.heights[best] then
			best = c
		end
	end

	local target = best - 1
	if state.col > target then
		return "MoveLeft"
	elseif state.col < target then
		return "MoveRight"
	end
	return "MoveDown"
end
`

// LuaStrategy runs a user supplied Lua function to pick commands. The
// function receives a table describing the shape and the stack and returns a
// command name such as "MoveLeft".
type LuaStrategy struct {
	mu    sync.Mutex
	state *lua.LState
	fn    lua.LValue
}

func NewLuaStrategy(script string) (*LuaStrategy, error) {
	luaState := lua.NewState()
	if err := luaState.DoString(script); err != nil {
		luaState.Close()
		return nil, fmt.Errorf("could not parse lua strategy definition: %w", err)
	}

	fn := luaState.GetGlobal(luaEntryPoint)
	if fn.Type() != lua.LTFunction {
		luaState.Close()
		return nil, errors.New("lua strategy must define function " + luaEntryPoint)
	}

	return &LuaStrategy{state: luaState, fn: fn}, nil
}

func LoadLuaStrategy(path string) (*LuaStrategy, error) {
	if path == "" {
		return NewLuaStrategy(DefaultAutoPilotScript)
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read autopilot script %s: %w", path, err)
	}
	return NewLuaStrategy(string(source))
}

func (s *LuaStrategy) NextCommand(view ShapeView) (Command, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.state.CallByParam(lua.P{
		Fn:      s.fn,
		NRet:    1,
		Protect: true,
	}, s.viewToTable(view))
	if err != nil {
		return Idle, fmt.Errorf("could not execute lua strategy definition: %w", err)
	}

	ret := s.state.Get(-1)
	s.state.Pop(1)

	name, ok := ret.(lua.LString)
	if !ok {
		return Idle, errors.New("lua return value was type " + ret.Type().String() + ", expected string")
	}
	return ParseCommand(string(name))
}

func (s *LuaStrategy) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Close()
}

func (s *LuaStrategy) viewToTable(view ShapeView) *lua.LTable {
	table := s.state.NewTable()
	table.RawSetString("kind", lua.LString(view.Kind.String()))
	table.RawSetString("row", lua.LNumber(view.Position.Row))
	table.RawSetString("col", lua.LNumber(view.Position.Col))
	table.RawSetString("rotation", lua.LNumber(view.Rotation))
	table.RawSetString("width", lua.LNumber(view.Width))
	table.RawSetString("height", lua.LNumber(view.Height))

	heights := s.state.NewTable()
	for _, h := range view.ColumnHeights {
		heights.Append(lua.LNumber(h))
	}
	table.RawSetString("heights", heights)
	return table
}
