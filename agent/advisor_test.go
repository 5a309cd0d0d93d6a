package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/etnz/allocation"
	"github.com/etnz/allocation/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func call(t *testing.T, lib Library, name string, args map[string]any) *genai.FunctionResponse {
	t.Helper()
	resp := lib(context.Background(), &genai.FunctionCall{ID: "1", Name: name, Args: args})
	require.NotNil(t, resp)
	assert.Equal(t, "1", resp.ID)
	return resp
}

func TestAllocationTools(t *testing.T) {
	state := allocation.DemoState()
	lib := NewLibrary(AllocationTools(state, renderer.Options{AccountName: "Demo"}))

	t.Run("allocation", func(t *testing.T) {
		resp := call(t, lib, "Allocation", nil)
		out, ok := resp.Response["output"].(string)
		require.True(t, ok, "response: %v", resp.Response)
		assert.Contains(t, out, "Demo Allocation")
	})

	t.Run("simulate class", func(t *testing.T) {
		resp := call(t, lib, "SimulateClassTarget", map[string]any{"class": "stocks", "percent": 30.0})
		out, ok := resp.Response["output"].(string)
		require.True(t, ok, "response: %v", resp.Response)
		assert.Contains(t, out, "30.00%")
		// the simulation never changes the state
		assert.Equal(t, allocation.Percentage{Percent: 60}, state.Classes[allocation.Stocks])
	})

	t.Run("simulate asset", func(t *testing.T) {
		id := allocation.ClassAssets(state.Assets, allocation.Bonds)[0].ID
		resp := call(t, lib, "SimulateAssetTarget", map[string]any{"id": id, "percent": 100})
		_, ok := resp.Response["output"].(string)
		assert.True(t, ok, "response: %v", resp.Response)
	})

	errs := []struct {
		name string
		args map[string]any
		want string
	}{
		{"SimulateClassTarget", map[string]any{"percent": 10.0}, `missing argument "class"`},
		{"SimulateClassTarget", map[string]any{"class": "GOLD", "percent": 10.0}, "unknown asset class"},
		{"SimulateClassTarget", map[string]any{"class": "BONDS", "percent": "ten"}, "not a number"},
		{"SimulateClassTarget", map[string]any{"class": "BONDS", "percent": 120.0}, "between 0 and 100"},
		{"SimulateAssetTarget", map[string]any{"id": "nope", "percent": 10.0}, "unknown asset"},
		{"Unknown", nil, "unknown function"},
	}
	for _, tt := range errs {
		t.Run("error "+tt.name+" "+tt.want, func(t *testing.T) {
			resp := call(t, lib, tt.name, tt.args)
			msg, ok := resp.Response["error"].(string)
			require.True(t, ok, "response: %v", resp.Response)
			assert.True(t, strings.Contains(msg, tt.want), "error %q does not contain %q", msg, tt.want)
		})
	}
}

func TestExpertDeclaration(t *testing.T) {
	e := NewAllocator(allocation.DemoState(), renderer.Options{})
	d := e.Declaration()
	assert.Equal(t, "Allocator", d.Name)
	assert.Equal(t, []string{"question"}, d.Parameters.Required)

	f := newFacilitator(e, NewAnalyst())
	names := make([]string, 0)
	for _, decl := range f.Config.Tools[0].FunctionDeclarations {
		names = append(names, decl.Name)
	}
	assert.Equal(t, []string{"Allocator", "Analyst"}, names)
}

func TestExpertCall_InvalidQuestion(t *testing.T) {
	e := NewAnalyst()
	resp := e.Call(context.Background(), "1", map[string]any{"question": 42})
	assert.Contains(t, resp.Response["error"], "invalid type")
}
