package agent

import (
	"context"
	"fmt"

	"github.com/etnz/allocation"
	"github.com/etnz/allocation/docs"
	"github.com/etnz/allocation/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here to rebalance their portfolio toward a target allocation. They want to
			understand the moves to make, and how changing a target would change them.

			Devise a plan of questions to ask to each experts and come up with the best reponse to the user's request.
			Never claim a target was changed: the experts can only simulate changes.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst returns an expert grounded on Google Search about funds,
// companies and markets.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is a market analyst,
		very well aware of the financial products, funds and companies, and of the latest news about them.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a market analyst, you can search and find about anything related to
			funds, companies, bonds and markets. You leverage Google Search to
			ground your assertions in a solid truth.
			`}}},
		},
	}
}

// NewAllocator returns the expert in charge of the user's target allocation.
// It reads 'state' and simulates edits on it, 'state' is never saved.
func NewAllocator(state allocation.State, opts renderer.Options) *Expert {
	lib := AllocationTools(state, opts)
	doc, err := docs.Join("targets", "redistribution")
	if err != nil {
		doc = ""
	}

	return &Expert{
		Name: "Allocator",
		Description: `This is the Allocator. It knows the user's assets, their target allocation and the
		rebalancing moves to reach it. It can also simulate a change of target and tell the resulting moves.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are in charge of the user's target allocation.
				Use the available tools to read the allocation and to simulate target changes.
				Amounts are in the allocation currency. Here is how targets work:

				` + doc}}},
		},
		Library: NewLibrary(lib),
	}
}

// AllocationTools returns the functions reading and simulating edits on 'state'.
func AllocationTools(state allocation.State, opts renderer.Options) []*Func {
	render := func(s allocation.State) string {
		return renderer.AllocationMarkdown(allocation.Compute(s), opts)
	}
	simulate := func(id, name string, e allocation.Edit) *genai.FunctionResponse {
		next, _, err := allocation.Reduce(state, e)
		if err != nil {
			return errorResponse(id, name, err)
		}
		return outputResponse(id, name, render(next))
	}

	return []*Func{
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Allocation",
				Description: "Allocation renders the current allocation: per class and per asset targets, current values, deltas and actions.",
				Response:    markdownResponse,
			},
			Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
				return outputResponse(id, "Allocation", render(state))
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name: "SimulateClassTarget",
				Description: `SimulateClassTarget renders the allocation as it would be if the target percent of an asset class was changed.
				The other PERCENTAGE classes share the remaining percent, proportionally to their target.`,
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"class":   {Type: genai.TypeString, Description: "The asset class: STOCKS, BONDS, CASH, CRYPTO or REAL_ESTATE."},
						"percent": {Type: genai.TypeNumber, Description: "The new target percent of the class, between 0 and 100."},
					},
					Required: []string{"class", "percent"},
				},
				Response: markdownResponse,
			},
			Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
				const name = "SimulateClassTarget"
				c, err := stringArg(args, "class")
				if err != nil {
					return errorResponse(id, name, err)
				}
				class, err := allocation.ParseClass(c)
				if err != nil {
					return errorResponse(id, name, err)
				}
				p, err := numberArg(args, "percent")
				if err != nil {
					return errorResponse(id, name, err)
				}
				return simulate(id, name, allocation.EditClassPercent{Class: class, Percent: p})
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name: "SimulateAssetTarget",
				Description: `SimulateAssetTarget renders the allocation as it would be if the target percent of an asset within its class was changed.
				The other PERCENTAGE assets of the class share the remaining percent, proportionally to their value.`,
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"id":      {Type: genai.TypeString, Description: "The asset id, as listed in the allocation."},
						"percent": {Type: genai.TypeNumber, Description: "The new target percent of the asset in its class, between 0 and 100."},
					},
					Required: []string{"id", "percent"},
				},
				Response: markdownResponse,
			},
			Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
				const name = "SimulateAssetTarget"
				asset, err := stringArg(args, "id")
				if err != nil {
					return errorResponse(id, name, err)
				}
				p, err := numberArg(args, "percent")
				if err != nil {
					return errorResponse(id, name, err)
				}
				return simulate(id, name, allocation.EditAssetPercent{ID: asset, Percent: p})
			},
		},
	}
}

var markdownResponse = &genai.Schema{
	Type:        genai.TypeString,
	Description: "A markdown report of the allocation: class and asset tables, and the rebalancing moves.",
}

func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok {
		return "", fmt.Errorf("missing argument %q", name)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q is not a string as expected but %T", name, v)
	}
	return s, nil
}

func numberArg(args map[string]any, name string) (float64, error) {
	v, ok := args[name]
	if !ok {
		return 0, fmt.Errorf("missing argument %q", name)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("argument %q is not a number as expected but %T", name, v)
}
