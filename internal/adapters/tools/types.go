// Package tools exposes the directory queries, the sales API and the handoff
// flow as named tools for the agent runtime.
//
// Every tool returns text: either a JSON document the agent reads as data or
// a Hebrew sentence it can relay to the customer. Invoke never fails; errors
// are rendered into the output so a broken tool call cannot break the chat.
package tools

import (
	"context"
	"time"
)

// Property describes a single parameter property for JSON schema.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	// Items describes array element schema (required for type="array")
	Items *PropertyItems `json:"items,omitempty"`
}

// PropertyItems describes the schema for array elements.
type PropertyItems struct {
	Type string `json:"type"`
}

// ToolSchema defines the JSON schema for tool arguments.
type ToolSchema struct {
	Required   []string            `json:"required"`
	Properties map[string]Property `json:"properties"`
}

// ExecuteFunc is the signature for tool execution.
type ExecuteFunc func(ctx context.Context, args map[string]any) (string, error)

// Tool is one named capability offered to the agent.
type Tool struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Schema      ToolSchema  `json:"parameters"`
	Execute     ExecuteFunc `json:"-"`
}

// Validate checks if the tool definition is valid.
func (t *Tool) Validate() error {
	if t.Name == "" {
		return ErrToolNameEmpty
	}
	if t.Execute == nil {
		return ErrToolExecuteNil
	}
	return nil
}

// Call is one requested invocation, as sent by the agent runtime.
type Call struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args"`
}

// Result is what the agent sees for a call. Failed marks outputs that
// describe an error; Empty marks a successful search with no matches.
type Result struct {
	Tool     string        `json:"tool"`
	Output   string        `json:"output"`
	Failed   bool          `json:"failed"`
	Empty    bool          `json:"empty,omitempty"`
	Duration time.Duration `json:"-"`
}

func (r Result) outcome() string {
	switch {
	case r.Failed:
		return "error"
	case r.Empty:
		return "empty"
	}
	return "ok"
}
