// Package tools is the secondary agent-facing interface: a catalog of
// named operations and a single call endpoint dispatching to them. Tool
// failures are reported as text inside the result, never as transport
// errors, so a caller can always read what went wrong.
package tools

import (
	"context"
	"fmt"
	"sort"
)

// Tool describes one callable operation in the catalog.
type Tool struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Parameters  map[string]string `json:"parameters,omitempty"`
}

// Result is what every call returns. On failure Content holds the error
// text and IsError is set.
type Result struct {
	Content any  `json:"content"`
	IsError bool `json:"is_error"`
}

// HandlerFunc executes a tool against its arguments.
type HandlerFunc func(ctx context.Context, args map[string]any) (any, error)

// Registry holds the tool catalog and its handlers.
type Registry struct {
	tools    map[string]Tool
	handlers map[string]HandlerFunc
}

func NewRegistry() *Registry {
	return &Registry{
		tools:    make(map[string]Tool),
		handlers: make(map[string]HandlerFunc),
	}
}

// Register adds a tool. A duplicate name overwrites the earlier entry.
func (r *Registry) Register(tool Tool, handler HandlerFunc) {
	r.tools[tool.Name] = tool
	r.handlers[tool.Name] = handler
}

// Catalog returns all registered tools sorted by name.
func (r *Registry) Catalog() []Tool {
	out := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Call dispatches to the named tool. Both an unknown name and a handler
// error come back as an error Result.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) Result {
	handler, ok := r.handlers[name]
	if !ok {
		return Result{Content: fmt.Sprintf("tool tidak dikenal: %s", name), IsError: true}
	}

	content, err := handler(ctx, args)
	if err != nil {
		return Result{Content: err.Error(), IsError: true}
	}
	return Result{Content: content}
}
