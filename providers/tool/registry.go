package tool

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry manages a collection of tools with thread-safe operations and
// dispatches invocations by name. Dispatch is a hard fault boundary: whatever
// goes wrong inside a tool, the caller always receives a descriptive string,
// never an error or a panic.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]GenericTool
}

// NewRegistry creates a new empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]GenericTool),
	}
}

// NewRegistryWithTools creates a new registry pre-populated with the given
// tools. Tool names are taken from each tool's ToolInfo().Name.
func NewRegistryWithTools(tools ...GenericTool) *Registry {
	registry := NewRegistry()
	registry.AddTools(tools...)
	return registry
}

// AddTools adds multiple tools to the registry.
// Tool names are automatically extracted from each tool's ToolInfo().Name and
// stored in lowercase. If a tool with the same name already exists, it will
// be replaced.
func (r *Registry) AddTools(tools ...GenericTool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range tools {
		info := t.ToolInfo()
		r.tools[strings.ToLower(info.Name)] = t
	}
}

// Get retrieves a tool by name (case-insensitive).
// Returns the tool and true if found, nil and false otherwise.
func (r *Registry) Get(name string) (GenericTool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, exists := r.tools[strings.ToLower(name)]
	return t, exists
}

// Has checks if a tool with the given name exists (case-insensitive).
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.tools[strings.ToLower(name)]
	return exists
}

// Size returns the number of tools in the registry.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}

// Infos returns the advertised metadata of all registered tools, sorted by
// name so prompt rendering is deterministic.
func (r *Registry) Infos() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]Info, 0, len(r.tools))
	for _, t := range r.tools {
		infos = append(infos, t.ToolInfo())
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// Dispatch invokes the named tool with the given arguments and returns the
// observation text. No fault crosses this boundary: an unknown name, a tool
// error, and even a panicking tool all come back as a descriptive string
// prefixed with "Error:", so the agent loop can feed it to the model and
// continue.
func (r *Registry) Dispatch(ctx context.Context, name string, args map[string]string) (observation string) {
	t, exists := r.Get(name)
	if !exists {
		return fmt.Sprintf("Error: unknown tool '%s'", name)
	}

	defer func() {
		if rec := recover(); rec != nil {
			observation = fmt.Sprintf("Error: tool '%s' panicked: %v", name, rec)
		}
	}()

	result, err := t.Invoke(ctx, args)
	if err != nil {
		return fmt.Sprintf("Error: tool '%s' failed: %s", name, err.Error())
	}
	return result
}
