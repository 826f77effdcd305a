package resources

import (
	"sort"
	"sync"
)

const (
	disclaimerText = "This server provides educational information only and is not individualized " +
		"investment, tax, or legal advice. Consider consulting a licensed professional."

	budgetPromptText = "You are a budgeting assistant. Ask the user for: (1) monthly income, " +
		"(2) fixed costs, (3) variable costs, and (4) desired savings %. Then call the " +
		"`budget_plan` tool with those numbers and present a clear, friendly summary."
)

// Resource is a static document addressable by URI.
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MIMEType    string `json:"mimeType"`
	Text        string `json:"-"`
}

// Prompt is a named instruction template for guiding a conversational
// caller toward the right tool invocations.
type Prompt struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Text        string `json:"-"`
}

// Registry holds the advertised resources and prompts.
type Registry struct {
	mu        sync.RWMutex
	resources map[string]Resource
	prompts   map[string]Prompt
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		resources: map[string]Resource{},
		prompts:   map[string]Prompt{},
	}
}

// Default returns the registry shipped with the server: the financial
// disclaimer resource and the budgeting prompt.
func Default() *Registry {
	r := NewRegistry()
	r.AddResource(Resource{
		URI:         "memory://disclaimer",
		Name:        "disclaimer",
		Description: "General-purpose financial disclaimer.",
		MIMEType:    "text/plain",
		Text:        disclaimerText,
	})
	r.AddPrompt(Prompt{
		Name:        "budget_prompt",
		Description: "A prompt template to help the model guide users through creating a budget.",
		Text:        budgetPromptText,
	})
	return r
}

// AddResource registers a resource, replacing any previous one at the same
// URI.
func (r *Registry) AddResource(res Resource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resources[res.URI] = res
}

// AddPrompt registers a prompt, replacing any previous one with the same
// name.
func (r *Registry) AddPrompt(p Prompt) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompts[p.Name] = p
}

// Resources lists the registered resources sorted by URI.
func (r *Registry) Resources() []Resource {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]Resource, 0, len(r.resources))
	for _, res := range r.resources {
		list = append(list, res)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].URI < list[j].URI })
	return list
}

// ReadResource returns the resource at uri.
func (r *Registry) ReadResource(uri string) (Resource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, exists := r.resources[uri]
	return res, exists
}

// Prompts lists the registered prompts sorted by name.
func (r *Registry) Prompts() []Prompt {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]Prompt, 0, len(r.prompts))
	for _, p := range r.prompts {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Prompt returns the prompt with the given name.
func (r *Registry) Prompt(name string) (Prompt, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, exists := r.prompts[name]
	return p, exists
}
