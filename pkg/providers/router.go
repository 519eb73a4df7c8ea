package providers

// Provider name constants for the four adapters, matching spec.md's
// A/O/G/D shorthand (Anthropic, OpenAI, Gemini, local-first "D" == Ollama).
const (
	NameAnthropic = "anthropic"
	NameOpenAI    = "openai"
	NameGemini    = "gemini"
	NameOllama    = "ollama"
)

// defaultRouting is the router's built-in task -> ordered provider-name
// list, exactly as spec.md §4.3 tabulates it.
var defaultRouting = map[TaskType][]string{
	TaskCodeGeneration: {NameAnthropic, NameOpenAI, NameOllama},
	TaskIntentAnalysis: {NameAnthropic, NameOpenAI, NameGemini},
	TaskMathEnrichment: {NameGemini, NameOllama, NameAnthropic},
	TaskCreative:       {NameAnthropic, NameOpenAI},
}

// Router maps a task type to an ordered list of provider names and resolves
// that list against a Registry. Holds no provider references itself — "a
// map[task -> []providerName]" per spec.md §9 — avoiding any
// global-singleton pattern.
type Router struct {
	registry *Registry
	routing  map[TaskType][]string
}

// NewRouter builds a Router over registry using the default routing table.
// Use WithRouting to override it.
func NewRouter(registry *Registry) *Router {
	routing := make(map[TaskType][]string, len(defaultRouting))
	for k, v := range defaultRouting {
		routing[k] = append([]string(nil), v...)
	}
	return &Router{registry: registry, routing: routing}
}

// WithRouting replaces the routing table for one task type.
func (r *Router) WithRouting(task TaskType, names []string) *Router {
	r.routing[task] = append([]string(nil), names...)
	return r
}

// PreferLocalFirst moves the local Ollama adapter to the front of every
// task's routing list, in place, implementing the COST_OPTIMIZE env var
// from spec.md §6: the free local model is tried before any paid API call,
// with the rest of the task's preference order unchanged behind it.
func (r *Router) PreferLocalFirst() *Router {
	for task, names := range r.routing {
		reordered := make([]string, 0, len(names))
		reordered = append(reordered, NameOllama)
		for _, n := range names {
			if n != NameOllama {
				reordered = append(reordered, n)
			}
		}
		r.routing[task] = reordered
	}
	return r
}

// GetProvider walks task's preferred provider list, returning the first
// available provider. If none of the preferred providers are available, it
// falls back to scanning every registered provider. Returns nil if none are
// available at all.
func (r *Router) GetProvider(task TaskType) Provider {
	for _, name := range r.routing[task] {
		if p, err := r.registry.Get(name); err == nil && p.IsAvailable() {
			return p
		}
	}
	for _, p := range r.registry.GetAll() {
		if p.IsAvailable() {
			return p
		}
	}
	return nil
}
