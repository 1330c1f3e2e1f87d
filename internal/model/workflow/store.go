package workflow

import "strings"

// Store exposes workflow lookup for HTTP handlers and the session proxy.
type Store interface {
	List() []Definition
	Resolve(value string) (Definition, bool)
	ResolveID(value string) string
	PromptsFor(value string) []StartPrompt
}

// MemoryStore implements Store with an in-memory slice. The library is fixed
// at startup, so unsynchronized concurrent reads are safe.
type MemoryStore struct {
	items []Definition
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied workflows.
func NewMemoryStore(items []Definition) *MemoryStore {
	return &MemoryStore{items: append([]Definition(nil), items...)}
}

// List returns the workflow library.
func (s *MemoryStore) List() []Definition {
	return append([]Definition(nil), s.items...)
}

// Resolve looks a workflow up by wf_id, name slug, or case-insensitive exact
// name, in that order. On colliding ids or slugs the first listed entry wins.
func (s *MemoryStore) Resolve(value string) (Definition, bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		return Definition{}, false
	}

	for _, item := range s.items {
		if item.ID == v {
			return item, true
		}
	}

	slug := Slugify(v)
	for _, item := range s.items {
		if Slugify(item.Name) == slug {
			return item, true
		}
	}

	for _, item := range s.items {
		if strings.EqualFold(item.Name, v) {
			return item, true
		}
	}

	return Definition{}, false
}

// ResolveID maps a workflow key to its wf_id. Unknown input passes through
// trimmed so an already-opaque id still works.
func (s *MemoryStore) ResolveID(value string) string {
	if def, ok := s.Resolve(value); ok && def.ID != "" {
		return def.ID
	}
	return strings.TrimSpace(value)
}

// PromptsFor returns the start prompts for a workflow key, substituting the
// default icon for any name the widget does not accept. Unknown workflows and
// workflows without prompts get the built-in default prompt.
func (s *MemoryStore) PromptsFor(value string) []StartPrompt {
	def, ok := s.Resolve(value)
	if !ok || len(def.Prompts) == 0 {
		return []StartPrompt{DefaultPrompt}
	}

	prompts := make([]StartPrompt, 0, len(def.Prompts))
	for _, prompt := range def.Prompts {
		if _, ok := allowedIcons[prompt.Icon]; !ok {
			prompt.Icon = defaultIcon
		}
		prompts = append(prompts, prompt)
	}
	return prompts
}
