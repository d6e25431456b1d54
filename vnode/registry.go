package vnode

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	// ErrEmptyID indicates a registration without an id.
	ErrEmptyID = errors.New("vnode: component id is required")

	// ErrReservedTag indicates an id that collides with a built-in tag.
	ErrReservedTag = errors.New("vnode: component id is a reserved tag")
)

var reservedTags = map[string]bool{
	"slot": true, "component": true,
	"html": true, "body": true, "base": true, "head": true, "link": true,
	"meta": true, "style": true, "title": true, "address": true,
	"article": true, "aside": true, "footer": true, "header": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"nav": true, "section": true, "div": true, "dd": true, "dl": true,
	"dt": true, "figure": true, "hr": true, "img": true, "li": true,
	"main": true, "ol": true, "p": true, "pre": true, "ul": true, "a": true,
	"b": true, "br": true, "code": true, "em": true, "i": true, "span": true,
	"strong": true, "table": true, "tbody": true, "td": true, "th": true,
	"thead": true, "tr": true, "button": true, "form": true, "input": true,
	"label": true, "option": true, "select": true, "textarea": true,
	"template": true, "svg": true, "canvas": true, "video": true,
	"audio": true, "iframe": true, "script": true,
}

// IsReservedTag reports whether tag is a built-in element name.
func IsReservedTag(tag string) bool {
	return reservedTags[strings.ToLower(tag)]
}

// Registry mints constructors and resolves them by id.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Identity: every registration receives a CID not used before by this
//   registry, including re-registrations of the same id.
type Registry struct {
	mu      sync.RWMutex
	nextCID uint64
	byID    map[string]*Constructor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*Constructor)}
}

// Register creates a constructor for id. An empty name defaults to id.
// Registering an existing id replaces it.
func (r *Registry) Register(id, name string) (*Constructor, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if IsReservedTag(id) {
		return nil, fmt.Errorf("%w: %q", ErrReservedTag, id)
	}
	if name == "" {
		name = id
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ctor := &Constructor{CID: r.nextCID, Name: name}
	r.nextCID++
	r.byID[id] = ctor
	return ctor, nil
}

// Lookup returns the constructor registered under id.
func (r *Registry) Lookup(id string) (*Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ctor, ok := r.byID[id]
	return ctor, ok
}

// Component builds a component VNode for the constructor registered as id,
// referenced by tag. It returns nil if id is unknown.
func (r *Registry) Component(id, tag, key string) *VNode {
	ctor, ok := r.Lookup(id)
	if !ok {
		return nil
	}
	return &VNode{
		Tag:              tag,
		Key:              key,
		ComponentOptions: &ComponentOptions{Ctor: ctor, Tag: tag},
	}
}
