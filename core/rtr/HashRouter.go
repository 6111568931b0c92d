package rtr

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rohanthewiz/webframe/consts"
)

// HashRouter is an exact-match route table keyed by method and path.
// Routes are normally added during startup and only read while serving;
// the lock keeps late registration safe (single writer, many readers).
type HashRouter[T any] struct {
	mu  sync.RWMutex
	get map[string]T
}

// NewHashRouter creates a new router containing initialized hashmaps for every supported HTTP method.
// It is important to use this method when a new hash router is needed
func NewHashRouter[T any]() *HashRouter[T] {
	return &HashRouter[T]{
		get: make(map[string]T, 16),
	}
}

// Add registers a handler for the given method and path, replacing any previous one.
// It reports false if the method is not supported.
func (hr *HashRouter[T]) Add(method string, path string, handler T) bool {
	hr.mu.Lock()
	defer hr.mu.Unlock()

	hashMap := hr.selectMethodMap(method)
	if hashMap == nil {
		return false
	}
	hashMap[path] = handler
	return true
}

// Lookup finds the handler for the given route.
// Paths are compared byte for byte; there is no trailing slash or case folding.
func (hr *HashRouter[T]) Lookup(method string, path string) (handler T, ok bool) {
	hr.mu.RLock()
	defer hr.mu.RUnlock()

	hashMap := hr.selectMethodMap(method)
	if hashMap == nil {
		return handler, false
	}
	handler, ok = hashMap[path]
	return
}

// Len returns the number of routes across all methods.
func (hr *HashRouter[T]) Len() int {
	hr.mu.RLock()
	defer hr.mu.RUnlock()
	return len(hr.get)
}

// ListRoutes returns a snapshot of the table ordered by method then path.
func (hr *HashRouter[T]) ListRoutes() (routes []RouteList) {
	hr.mu.RLock()
	for k, h := range hr.get {
		routes = append(routes, RouteList{Method: consts.MethodGet, Path: k, HandlerRef: fmt.Sprintf("%v", h)})
	}
	hr.mu.RUnlock()

	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Method != routes[j].Method {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	return
}

// selectMethodMap returns the map based on the given HTTP method.
func (hr *HashRouter[T]) selectMethodMap(method string) map[string]T {
	switch method {
	case consts.MethodGet:
		return hr.get
	default:
		return nil
	}
}
