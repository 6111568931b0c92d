package ioc

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
	"github.com/rohanthewiz/webframe/consts"
	"github.com/rohanthewiz/webframe/core/rtr"
)

// Factory produces a controller singleton.
// Name is the controller's logical name; when empty it is derived from the instance's type.
type Factory struct {
	Name string
	New  func() (any, error)
}

// Instance wraps an already constructed controller in a Factory.
func Instance(v any) Factory {
	return Factory{New: func() (any, error) { return v, nil }}
}

// Container holds controller singletons and the route table built from their declarations.
// Register everything before serving; lookups are safe from many goroutines.
type Container struct {
	mu          sync.RWMutex
	controllers map[string]any
	routes      *rtr.HashRouter[*Handler]
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{
		controllers: make(map[string]any),
		routes:      rtr.NewHashRouter[*Handler](),
	}
}

// Register instantiates the controller made by f, stores it under its logical name
// and adds a route for each GET declaration, replacing any route already on the same path.
// Failures are logged and returned; nothing is stored for a failed controller.
func (c *Container) Register(f Factory) error {
	name := f.Name
	if f.New == nil {
		return c.fail(&RegistrationError{Controller: nameOr(name), Err: fmt.Errorf("%w: no constructor", ErrInstantiation)})
	}

	inst, err := f.New()
	if err != nil {
		return c.fail(&RegistrationError{Controller: nameOr(name), Err: fmt.Errorf("%w: %w", ErrInstantiation, err)})
	}
	if inst == nil {
		return c.fail(&RegistrationError{Controller: nameOr(name), Err: fmt.Errorf("%w: constructor returned nil", ErrInstantiation)})
	}
	if name == "" {
		name = typeName(inst)
	}

	ctlr, ok := inst.(Controller)
	if !ok {
		return c.fail(&RegistrationError{Controller: name, Err: ErrNotAController})
	}

	c.mu.Lock()
	c.controllers[name] = inst
	c.mu.Unlock()

	for _, rt := range ctlr.Routes() {
		c.addRoute(name, inst, rt)
	}

	logger.Info("Controller registered", "controller", name)
	return nil
}

// RegisterAll registers each factory in turn. A failure is logged and skipped.
// It returns the number of controllers registered.
func (c *Container) RegisterAll(factories []Factory) (registered int) {
	for _, f := range factories {
		if err := c.Register(f); err != nil {
			continue // already logged
		}
		registered++
	}

	logger.Info("Controller registration completed",
		"registered", fmt.Sprint(registered), "candidates", fmt.Sprint(len(factories)))
	return
}

// RegisterByName resolves id in cat and registers it.
func (c *Container) RegisterByName(cat Catalog, id string) error {
	f, err := cat.Resolve(id)
	if err != nil {
		return c.fail(err)
	}
	return c.Register(f)
}

// Lookup returns the handler registered for method and path. Matching is exact.
func (c *Container) Lookup(method string, path string) (*Handler, bool) {
	return c.routes.Lookup(method, path)
}

// Controller returns the singleton registered under name.
func (c *Container) Controller(name string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	inst, ok := c.controllers[name]
	return inst, ok
}

func (c *Container) ControllerCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.controllers)
}

func (c *Container) RouteCount() int {
	return c.routes.Len()
}

// Routes lists the route table.
func (c *Container) Routes() []rtr.RouteList {
	return c.routes.ListRoutes()
}

func (c *Container) addRoute(ctlrName string, inst any, rt Route) {
	handlerName := ctlrName + "." + rt.Name

	switch {
	case rt.Method != consts.MethodGet:
		logger.Warn("Route skipped, only GET is supported", "handler", handlerName, "method", rt.Method, "path", rt.Path)
		return
	case !strings.HasPrefix(rt.Path, "/"):
		logger.Warn("Route skipped, path must start with /", "handler", handlerName, "path", rt.Path)
		return
	case rt.Handler == nil:
		logger.Warn("Route skipped, no handler function", "handler", handlerName, "path", rt.Path)
		return
	}

	h := &Handler{
		Controller: inst,
		Name:       handlerName,
		Fn:         rt.Handler,
		Params:     append([]Param(nil), rt.Params...),
	}

	if prev, exists := c.routes.Lookup(rt.Method, rt.Path); exists {
		logger.Warn("Route replaced", "path", rt.Path, "previous", prev.Name, "handler", handlerName)
	}
	c.routes.Add(rt.Method, rt.Path, h)

	logger.Info("Registered route", "method", rt.Method, "path", rt.Path, "handler", handlerName)
}

func (c *Container) fail(err error) error {
	logger.LogErr(serr.Wrap(err, "component", "ioc"), "Controller registration failed")
	return err
}

// typeName derives a logical controller name, e.g. "*controllers.GreetingController" -> "GreetingController".
func typeName(v any) string {
	name := strings.TrimLeft(fmt.Sprintf("%T", v), "*")
	if dot := strings.LastIndexByte(name, '.'); dot >= 0 {
		name = name[dot+1:]
	}
	return name
}

func nameOr(name string) string {
	if name == "" {
		return "<unnamed>"
	}
	return name
}
