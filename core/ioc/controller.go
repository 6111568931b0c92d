package ioc

import (
	"github.com/rohanthewiz/webframe/consts"
)

// Controller is the capability marker for a type that exposes routes.
// A value that does not implement it is rejected at registration.
type Controller interface {
	Routes() []Route
}

// HandlerFunc produces a response for a matched route.
// args holds one entry per declared Param, in declaration order.
type HandlerFunc func(args Args) (Result, error)

// Route is the declarative description of one handler: verb, exact path,
// parameter specs and the function to invoke.
type Route struct {
	Method  string
	Path    string
	Name    string // for logs, e.g. "greeting"
	Params  []Param
	Handler HandlerFunc
}

// Get declares a GET route.
func Get(path string, name string, handler HandlerFunc, params ...Param) Route {
	return Route{
		Method:  consts.MethodGet,
		Path:    path,
		Name:    name,
		Params:  params,
		Handler: handler,
	}
}

// ParamKind tells the binder where a parameter's value comes from.
type ParamKind uint8

const (
	// ParamUnbound parameters always receive an absent value.
	ParamUnbound ParamKind = iota
	// ParamQuery parameters are filled from the query string.
	ParamQuery
)

// Param describes one handler parameter.
// An empty Default means there is no default.
type Param struct {
	Kind    ParamKind
	Name    string
	Default string
}

// Query declares a parameter bound to the query-string key name.
func Query(name string, defaultValue string) Param {
	return Param{Kind: ParamQuery, Name: name, Default: defaultValue}
}

// Unbound declares a parameter with no binding.
func Unbound() Param {
	return Param{Kind: ParamUnbound}
}

// Arg is a bound argument. Valid is false when no value was available.
type Arg struct {
	Value string
	Valid bool
}

// Args are the bound arguments of one invocation.
type Args []Arg

// Get returns the i-th argument and whether it is present.
func (a Args) Get(i int) (string, bool) {
	if i < 0 || i >= len(a) || !a[i].Valid {
		return "", false
	}
	return a[i].Value, true
}

// String returns the i-th argument, or "" when absent.
func (a Args) String(i int) string {
	s, _ := a.Get(i)
	return s
}

// Result is what a handler returns: either literal text or some other value.
type Result struct {
	text   string
	isText bool
	value  any
}

// Text is a result whose body is s, verbatim.
func Text(s string) Result {
	return Result{text: s, isText: true}
}

// Value is a non-text result. Its body is a fixed placeholder.
func Value(v any) Result {
	return Result{value: v}
}

// IsText reports whether the result carries a literal body.
func (r Result) IsText() bool {
	return r.isText
}

// Body returns the response body for the result.
func (r Result) Body() string {
	if r.isText {
		return r.text
	}
	return consts.NonTextBody
}

// Handler is a route bound to its controller instance. It is not modified after registration.
type Handler struct {
	Controller any
	Name       string
	Fn         HandlerFunc
	Params     []Param
}

// String is used in route listings.
func (h *Handler) String() string {
	return h.Name
}

// Invoke calls the handler with args.
func (h *Handler) Invoke(args Args) (Result, error) {
	return h.Fn(args)
}
