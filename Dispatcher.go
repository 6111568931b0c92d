package webframe

import (
	"fmt"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
	"github.com/rohanthewiz/webframe/core/ioc"
)

// RouteSource resolves a method and exact path to a handler.
// *ioc.Container satisfies it.
type RouteSource interface {
	Lookup(method string, path string) (*ioc.Handler, bool)
}

// Dispatcher turns a request method and target into a response body.
type Dispatcher struct {
	routes RouteSource
}

// NewDispatcher creates a dispatcher over the given routes.
func NewDispatcher(routes RouteSource) *Dispatcher {
	return &Dispatcher{routes: routes}
}

// Dispatch resolves and invokes the handler for method and rawPath and returns the body to send.
// It never fails: a missing route renders a not-found page and a failing handler an error page.
func (d *Dispatcher) Dispatch(method string, rawPath string) string {
	urlPath, queryString := splitTarget(rawPath)
	query := parseQuery(queryString)

	h, ok := d.routes.Lookup(method, urlPath)
	if !ok {
		logger.Debug("No route handler found", "method", method, "path", urlPath)
		return notFoundPage(urlPath)
	}

	res, err := invoke(h, ioc.Bind(h, query))
	if err != nil {
		logger.LogErr(serr.Wrap(err, "handler", h.Name, "path", urlPath), "Error processing request")
		return errorPage(err.Error())
	}

	return res.Body()
}

// invoke calls the handler, turning a panic into an error.
func invoke(h *ioc.Handler, args ioc.Args) (res ioc.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	return h.Invoke(args)
}
