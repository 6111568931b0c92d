package webframe_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/webframe"
	"github.com/rohanthewiz/webframe/core/ioc"
)

// greeter echoes its bound arguments so tests can see what the binder produced.
type greeter struct{}

func (greeter) Routes() []ioc.Route {
	return []ioc.Route{
		ioc.Get("/greeting", "greeting", func(args ioc.Args) (ioc.Result, error) {
			name, ok := args.Get(0)
			if !ok {
				return ioc.Text("Hello, <absent>!"), nil
			}
			return ioc.Text("Hello, " + name + "!"), nil
		}, ioc.Query("name", "World")),
		ioc.Get("/optional", "optional", func(args ioc.Args) (ioc.Result, error) {
			_, ok0 := args.Get(0)
			_, ok1 := args.Get(1)
			if !ok0 && !ok1 {
				return ioc.Text("both absent"), nil
			}
			return ioc.Text(args.String(0) + "|" + args.String(1)), nil
		}, ioc.Unbound(), ioc.Query("q", "")),
		ioc.Get("/fail", "fail", func(ioc.Args) (ioc.Result, error) {
			return ioc.Result{}, errors.New("database is on fire")
		}),
		ioc.Get("/panic", "panic", func(ioc.Args) (ioc.Result, error) {
			panic("Something unbelievable happened")
		}),
		ioc.Get("/number", "number", func(ioc.Args) (ioc.Result, error) {
			return ioc.Value(42), nil
		}),
	}
}

func newDispatcher(t *testing.T) *webframe.Dispatcher {
	t.Helper()
	c := ioc.NewContainer()
	assert.Nil(t, c.Register(ioc.Instance(greeter{})))
	return webframe.NewDispatcher(c)
}

func TestDispatchBindsQueryParameter(t *testing.T) {
	d := newDispatcher(t)

	assert.Equal(t, d.Dispatch("GET", "/greeting?name=Ana"), "Hello, Ana!")
	assert.Equal(t, d.Dispatch("GET", "/greeting"), "Hello, World!")
	assert.Equal(t, d.Dispatch("GET", "/greeting?name="), "Hello, World!")
	assert.Equal(t, d.Dispatch("GET", "/greeting?name=a&name=b"), "Hello, b!")
	assert.Equal(t, d.Dispatch("GET", "/greeting?name=Ana%20B"), "Hello, Ana%20B!")
}

func TestDispatchAbsentArguments(t *testing.T) {
	d := newDispatcher(t)

	assert.Equal(t, d.Dispatch("GET", "/optional"), "both absent")
	assert.Equal(t, d.Dispatch("GET", "/optional?q=go"), "|go")
}

func TestDispatchNotFound(t *testing.T) {
	d := newDispatcher(t)

	body := d.Dispatch("GET", "/missing?x=1")
	assert.Contains(t, body, "404 - Not Found")
	assert.Contains(t, body, "The requested path /missing was not found.")
	assert.NotContains(t, body, "x=1")

	body = d.Dispatch("POST", "/greeting")
	assert.Contains(t, body, "404 - Not Found")

	body = d.Dispatch("GET", "/greeting/")
	assert.Contains(t, body, "/greeting/")
}

func TestDispatchHandlerError(t *testing.T) {
	d := newDispatcher(t)

	body := d.Dispatch("GET", "/fail")
	assert.Contains(t, body, "500 - Internal Server Error")
	assert.Contains(t, body, "An error occurred: database is on fire")

	body = d.Dispatch("GET", "/panic")
	assert.Contains(t, body, "500 - Internal Server Error")
	assert.Contains(t, body, "Something unbelievable happened")

	// Still serving afterwards
	assert.Equal(t, d.Dispatch("GET", "/greeting"), "Hello, World!")
}

func TestDispatchNonTextResult(t *testing.T) {
	d := newDispatcher(t)
	assert.Equal(t, d.Dispatch("GET", "/number"), "Response generated")
}

func TestDispatchPagesHaveOneDoctype(t *testing.T) {
	d := newDispatcher(t)

	for _, body := range []string{d.Dispatch("GET", "/missing"), d.Dispatch("GET", "/fail")} {
		assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html><html>"))
		assert.Equal(t, strings.Count(body, "<!DOCTYPE"), 1)
	}
}
