package ioc_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/webframe/core/ioc"
)

func TestBind(t *testing.T) {
	h := &ioc.Handler{Params: []ioc.Param{
		ioc.Query("name", "World"),
		ioc.Unbound(),
		ioc.Query("page", ""),
	}}

	tests := []struct {
		name     string
		query    map[string]string
		wantName ioc.Arg
		wantPage ioc.Arg
	}{
		{"value present", map[string]string{"name": "Ana", "page": "2"},
			ioc.Arg{Value: "Ana", Valid: true}, ioc.Arg{Value: "2", Valid: true}},
		{"missing uses default", map[string]string{},
			ioc.Arg{Value: "World", Valid: true}, ioc.Arg{}},
		{"empty uses default", map[string]string{"name": "", "page": ""},
			ioc.Arg{Value: "World", Valid: true}, ioc.Arg{}},
		{"nil query", nil,
			ioc.Arg{Value: "World", Valid: true}, ioc.Arg{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := ioc.Bind(h, tt.query)
			assert.Equal(t, len(args), 3)
			assert.Equal(t, args[0], tt.wantName)
			assert.Equal(t, args[1], ioc.Arg{})
			assert.Equal(t, args[2], tt.wantPage)
		})
	}
}

func TestBindUnboundIgnoresQuery(t *testing.T) {
	h := &ioc.Handler{Params: []ioc.Param{{Kind: ioc.ParamUnbound, Name: "name"}}}
	args := ioc.Bind(h, map[string]string{"name": "Ana"})

	_, ok := args.Get(0)
	assert.False(t, ok)
}

func TestArgsAccessors(t *testing.T) {
	args := ioc.Args{{Value: "a", Valid: true}, {}}

	v, ok := args.Get(0)
	assert.True(t, ok)
	assert.Equal(t, v, "a")

	_, ok = args.Get(1)
	assert.False(t, ok)
	_, ok = args.Get(5)
	assert.False(t, ok)
	_, ok = args.Get(-1)
	assert.False(t, ok)

	assert.Equal(t, args.String(0), "a")
	assert.Equal(t, args.String(1), "")
}

func TestResultBody(t *testing.T) {
	assert.Equal(t, ioc.Text("<p>hi</p>").Body(), "<p>hi</p>")
	assert.True(t, ioc.Text("").IsText())
	assert.Equal(t, ioc.Text("").Body(), "")

	assert.False(t, ioc.Value(42).IsText())
	assert.Equal(t, ioc.Value(42).Body(), "Response generated")
	assert.Equal(t, ioc.Value(nil).Body(), "Response generated")
}
