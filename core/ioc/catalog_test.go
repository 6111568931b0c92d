package ioc_test

import (
	"errors"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/webframe/core/ioc"
)

func testCatalog() ioc.Catalog {
	return ioc.Catalog{
		"ioc_test.TestController": {New: func() (any, error) { return &testController{}, nil }},
		"ioc_test.PlainType":      {New: func() (any, error) { return plainType{}, nil }},
		"ioc_test.Mixed":          {Name: "Mixed", New: func() (any, error) { return mixedController{}, nil }},
	}
}

func TestCatalogResolve(t *testing.T) {
	f, err := testCatalog().Resolve("ioc_test.TestController")
	assert.Nil(t, err)
	assert.Equal(t, f.Name, "TestController")

	_, err = testCatalog().Resolve("co.invalid.NonExistentController")
	assert.True(t, errors.Is(err, ioc.ErrUnknownController))
}

func TestCatalogFactoriesOrdered(t *testing.T) {
	factories := testCatalog().Factories()
	assert.Equal(t, len(factories), 3)
	assert.Equal(t, factories[0].Name, "Mixed")
	assert.Equal(t, factories[1].Name, "PlainType")
	assert.Equal(t, factories[2].Name, "TestController")
}

func TestRegisterByName(t *testing.T) {
	c := ioc.NewContainer()
	cat := testCatalog()

	assert.Nil(t, c.RegisterByName(cat, "ioc_test.TestController"))
	_, ok := c.Controller("TestController")
	assert.True(t, ok)

	err := c.RegisterByName(cat, "co.invalid.NonExistentController")
	assert.True(t, errors.Is(err, ioc.ErrUnknownController))

	err = c.RegisterByName(cat, "ioc_test.PlainType")
	assert.True(t, errors.Is(err, ioc.ErrNotAController))

	assert.Equal(t, c.ControllerCount(), 1)
}

func TestRegisterCatalog(t *testing.T) {
	c := ioc.NewContainer()
	n := c.RegisterAll(testCatalog().Factories())

	assert.Equal(t, n, 2)
	assert.Equal(t, c.RouteCount(), 2)
}
