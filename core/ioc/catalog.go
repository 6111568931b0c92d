package ioc

import (
	"sort"
)

// Catalog is a static table of controller factories keyed by fully qualified id,
// e.g. "controllers.GreetingController". It stands in for discovering controllers at runtime.
type Catalog map[string]Factory

// Resolve returns the factory for id.
// The factory's Name defaults to the last dotted segment of id.
func (cat Catalog) Resolve(id string) (Factory, error) {
	f, ok := cat[id]
	if !ok {
		return Factory{}, &RegistrationError{Controller: id, Err: ErrUnknownController}
	}

	if f.Name == "" {
		f.Name = simpleName(id)
	}
	return f, nil
}

// Factories returns every factory in the catalog ordered by id.
func (cat Catalog) Factories() []Factory {
	ids := make([]string, 0, len(cat))
	for id := range cat {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	factories := make([]Factory, 0, len(ids))
	for _, id := range ids {
		f, _ := cat.Resolve(id)
		factories = append(factories, f)
	}
	return factories
}

func simpleName(id string) string {
	for i := len(id) - 1; i >= 0; i-- {
		if id[i] == '.' {
			return id[i+1:]
		}
	}
	return id
}
