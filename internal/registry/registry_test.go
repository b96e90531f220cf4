package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-tiles/internal/levels"
	"github.com/vovakirdan/tui-tiles/internal/world"
)

const tinyMap = `
id: tiny
name: Tiny
rows:
  - "@.."
legend:
  "@": {unit: player}
  ".": {}
`

func mustLevel(t *testing.T) levels.Level {
	t.Helper()
	lvl, err := levels.Parse([]byte(tinyMap), ".yaml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return lvl
}

func TestRegisterAndCreate(t *testing.T) {
	lvl := mustLevel(t)
	lvl.ID = "registry-test-tiny"
	RegisterLevel(lvl)

	if !Exists("registry-test-tiny") {
		t.Fatal("Exists() = false after RegisterLevel")
	}

	var found *MapInfo
	for _, info := range List() {
		if info.ID == "registry-test-tiny" {
			found = &info
		}
	}
	if found == nil {
		t.Fatal("List() does not include the map")
	}
	if found.Title != "Tiny" || found.Width != 3 || found.Height != 1 {
		t.Errorf("info = %+v", *found)
	}

	a, err := Create("registry-test-tiny")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	b, _ := Create("registry-test-tiny")
	if a.Map == b.Map || a.Player == b.Player {
		t.Error("Create() should build a fresh map every call")
	}
}

func TestCreatePassesOptions(t *testing.T) {
	calls := 0
	Register("registry-test-opts", func(opts ...world.Option) (*levels.Built, error) {
		calls++
		if calls > 1 && len(opts) != 1 {
			t.Errorf("factory got %d options, expected 1", len(opts))
		}
		return mustLevel(t).Build(opts...)
	})
	if _, err := Create("registry-test-opts", world.WithLogger(nil)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if calls != 2 {
		t.Errorf("factory called %d times, expected 2", calls)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-map")
	if !errors.Is(err, ErrUnknownMap) {
		t.Errorf("Create() error = %v, expected ErrUnknownMap", err)
	}
	if Exists("no-such-map") {
		t.Error("Exists() = true for unknown map")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	lvl := mustLevel(t)
	lvl.ID = "registry-test-dup"
	RegisterLevel(lvl)

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	RegisterLevel(lvl)
}

func TestRegisterBrokenFactoryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register() of a failing factory should panic")
		}
		if Exists("registry-test-broken") {
			t.Error("failing factory should not be registered")
		}
	}()
	Register("registry-test-broken", func(...world.Option) (*levels.Built, error) {
		return nil, errors.New("boom")
	})
}

func TestListSorted(t *testing.T) {
	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
