package effect

import (
	"testing"

	"github.com/vovakirdan/termdemo/internal/core"
)

type fakeEffect struct {
	NoParams
	name string
}

func (f *fakeEffect) Name() string                               { return f.name }
func (f *fakeEffect) Init(width, height int)                     {}
func (f *fakeEffect) Update(t, dt float64, fb *core.Framebuffer) {}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-alpha", func() Effect { return &fakeEffect{name: "Alpha"} })

	if !Exists("test-alpha") {
		t.Error("Exists(test-alpha) = false, expected true")
	}

	e, err := Create("test-alpha")
	if err != nil {
		t.Fatalf("Create(test-alpha) error: %v", err)
	}
	if e.Name() != "Alpha" {
		t.Errorf("created effect Name() = %q, expected Alpha", e.Name())
	}

	// Each Create returns a fresh instance.
	e2, _ := Create("test-alpha")
	if e == e2 {
		t.Error("Create should return distinct instances")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-effect"); err == nil {
		t.Error("Create of unknown id should return an error")
	}
	if Exists("no-such-effect") {
		t.Error("Exists(no-such-effect) = true, expected false")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Effect { return &fakeEffect{name: "Dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-dup", func() Effect { return &fakeEffect{name: "Dup2"} })
}

func TestListSorted(t *testing.T) {
	Register("test-zz", func() Effect { return &fakeEffect{name: "ZZ"} })
	Register("test-aa", func() Effect { return &fakeEffect{name: "AA"} })

	infos := List()
	if len(infos) < 2 {
		t.Fatalf("List() returned %d entries, expected at least 2", len(infos))
	}
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID >= infos[i].ID {
			t.Errorf("List not sorted: %q before %q", infos[i-1].ID, infos[i].ID)
		}
	}
}

func TestNoParams(t *testing.T) {
	e := &fakeEffect{name: "X"}

	if e.Params() != nil {
		t.Error("NoParams.Params() should be nil")
	}
	// Must be a silent no-op.
	e.SetParam("anything", 42)
}
