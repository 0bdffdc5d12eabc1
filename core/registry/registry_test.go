package registry

import (
	"testing"
)

func TestRegisterAndList(t *testing.T) {
	r := New()

	modules := []Descriptor{
		{Identifier: "insulation", Name: "Insulation", Description: "multi-layer heat loss", Enabled: true},
		{Identifier: "air", Name: "Air properties", Description: "Cp/Cv and heating power", Enabled: true},
	}
	for _, d := range modules {
		if err := r.Register(d); err != nil {
			t.Fatalf("Register(%s) returned error: %v", d.Identifier, err)
		}
	}

	list := r.List()
	if len(list) != 2 {
		t.Fatalf("List length = %d, want 2", len(list))
	}
	// Sorted by identifier.
	if list[0].Identifier != "air" || list[1].Identifier != "insulation" {
		t.Errorf("List order = [%s, %s], want [air, insulation]", list[0].Identifier, list[1].Identifier)
	}

	if _, ok := r.Get("air"); !ok {
		t.Error("Get(air) not found")
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("Get(missing) unexpectedly found")
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	r := New()
	d := Descriptor{Identifier: "air", Name: "Air properties"}

	if err := r.Register(d); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if err := r.Register(d); err == nil {
		t.Error("expected duplicate registration error, got none")
	}
}

func TestRegisterValidatesContract(t *testing.T) {
	r := New()

	if err := r.Register(Descriptor{Name: "nameless"}); err == nil {
		t.Error("expected error for empty identifier, got none")
	}
	if err := r.Register(Descriptor{Identifier: "x"}); err == nil {
		t.Error("expected error for empty name, got none")
	}
}
