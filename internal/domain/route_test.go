package domain

import "testing"

func TestRouteValidate(t *testing.T) {
	valid := Route{
		Geometry:        "g",
		DistanceMeters:  100,
		DurationSeconds: 60,
		Legs:            []RouteLeg{{Summary: "A"}},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	legless := valid
	legless.Legs = nil
	if err := legless.Validate(); err == nil {
		t.Fatal("expected error for legless route")
	}

	negative := valid
	negative.DistanceMeters = -1
	if err := negative.Validate(); err == nil {
		t.Fatal("expected error for negative distance")
	}
}

func TestCloneLegsIsIndependent(t *testing.T) {
	route := Route{
		Legs: []RouteLeg{{Summary: "A"}, {Summary: "B"}},
	}

	legs := route.CloneLegs()
	legs[0].Summary = "changed"

	if route.Legs[0].Summary != "A" {
		t.Fatal("clone aliases the original leg sequence")
	}
}
