package utils

import (
	"math/rand"
	"strings"
	"testing"
)

func TestGenerateIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateID()
		if len(id) != 16 {
			t.Fatalf("Expected 16 hex chars, got %q", id)
		}
		if seen[id] {
			t.Fatalf("Duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestDeterministicID(t *testing.T) {
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))

	for i := 0; i < 10; i++ {
		idA := DeterministicID(a, "r_")
		idB := DeterministicID(b, "r_")
		if idA != idB {
			t.Fatalf("Same seed produced different IDs: %s vs %s", idA, idB)
		}
		if !strings.HasPrefix(idA, "r_") {
			t.Fatalf("ID %q missing prefix", idA)
		}
	}
}

func TestStringToSeedStable(t *testing.T) {
	if StringToSeed("Герой") != StringToSeed("Герой") {
		t.Error("Same string must map to the same seed")
	}
	if StringToSeed("Герой") == StringToSeed("герой") {
		t.Error("Different strings should map to different seeds")
	}
}
