package machines_test

import (
	"testing"

	"prodlogs/internal/machines"
)

func TestDefaultCatalogPreservesOrder(t *testing.T) {
	catalog := machines.Default()
	names := catalog.Names()
	if len(names) != len(machines.DefaultNames) {
		t.Fatalf("expected %d names, got %d", len(machines.DefaultNames), len(names))
	}
	for i, want := range machines.DefaultNames {
		if names[i] != want {
			t.Fatalf("name %d: got %q want %q", i, names[i], want)
		}
	}
}

func TestEveryEntryCarriesItsOwnName(t *testing.T) {
	for _, entry := range machines.Default().Entries() {
		found := false
		for _, v := range entry.Variants {
			if v == entry.Name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("entry %q is missing its display name among variants %v", entry.Name, entry.Variants)
		}
	}
}

func TestCutterFamilyVariants(t *testing.T) {
	catalog := machines.NewCatalog([]string{"Cutter2"})
	entry := catalog.Entries()[0]

	wantSome := []string{"CUTTER 2", "CUTTER #2", "CUTTER_2", "Cutter-2", "CUTTER#2"}
	for _, want := range wantSome {
		found := false
		for _, v := range entry.Variants {
			if v == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Cutter2 variants missing %q: %v", want, entry.Variants)
		}
	}
}

func TestVariantsAreSortedAndDeduplicated(t *testing.T) {
	entry := machines.NewCatalog([]string{"Pc3"}).Entries()[0]
	seen := map[string]struct{}{}
	prev := ""
	for i, v := range entry.Variants {
		if _, dup := seen[v]; dup {
			t.Fatalf("duplicate variant %q", v)
		}
		seen[v] = struct{}{}
		if i > 0 && v < prev {
			t.Fatalf("variants not sorted: %q before %q", prev, v)
		}
		prev = v
	}
}

func TestEmptyCatalog(t *testing.T) {
	catalog := machines.NewCatalog(nil)
	if catalog.Len() != 0 {
		t.Fatalf("expected empty catalog, got %d entries", catalog.Len())
	}
	result := machines.Detect(map[int]string{1: "Cutter1 run log"}, catalog, 0, nil)
	if len(result) != 0 {
		t.Fatalf("empty catalog must match nothing, got %v", result)
	}
}
