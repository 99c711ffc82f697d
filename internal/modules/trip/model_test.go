package trip

import "testing"

func TestSanitizePlaces(t *testing.T) {
	in := []Place{
		{Name: "Amber Fort", Category: CategoryHeritage, Lat: 26.9855, Lng: 75.8513},
		{Name: "   "},
		{Name: "Hawa Mahal", Category: "Palace"},
		{Name: "Nowhere", Category: CategoryNature, Lat: 123.0, Lng: 300.0},
	}

	out := sanitizePlaces(in)
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3 (blank name dropped)", len(out))
	}
	if out[0].Lat != 26.9855 {
		t.Errorf("valid coordinates must survive: %+v", out[0])
	}
	if out[1].Category != "" {
		t.Errorf("unknown category must be cleared, got %q", out[1].Category)
	}
	if out[2].Lat != 0 || out[2].Lng != 0 {
		t.Errorf("out-of-range coordinates must be zeroed: %+v", out[2])
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range []Category{CategoryHeritage, CategoryNature, CategoryReligious, CategoryMarket, CategoryMuseum, CategoryEntertainment, CategoryFood} {
		if !ValidCategory(c) {
			t.Errorf("ValidCategory(%q) = false", c)
		}
	}
	if ValidCategory("Palace") || ValidCategory("") {
		t.Error("ValidCategory accepted a value outside the closed enum")
	}
}
