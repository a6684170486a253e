package services

import "testing"

func TestListMuscleGroups(t *testing.T) {
	groups := ListMuscleGroups()
	if len(groups) != 12 {
		t.Fatalf("guide has %d groups, want 12", len(groups))
	}

	seen := map[string]bool{}
	for _, g := range groups {
		if g.Key == "" || g.Name == "" || len(g.Exercises) == 0 || g.VideoURL == "" {
			t.Errorf("incomplete guide entry: %+v", g)
		}
		if seen[g.Key] {
			t.Errorf("duplicate key %q", g.Key)
		}
		seen[g.Key] = true
	}
}

func TestGetMuscleGroup(t *testing.T) {
	g, err := GetMuscleGroup("chest")
	if err != nil {
		t.Fatalf("GetMuscleGroup: %v", err)
	}
	if g.Name != "Chest" {
		t.Errorf("Name = %q, want Chest", g.Name)
	}

	if _, err := GetMuscleGroup("wings"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}
