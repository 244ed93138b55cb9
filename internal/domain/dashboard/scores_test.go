package dashboard

import (
	"reflect"
	"testing"
)

func TestBuildPillarScoresEmptyInput(t *testing.T) {
	scores := BuildPillarScores(AnalyticsData{Pillars: map[string]PillarNode{}})
	if scores == nil {
		t.Fatal("expected non-nil map")
	}
	if len(scores) != 0 {
		t.Fatalf("expected empty map, got %d entries", len(scores))
	}
}

func TestBuildPillarScoresKeyedByDisplayName(t *testing.T) {
	data := AnalyticsData{Pillars: map[string]PillarNode{
		"internal-key-1": {Name: strPtr("Culture"), Percentage: floatPtr(70)},
	}}

	scores := BuildPillarScores(data)
	if _, ok := scores["Culture"]; !ok {
		t.Fatalf("expected map keyed by display name, got keys %v", mapKeys(scores))
	}
	if _, ok := scores["internal-key-1"]; ok {
		t.Fatal("internal key must not leak into the result")
	}
}

func TestBuildPillarScoresNameCollisionLastWriterWins(t *testing.T) {
	data := AnalyticsData{Pillars: map[string]PillarNode{
		"a": {Name: strPtr("Culture"), Percentage: floatPtr(10)},
		"b": {Name: strPtr("Culture"), Percentage: floatPtr(90)},
	}}

	scores := BuildPillarScores(data)
	if len(scores) != 1 {
		t.Fatalf("expected collapsed entry, got %d", len(scores))
	}
	// Ascending key order makes "b" the last writer.
	if scores["Culture"].Percentage != 90 {
		t.Fatalf("expected last writer to win, got %+v", scores["Culture"])
	}
}

func TestBuildPillarScoresSkipsNameless(t *testing.T) {
	data := AnalyticsData{Pillars: map[string]PillarNode{
		"p1": {Percentage: floatPtr(50)},
		"p2": {
			Name: strPtr("Delivery"),
			Categories: map[string]CategoryNode{
				"c1": {Percentage: floatPtr(40)},
				"c2": {Name: strPtr("Flow"), Percentage: floatPtr(60)},
			},
		},
	}}

	scores := BuildPillarScores(data)
	if len(scores) != 1 {
		t.Fatalf("expected only the named pillar, got %d", len(scores))
	}
	categories := scores["Delivery"].Categories
	if len(categories) != 1 {
		t.Fatalf("expected only the named category, got %v", mapKeys(categories))
	}
}

func TestBuildPillarScoresGapAsymmetry(t *testing.T) {
	data := AnalyticsData{Pillars: map[string]PillarNode{
		"p1": {
			// Pillar gap is never derived: absent means 0 even with a percentage.
			Name:       strPtr("Culture"),
			Percentage: floatPtr(70),
			Categories: map[string]CategoryNode{
				"c1": {Name: strPtr("Explicit"), Percentage: floatPtr(70), GapFromPotential: floatPtr(5)},
				"c2": {Name: strPtr("Derived"), Percentage: floatPtr(70)},
				"c3": {Name: strPtr("Bare")},
			},
		},
	}}

	scores := BuildPillarScores(data)
	pillar := scores["Culture"]
	if pillar.GapFromPotential != 0 {
		t.Fatalf("pillar gap must stay 0 when absent, got %v", pillar.GapFromPotential)
	}
	if got := pillar.Categories["Explicit"].GapFromPotential; got != 5 {
		t.Fatalf("explicit category gap must pass through, got %v", got)
	}
	if got := pillar.Categories["Derived"].GapFromPotential; got != 30 {
		t.Fatalf("derived category gap must be 100-percentage, got %v", got)
	}
	if got := pillar.Categories["Bare"].GapFromPotential; got != 0 {
		t.Fatalf("category without percentage must default to 0, got %v", got)
	}
}

func TestBuildPillarScoresZeroPercentageIsNotAbsent(t *testing.T) {
	data := AnalyticsData{Pillars: map[string]PillarNode{
		"p1": {
			Name: strPtr("Culture"),
			Categories: map[string]CategoryNode{
				"c1": {Name: strPtr("Empty"), Percentage: floatPtr(0)},
			},
		},
	}}

	scores := BuildPillarScores(data)
	if got := scores["Culture"].Categories["Empty"].GapFromPotential; got != 100 {
		t.Fatalf("zero percentage must derive gap 100, got %v", got)
	}
}

func TestBuildPillarScoresDeterministic(t *testing.T) {
	data := ParseAnalyticsData(`{
    "pillars": {
      "z": {"name": "Shared", "percentage": 20},
      "a": {"name": "Shared", "percentage": 80},
      "m": {"name": "Other", "percentage": 50, "categories": {"c": {"name": "Cat", "percentage": 25}}}
    }
  }`)

	first := BuildPillarScores(data)
	for i := 0; i < 10; i++ {
		if next := BuildPillarScores(data); !reflect.DeepEqual(first, next) {
			t.Fatalf("expected structurally identical rebuilds, got %+v vs %+v", first, next)
		}
	}
	if first["Shared"].Percentage != 20 {
		t.Fatalf("expected key order to pick z last, got %+v", first["Shared"])
	}
}

func mapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	return keys
}
