package dashboard

import "testing"

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestExtractExtremesEmptyInput(t *testing.T) {
	ext := ExtractExtremes(AnalyticsData{Pillars: map[string]PillarNode{}})
	if ext.TopPillar != nil || ext.BottomPillar != nil || ext.TopCategory != nil || ext.BottomCategory != nil {
		t.Fatalf("expected all extremes absent, got %+v", ext)
	}
}

func TestExtractExtremesAllNilPercentages(t *testing.T) {
	data := AnalyticsData{Pillars: map[string]PillarNode{
		"p1": {Name: strPtr("Culture")},
		"p2": {Name: strPtr("Delivery")},
	}}
	ext := ExtractExtremes(data)
	if ext.TopPillar != nil || ext.BottomPillar != nil {
		t.Fatalf("expected no pillar extremes without percentages, got %+v", ext)
	}
}

func TestExtractExtremesSinglePillar(t *testing.T) {
	data := AnalyticsData{Pillars: map[string]PillarNode{
		"p1": {
			Name:           strPtr("Culture"),
			Percentage:     floatPtr(64),
			ActualScore:    floatPtr(32),
			PotentialScore: floatPtr(50),
		},
	}}

	ext := ExtractExtremes(data)
	if ext.TopPillar == nil || ext.BottomPillar == nil {
		t.Fatal("expected both pillar extremes to be set")
	}
	if ext.TopPillar.Name != "Culture" || ext.BottomPillar.Name != "Culture" {
		t.Fatalf("single pillar must be both top and bottom, got %+v", ext)
	}
	if ext.TopPillar.ActualScore != 32 || ext.TopPillar.PotentialScore != 50 {
		t.Fatalf("unexpected scores: %+v", ext.TopPillar)
	}
}

func TestExtractExtremesPillarsAndCategories(t *testing.T) {
	data := AnalyticsData{Pillars: map[string]PillarNode{
		"p1": {
			Name:       strPtr("Culture"),
			Percentage: floatPtr(80),
			Categories: map[string]CategoryNode{
				"c1": {Name: strPtr("Trust"), Percentage: floatPtr(90)},
				"c2": {Name: strPtr("Safety"), Percentage: floatPtr(40)},
			},
		},
		"p2": {
			Name:       strPtr("Delivery"),
			Percentage: floatPtr(55),
			Categories: map[string]CategoryNode{
				"c1": {Name: strPtr("Flow"), Percentage: floatPtr(60)},
			},
		},
	}}

	ext := ExtractExtremes(data)
	if ext.TopPillar.Name != "Culture" || ext.BottomPillar.Name != "Delivery" {
		t.Fatalf("unexpected pillar extremes: top=%+v bottom=%+v", ext.TopPillar, ext.BottomPillar)
	}
	if ext.TopCategory.Name != "Trust" || ext.TopCategory.Pillar != "Culture" {
		t.Fatalf("unexpected top category: %+v", ext.TopCategory)
	}
	if ext.BottomCategory.Name != "Safety" || ext.BottomCategory.Pillar != "Culture" {
		t.Fatalf("unexpected bottom category: %+v", ext.BottomCategory)
	}
}

func TestExtractExtremesFirstSeenWinsTies(t *testing.T) {
	// Strict comparisons plus ascending key order mean the entry under the
	// lexically smaller key holds the extremum on equal percentages.
	data := AnalyticsData{Pillars: map[string]PillarNode{
		"a": {Name: strPtr("Alpha"), Percentage: floatPtr(70)},
		"b": {Name: strPtr("Beta"), Percentage: floatPtr(70)},
	}}

	ext := ExtractExtremes(data)
	if ext.TopPillar.Name != "Alpha" {
		t.Fatalf("expected tie to keep first-seen pillar, got %q", ext.TopPillar.Name)
	}
	if ext.BottomPillar.Name != "Alpha" {
		t.Fatalf("expected tie to keep first-seen pillar, got %q", ext.BottomPillar.Name)
	}
}

func TestExtractExtremesSkipsNamelessPillarAndItsCategories(t *testing.T) {
	data := AnalyticsData{Pillars: map[string]PillarNode{
		"p1": {
			Percentage: floatPtr(99),
			Categories: map[string]CategoryNode{
				"c1": {Name: strPtr("Orphan"), Percentage: floatPtr(99)},
			},
		},
		"p2": {Name: strPtr("Delivery"), Percentage: floatPtr(10)},
	}}

	ext := ExtractExtremes(data)
	if ext.TopPillar.Name != "Delivery" {
		t.Fatalf("nameless pillar must not contribute, got %+v", ext.TopPillar)
	}
	if ext.TopCategory != nil {
		t.Fatalf("categories of a nameless pillar must be skipped, got %+v", ext.TopCategory)
	}
}

func TestExtractExtremesSkipsCategoryWithoutPercentage(t *testing.T) {
	data := AnalyticsData{Pillars: map[string]PillarNode{
		"p1": {
			Name:       strPtr("Culture"),
			Percentage: floatPtr(50),
			Categories: map[string]CategoryNode{
				"c1": {Name: strPtr("Trust")},
				"c2": {Percentage: floatPtr(80)},
			},
		},
	}}

	ext := ExtractExtremes(data)
	if ext.TopCategory != nil || ext.BottomCategory != nil {
		t.Fatalf("expected no category extremes, got %+v", ext)
	}
}

func TestExtractExtremesMissingScoresDefaultToZero(t *testing.T) {
	data := AnalyticsData{Pillars: map[string]PillarNode{
		"p1": {Name: strPtr("Culture"), Percentage: floatPtr(42)},
	}}

	ext := ExtractExtremes(data)
	if ext.TopPillar.ActualScore != 0 || ext.TopPillar.PotentialScore != 0 {
		t.Fatalf("expected zero defaults, got %+v", ext.TopPillar)
	}
}
