package dashboard

import "sort"

// ExtractExtremes finds the top and bottom pillar and category by
// percentage in a single pass. Comparisons are strict, so the first entry
// seen wins ties; iteration runs in ascending key order to keep that
// tie-break deterministic. Entries without a name are skipped entirely,
// percentage or not. An empty or all-nil input leaves all four results
// absent rather than zero-valued.
func ExtractExtremes(data AnalyticsData) Extremes {
	var ext Extremes

	for _, key := range sortedKeys(data.Pillars) {
		pillar := data.Pillars[key]
		if pillar.Name == nil {
			continue
		}

		if pillar.Percentage != nil {
			entry := pillarEntry(pillar)
			if ext.TopPillar == nil || entry.Percentage > ext.TopPillar.Percentage {
				ext.TopPillar = entry
			}
			if ext.BottomPillar == nil || entry.Percentage < ext.BottomPillar.Percentage {
				ext.BottomPillar = entry
			}
		}

		for _, catKey := range sortedKeys(pillar.Categories) {
			category := pillar.Categories[catKey]
			if category.Name == nil || category.Percentage == nil {
				continue
			}
			entry := categoryEntry(category, *pillar.Name)
			if ext.TopCategory == nil || entry.Percentage > ext.TopCategory.Percentage {
				ext.TopCategory = entry
			}
			if ext.BottomCategory == nil || entry.Percentage < ext.BottomCategory.Percentage {
				ext.BottomCategory = entry
			}
		}
	}

	return ext
}

func pillarEntry(pillar PillarNode) *ExtremumEntry {
	return &ExtremumEntry{
		Name:           *pillar.Name,
		Percentage:     *pillar.Percentage,
		ActualScore:    floatOr(pillar.ActualScore, 0),
		PotentialScore: floatOr(pillar.PotentialScore, 0),
	}
}

func categoryEntry(category CategoryNode, pillarName string) *ExtremumEntry {
	return &ExtremumEntry{
		Name:           *category.Name,
		Percentage:     *category.Percentage,
		ActualScore:    floatOr(category.ActualScore, 0),
		PotentialScore: floatOr(category.PotentialScore, 0),
		Pillar:         pillarName,
	}
}

func floatOr(value *float64, fallback float64) float64 {
	if value == nil {
		return fallback
	}
	return *value
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
