package dashboard

// BuildPillarScores rebuilds the presentation tree from a parsed blob. The
// result is keyed by pillar display name, so two internal keys sharing a
// name collapse to one entry; iteration runs in ascending key order, last
// writer wins. Nameless pillars and categories are dropped and every
// missing number defaults to 0.0.
//
// Pillar gap-from-potential is taken verbatim or defaulted to 0.0, never
// derived. Category gap-from-potential is derived as 100 - percentage when
// absent and a percentage exists. The asymmetry is intentional.
func BuildPillarScores(data AnalyticsData) map[string]PillarScore {
	scores := make(map[string]PillarScore, len(data.Pillars))

	for _, key := range sortedKeys(data.Pillars) {
		pillar := data.Pillars[key]
		if pillar.Name == nil {
			continue
		}

		view := PillarScore{
			Name:             *pillar.Name,
			Percentage:       floatOr(pillar.Percentage, 0),
			ActualScore:      floatOr(pillar.ActualScore, 0),
			PotentialScore:   floatOr(pillar.PotentialScore, 0),
			GapFromPotential: floatOr(pillar.GapFromPotential, 0),
			Categories:       map[string]CategoryScore{},
		}

		for _, catKey := range sortedKeys(pillar.Categories) {
			category := pillar.Categories[catKey]
			if category.Name == nil {
				continue
			}
			view.Categories[*category.Name] = buildCategoryScore(category)
		}

		scores[view.Name] = view
	}

	return scores
}

func buildCategoryScore(category CategoryNode) CategoryScore {
	score := CategoryScore{
		Name:           *category.Name,
		Percentage:     floatOr(category.Percentage, 0),
		ActualScore:    floatOr(category.ActualScore, 0),
		PotentialScore: floatOr(category.PotentialScore, 0),
	}
	switch {
	case category.GapFromPotential != nil:
		score.GapFromPotential = *category.GapFromPotential
	case category.Percentage != nil:
		score.GapFromPotential = 100.0 - *category.Percentage
	}
	return score
}
