package foodlog

import (
	"kaloria-backend/domain"
	"kaloria-backend/entities"
)

// sumTotals runs a full linear pass over the entries. The working set is one
// day of food logging, so there is nothing to cache.
func sumTotals(entries []*entities.FoodEntry) domain.MacroTotals {
	var totals domain.MacroTotals
	for _, entry := range entries {
		totals.Calories += ExtractAmount(entry.CaloriesRaw)
		totals.Protein += ExtractAmount(entry.ProteinRaw)
		totals.Carbs += ExtractAmount(entry.CarbsRaw)
		totals.Fat += ExtractAmount(entry.FatRaw)
	}
	return totals
}

// progressRatio is consumed/target clamped to [0,1]; an unset target reads
// as zero progress.
func progressRatio(totalCalories float64, target int) float64 {
	if target <= 0 {
		return 0
	}
	ratio := totalCalories / float64(target)
	if ratio > 1 {
		return 1
	}
	if ratio < 0 {
		return 0
	}
	return ratio
}

func toEntryResponses(entries []*entities.FoodEntry) []domain.FoodEntryResponse {
	responses := make([]domain.FoodEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, domain.FoodEntryResponse{
			ID:           entry.ID.String(),
			Name:         entry.Name,
			Calories:     entry.CaloriesRaw,
			Protein:      entry.ProteinRaw,
			Carbs:        entry.CarbsRaw,
			Fat:          entry.FatRaw,
			MealCategory: entry.MealCategory,
			ConsumedOn:   entry.ConsumedOn,
			PhotoURL:     entry.PhotoURL,
			CreatedAt:    entry.CreatedAt,
		})
	}
	return responses
}

// groupByDay splits entries into per-day buckets preserving the incoming
// order, which the repository guarantees is most recent day first and
// insertion order within a day.
func groupByDay(entries []*entities.FoodEntry) []domain.HistoryDay {
	var days []domain.HistoryDay
	index := map[string]int{}
	buckets := map[string][]*entities.FoodEntry{}

	for _, entry := range entries {
		if _, ok := index[entry.ConsumedOn]; !ok {
			index[entry.ConsumedOn] = len(days)
			days = append(days, domain.HistoryDay{Date: entry.ConsumedOn})
		}
		buckets[entry.ConsumedOn] = append(buckets[entry.ConsumedOn], entry)
	}

	for date, bucket := range buckets {
		day := &days[index[date]]
		day.Totals = sumTotals(bucket)
		day.Entries = toEntryResponses(bucket)
	}
	return days
}
