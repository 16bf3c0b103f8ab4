package foodlog

import (
	"fmt"
	"strings"

	"kaloria-backend/entities"

	"github.com/google/uuid"
)

func buildLogPrompt(description string) string {
	return fmt.Sprintf(
		"You are a nutrition expert. Estimate the nutritional content of the following meal description: %q. "+
			"List every distinct food item in the meal on its own line, each line in exactly this format: "+
			"Name,Calories,Protein,Carbs,Fat. "+
			"Calories as a plain kcal number, macros in grams with a trailing g, for example: Egg,135,12.5g,1.2g,10g. "+
			"Respond with plain text lines ONLY. No header, no markdown, no numbering, no explanations.",
		description,
	)
}

// cleanModelResponse strips the markdown fencing the model sometimes wraps
// around its output despite the prompt.
func cleanModelResponse(text string) string {
	text = strings.ReplaceAll(text, "```csv", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// parseModelResponse turns the model's delimited text into food entries for
// the chosen meal and day. A line needs at least five comma fields
// (name, calories, protein, carbs, fat); extras are ignored and short lines
// are dropped silently — the model's format is a loose contract, so a
// malformed line degrades the result instead of failing the request. Macro
// fields are stored verbatim; they are parsed only when summed or displayed.
func parseModelResponse(text string, userID uuid.UUID, mealCategory, date string) []*entities.FoodEntry {
	var entries []*entities.FoodEntry
	for _, line := range strings.Split(cleanModelResponse(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) < 5 {
			continue
		}

		entries = append(entries, &entities.FoodEntry{
			ID:           uuid.New(),
			UserID:       userID,
			Name:         strings.TrimSpace(fields[0]),
			CaloriesRaw:  strings.TrimSpace(fields[1]),
			ProteinRaw:   strings.TrimSpace(fields[2]),
			CarbsRaw:     strings.TrimSpace(fields[3]),
			FatRaw:       strings.TrimSpace(fields[4]),
			MealCategory: mealCategory,
			ConsumedOn:   date,
		})
	}
	return entries
}
