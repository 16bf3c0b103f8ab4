package foodlog

import (
	"testing"

	"kaloria-backend/domain"

	"github.com/google/uuid"
)

func TestParseModelResponseDropsMalformedLines(t *testing.T) {
	userID := uuid.New()
	text := "Egg,135,12.5g,1.2g,10g\nthis line is not parseable\nToast,80"

	entries := parseModelResponse(text, userID, domain.MealBreakfast, "2026-08-28")

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	entry := entries[0]
	if entry.Name != "Egg" {
		t.Errorf("Name = %q, want %q", entry.Name, "Egg")
	}
	if entry.CaloriesRaw != "135" {
		t.Errorf("CaloriesRaw = %q, want %q", entry.CaloriesRaw, "135")
	}
	if entry.ProteinRaw != "12.5g" {
		t.Errorf("ProteinRaw = %q, want %q", entry.ProteinRaw, "12.5g")
	}
	if entry.MealCategory != domain.MealBreakfast {
		t.Errorf("MealCategory = %q, want %q", entry.MealCategory, domain.MealBreakfast)
	}
	if entry.ConsumedOn != "2026-08-28" {
		t.Errorf("ConsumedOn = %q, want %q", entry.ConsumedOn, "2026-08-28")
	}
	if entry.UserID != userID {
		t.Errorf("UserID = %s, want %s", entry.UserID, userID)
	}
}

func TestParseModelResponseStripsMarkdownFences(t *testing.T) {
	text := "```csv\nEgg,135,12.5g,1.2g,10g\nRice,200,4g,44g,0.5g\n```"

	entries := parseModelResponse(text, uuid.New(), domain.MealLunch, "2026-08-28")

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[1].Name != "Rice" {
		t.Errorf("Name = %q, want %q", entries[1].Name, "Rice")
	}
}

func TestParseModelResponseTrimsFieldWhitespace(t *testing.T) {
	text := " Egg , 135 , 12.5g , 1.2g , 10g "

	entries := parseModelResponse(text, uuid.New(), domain.MealDinner, "2026-08-28")

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Name != "Egg" || entries[0].FatRaw != "10g" {
		t.Errorf("fields not trimmed: %+v", entries[0])
	}
}

func TestParseModelResponseAssignsUniqueIDs(t *testing.T) {
	text := "Egg,135,12.5g,1.2g,10g\nEgg,135,12.5g,1.2g,10g"

	entries := parseModelResponse(text, uuid.New(), domain.MealSnack, "2026-08-28")

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID == entries[1].ID {
		t.Errorf("duplicate food lines share an id: %s", entries[0].ID)
	}
}

func TestParseModelResponseEmptyText(t *testing.T) {
	entries := parseModelResponse("", uuid.New(), domain.MealLunch, "2026-08-28")
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}
