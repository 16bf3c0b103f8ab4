package export

import (
	"context"
	"errors"
	"strings"
	"testing"

	"kaloria-backend/domain"
	"kaloria-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeFoodlogRepository struct {
	byDate map[string][]*entities.FoodEntry
	all    []*entities.FoodEntry
}

func (r *fakeFoodlogRepository) AddEntries(_ context.Context, _ []*entities.FoodEntry) error {
	return nil
}

func (r *fakeFoodlogRepository) GetEntryByID(_ context.Context, _ string) (*entities.FoodEntry, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeFoodlogRepository) DeleteEntry(_ context.Context, _ string) error {
	return nil
}

func (r *fakeFoodlogRepository) GetEntriesByDate(_ context.Context, _ string, date string) ([]*entities.FoodEntry, error) {
	return r.byDate[date], nil
}

func (r *fakeFoodlogRepository) GetAllEntries(_ context.Context, _ string) ([]*entities.FoodEntry, error) {
	return r.all, nil
}

type fakeUserRepository struct {
	user *entities.User
}

func (r *fakeUserRepository) CreateUser(_ context.Context, _ *entities.User) error { return nil }

func (r *fakeUserRepository) GetUserByEmail(_ context.Context, _ string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) GetUserByID(_ context.Context, _ string) (*entities.User, error) {
	if r.user == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return r.user, nil
}

func (r *fakeUserRepository) UpdateUser(_ context.Context, _ *entities.User) error { return nil }

func entry(name, calories, meal, date string) *entities.FoodEntry {
	return &entities.FoodEntry{
		ID:           uuid.New(),
		Name:         name,
		CaloriesRaw:  calories,
		ProteinRaw:   "1g",
		CarbsRaw:     "2g",
		FatRaw:       "3g",
		MealCategory: meal,
		ConsumedOn:   date,
	}
}

func TestGenerateCSVDailyPadsMissingMeals(t *testing.T) {
	repo := &fakeFoodlogRepository{
		byDate: map[string][]*entities.FoodEntry{
			"2026-08-28": {entry("Egg", "135", domain.MealBreakfast, "2026-08-28")},
		},
	}
	service := NewExportService(repo, &fakeUserRepository{})

	content, fileName, err := service.GenerateCSV(context.Background(), uuid.New().String(), domain.ExportScopeDaily, "2026-08-28")
	if err != nil {
		t.Fatalf("GenerateCSV: %v", err)
	}
	if fileName != "kaloria-food-log-2026-08-28.csv" {
		t.Errorf("fileName = %q", fileName)
	}

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	// Header, one logged entry, three placeholders.
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), content)
	}
	if lines[0] != "Meal,Name,Calories,Protein,Carbs,Fat" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Breakfast,Egg,135,1g,2g,3g" {
		t.Errorf("entry row = %q", lines[1])
	}
	for _, meal := range []string{"Lunch", "Dinner", "Snack"} {
		want := meal + ",Not Entered,0,0g,0g,0g"
		found := false
		for _, line := range lines[2:] {
			if line == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing placeholder row %q in:\n%s", want, content)
		}
	}
}

func TestGenerateCSVDailyEmptyDay(t *testing.T) {
	service := NewExportService(&fakeFoodlogRepository{}, &fakeUserRepository{})

	content, _, err := service.GenerateCSV(context.Background(), uuid.New().String(), domain.ExportScopeDaily, "2026-08-28")
	if err != nil {
		t.Fatalf("GenerateCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header plus 4 placeholders, got %d lines", len(lines))
	}
	if lines[1] != "Breakfast,Not Entered,0,0g,0g,0g" {
		t.Errorf("first placeholder = %q", lines[1])
	}
}

func TestGenerateCSVAllTimeKeepsRepositoryOrder(t *testing.T) {
	repo := &fakeFoodlogRepository{
		all: []*entities.FoodEntry{
			entry("Rice", "200", domain.MealLunch, "2026-08-28"),
			entry("Egg", "135", domain.MealBreakfast, "2026-08-28"),
			entry("Toast", "80", domain.MealBreakfast, "2026-08-27"),
		},
	}
	service := NewExportService(repo, &fakeUserRepository{})

	content, fileName, err := service.GenerateCSV(context.Background(), uuid.New().String(), domain.ExportScopeAll, "")
	if err != nil {
		t.Fatalf("GenerateCSV: %v", err)
	}
	if fileName != "kaloria-food-log.csv" {
		t.Errorf("fileName = %q", fileName)
	}

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if lines[0] != "Date,Meal,Name,Calories,Protein,Carbs,Fat" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2026-08-28,Lunch,Rice") {
		t.Errorf("row order changed: %q", lines[1])
	}
	if !strings.HasPrefix(lines[3], "2026-08-27,Breakfast,Toast") {
		t.Errorf("row order changed: %q", lines[3])
	}
}

func TestGenerateCSVRejectsUnknownScope(t *testing.T) {
	service := NewExportService(&fakeFoodlogRepository{}, &fakeUserRepository{})

	_, _, err := service.GenerateCSV(context.Background(), uuid.New().String(), "weekly", "")
	if !errors.Is(err, domain.ErrInvalidExportScope) {
		t.Fatalf("expected ErrInvalidExportScope, got %v", err)
	}
}

func TestEmailCSVUnknownUser(t *testing.T) {
	service := NewExportService(&fakeFoodlogRepository{}, &fakeUserRepository{})

	err := service.EmailCSV(context.Background(), uuid.New().String(), domain.ExportScopeAll, "")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
