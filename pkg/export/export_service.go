package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"kaloria-backend/domain"
	"kaloria-backend/entities"
	"kaloria-backend/internal/utils/mailing"
	"kaloria-backend/pkg/foodlog"
	"kaloria-backend/pkg/user"

	"gorm.io/gorm"
)

type (
	ExportService interface {
		GenerateCSV(ctx context.Context, userID string, scope string, date string) ([]byte, string, error)
		EmailCSV(ctx context.Context, userID string, scope string, date string) error
	}

	exportService struct {
		foodlogRepository foodlog.FoodlogRepository
		userRepository    user.UserRepository
	}
)

func NewExportService(foodlogRepository foodlog.FoodlogRepository, userRepository user.UserRepository) ExportService {
	return &exportService{
		foodlogRepository: foodlogRepository,
		userRepository:    userRepository,
	}
}

// GenerateCSV renders the log as UTF-8 CSV. Scope "all" covers the whole
// log grouped by day, most recent first; scope "daily" covers one day and
// always enumerates all four meal categories, padding the absent ones with
// "Not Entered" placeholder rows.
func (s *exportService) GenerateCSV(ctx context.Context, userID string, scope string, date string) ([]byte, string, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	switch scope {
	case domain.ExportScopeAll:
		entries, err := s.foodlogRepository.GetAllEntries(ctx, userID)
		if err != nil {
			return nil, "", err
		}
		content, err := renderAllTimeCSV(entries)
		if err != nil {
			return nil, "", err
		}
		return content, "kaloria-food-log.csv", nil

	case domain.ExportScopeDaily:
		entries, err := s.foodlogRepository.GetEntriesByDate(ctx, userID, date)
		if err != nil {
			return nil, "", err
		}
		content, err := renderDailyCSV(entries)
		if err != nil {
			return nil, "", err
		}
		return content, fmt.Sprintf("kaloria-food-log-%s.csv", date), nil

	default:
		return nil, "", domain.ErrInvalidExportScope
	}
}

func (s *exportService) EmailCSV(ctx context.Context, userID string, scope string, date string) error {
	account, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	content, fileName, err := s.GenerateCSV(ctx, userID, scope, date)
	if err != nil {
		return err
	}

	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your Kaloria food log export is attached.</p>",
		account.FullName,
	)

	return mailing.SendMailWithAttachment(account.Email, "Your Kaloria food log", body, fileName, content)
}

// renderAllTimeCSV writes one row per entry under a Date column. The
// repository hands entries most recent day first with insertion order kept
// within a day, which is exactly the grouping the report wants.
func renderAllTimeCSV(entries []*entities.FoodEntry) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Date", "Meal", "Name", "Calories", "Protein", "Carbs", "Fat"}); err != nil {
		return nil, err
	}

	for _, entry := range entries {
		record := []string{
			entry.ConsumedOn,
			entry.MealCategory,
			entry.Name,
			entry.CaloriesRaw,
			entry.ProteinRaw,
			entry.CarbsRaw,
			entry.FatRaw,
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	return buf.Bytes(), writer.Error()
}

// renderDailyCSV writes the day's entries followed by a zero-macro
// placeholder row for every meal category the day is missing, so the file
// always enumerates all four categories.
func renderDailyCSV(entries []*entities.FoodEntry) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Meal", "Name", "Calories", "Protein", "Carbs", "Fat"}); err != nil {
		return nil, err
	}

	logged := map[string]bool{}
	for _, entry := range entries {
		logged[entry.MealCategory] = true
		record := []string{
			entry.MealCategory,
			entry.Name,
			entry.CaloriesRaw,
			entry.ProteinRaw,
			entry.CarbsRaw,
			entry.FatRaw,
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	for _, category := range domain.MealCategories {
		if logged[category] {
			continue
		}
		record := []string{category, "Not Entered", "0", "0g", "0g", "0g"}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	return buf.Bytes(), writer.Error()
}
