package foodlog

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"kaloria-backend/domain"
	"kaloria-backend/internal/utils"
	"kaloria-backend/internal/utils/storage"
	"kaloria-backend/pkg/profile"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodlogService interface {
		LogFood(ctx context.Context, req domain.LogFoodRequest, userID string) (domain.LogFoodResponse, error)
		DeleteEntry(ctx context.Context, id string, userID string) error
		GetEntries(ctx context.Context, userID string, date string) ([]domain.FoodEntryResponse, error)
		GetDailySummary(ctx context.Context, userID string, date string) (domain.DailySummaryResponse, error)
		GetHistory(ctx context.Context, userID string) (domain.HistoryResponse, error)
	}

	foodlogService struct {
		foodlogRepository FoodlogRepository
		profileRepository profile.ProfileRepository
		s3                storage.AwsS3
		guard             *requestGuard
	}
)

func NewFoodlogService(foodlogRepository FoodlogRepository, profileRepository profile.ProfileRepository, s3 storage.AwsS3) FoodlogService {
	return &foodlogService{
		foodlogRepository: foodlogRepository,
		profileRepository: profileRepository,
		s3:                s3,
		guard:             newRequestGuard(),
	}
}

// LogFood runs one "add food" action: description (and optional photo) to
// the model, model lines to entries, entries to the log. At most one request
// per user is in flight; the log is untouched when the model call fails.
func (s *foodlogService) LogFood(ctx context.Context, req domain.LogFoodRequest, userID string) (domain.LogFoodResponse, error) {
	if strings.TrimSpace(req.Description) == "" {
		return domain.LogFoodResponse{}, domain.ErrEmptyDescription
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.LogFoodResponse{}, domain.ErrParseUUID
	}

	if !s.guard.begin(userID) {
		return domain.LogFoodResponse{}, domain.ErrLogRequestInFlight
	}
	defer s.guard.end(userID)

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	responseText, err := s.callGemini(ctx, buildLogPrompt(req.Description), req.Image)
	if err != nil {
		return domain.LogFoodResponse{}, err
	}

	entries := parseModelResponse(responseText, userUUID, req.MealCategory, date)

	if req.Image != nil && len(entries) > 0 {
		fileName := fmt.Sprintf("meal-%s", entries[0].ID.String())
		objectKey, uploadErr := s.s3.UploadFile(fileName, req.Image, "meal-photos", storage.AllowImage...)
		if uploadErr != nil {
			log.Printf("Error uploading meal photo: %v", uploadErr)
		} else {
			photoURL := s.s3.GetPublicLinkKey(objectKey)
			for _, entry := range entries {
				entry.PhotoURL = photoURL
			}
		}
	}

	if err := s.foodlogRepository.AddEntries(ctx, entries); err != nil {
		return domain.LogFoodResponse{}, err
	}

	return domain.LogFoodResponse{Entries: toEntryResponses(entries)}, nil
}

func (s *foodlogService) callGemini(ctx context.Context, prompt string, imageFile *multipart.FileHeader) (string, error) {
	geminiAPIKey := utils.GetConfig("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	geminiModel := utils.GetConfig("GEMINI_MODEL")
	if geminiModel == "" {
		return "", fmt.Errorf("GEMINI_MODEL environment variable not set")
	}

	parts := []map[string]interface{}{
		{"text": prompt},
	}

	if imageFile != nil {
		file, err := imageFile.Open()
		if err != nil {
			return "", err
		}
		fileData, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return "", err
		}

		mimeType := imageFile.Header.Get("Content-Type")
		if mimeType == "" {
			switch strings.ToLower(filepath.Ext(imageFile.Filename)) {
			case ".png":
				mimeType = "image/png"
			case ".gif":
				mimeType = "image/gif"
			case ".webp":
				mimeType = "image/webp"
			default:
				mimeType = "image/jpeg"
			}
		}

		parts = append(parts, map[string]interface{}{
			"inline_data": map[string]interface{}{
				"mime_type": mimeType,
				"data":      base64.StdEncoding.EncodeToString(fileData),
			},
		})
	}

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": parts},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.1,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	geminiURL := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", geminiModel, geminiAPIKey)

	httpClient := &http.Client{Timeout: 30 * time.Second}
	httpReq, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrGeminiProcessingFailed
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}

// DeleteEntry removes one entry by id. Deleting an id that is already gone
// leaves the log unchanged and reports success.
func (s *foodlogService) DeleteEntry(ctx context.Context, id string, userID string) error {
	entry, err := s.foodlogRepository.GetEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if entry.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	return s.foodlogRepository.DeleteEntry(ctx, id)
}

func (s *foodlogService) GetEntries(ctx context.Context, userID string, date string) ([]domain.FoodEntryResponse, error) {
	entries, err := s.foodlogRepository.GetEntriesByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	return toEntryResponses(entries), nil
}

// GetDailySummary recomputes the day's totals from scratch on every call.
func (s *foodlogService) GetDailySummary(ctx context.Context, userID string, date string) (domain.DailySummaryResponse, error) {
	entries, err := s.foodlogRepository.GetEntriesByDate(ctx, userID, date)
	if err != nil {
		return domain.DailySummaryResponse{}, err
	}

	target := 0
	userProfile, err := s.profileRepository.GetProfileByUserID(ctx, userID)
	if err == nil {
		target = userProfile.DailyCalorieTarget
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.DailySummaryResponse{}, err
	}

	totals := sumTotals(entries)

	return domain.DailySummaryResponse{
		Date:          date,
		Totals:        totals,
		CalorieTarget: target,
		ProgressRatio: progressRatio(totals.Calories, target),
		Entries:       toEntryResponses(entries),
	}, nil
}

func (s *foodlogService) GetHistory(ctx context.Context, userID string) (domain.HistoryResponse, error) {
	entries, err := s.foodlogRepository.GetAllEntries(ctx, userID)
	if err != nil {
		return domain.HistoryResponse{}, err
	}
	return domain.HistoryResponse{Days: groupByDay(entries)}, nil
}
