package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/trendcraft/trendcraft-server/internal/features"
	"github.com/trendcraft/trendcraft-server/internal/models"
	"github.com/trendcraft/trendcraft-server/internal/store"
	"github.com/trendcraft/trendcraft-server/internal/utils"
)

// Predictor is the slice of the model bundle the analyze handler needs.
type Predictor interface {
	Embed(frame *features.Frame) (*features.Frame, error)
	Predict(frame *features.Frame) (float64, error)
}

// Suggester generates the three content suggestions for a draft video.
type Suggester interface {
	RewriteTitle(ctx context.Context, title, description string) (string, error)
	RewriteDescription(ctx context.Context, title, description string) (string, error)
	SuggestHashtags(ctx context.Context, title, description string) (string, error)
}

type AnalyzeHandler struct {
	Predictor       Predictor
	Suggester       Suggester
	PredictionStore store.PredictionStore
	Logger          *log.Logger
}

func NewAnalyzeHandler(predictor Predictor, suggester Suggester, predictionStore store.PredictionStore, logger *log.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		Predictor:       predictor,
		Suggester:       suggester,
		PredictionStore: predictionStore,
		Logger:          logger,
	}
}

type durationInput struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

type analyzeRequest struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	ChannelTitle string          `json:"channel_title"`
	Hashtags     string          `json:"hashtags"`
	PublishedAt  string          `json:"published_at"`
	TrendingDate string          `json:"trending_date"`
	Category     json.RawMessage `json:"category"`
	Duration     durationInput   `json:"duration"`
}

type analyzeResponse struct {
	PredictedRatio       float64 `json:"predicted_ratio"`
	SuggestedTitle       string  `json:"suggested_title"`
	SuggestedDescription string  `json:"suggested_description"`
	SuggestedHashtags    string  `json:"suggested_hashtags"`
}

func (ah *AnalyzeHandler) HandlerAnalyzeVideo(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ah.Logger.Println("Error decoding analyze request body:", err)
		utils.WriteJSON(w, http.StatusBadRequest, utils.Envelope{"message": "Bad Request"})
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		ah.Logger.Println("Error: title is missing")
		utils.WriteJSON(w, http.StatusBadRequest, utils.Envelope{"message": "Bad Request"})
		return
	}

	categoryID, err := resolveCategory(req.Category)
	if err != nil {
		ah.Logger.Println("Error resolving category:", err)
		utils.WriteJSON(w, http.StatusBadRequest, utils.Envelope{"message": "Bad Request"})
		return
	}

	record := models.VideoRecord{
		VideoID:      "draft",
		PublishedAt:  req.PublishedAt,
		Title:        req.Title,
		Description:  req.Description,
		ChannelTitle: req.ChannelTitle,
		CategoryID:   categoryID,
		Tags:         req.Hashtags,
		Duration: fmt.Sprintf("PT%dH%dM%dS",
			req.Duration.Hours, req.Duration.Minutes, req.Duration.Seconds),
		TrendingDate: req.TrendingDate,
	}

	frame := features.Transform([]models.VideoRecord{record})
	if len(frame.Rows) == 0 {
		ah.Logger.Printf("Analyze request dropped by the pipeline (published_at=%q, trending_date=%q)",
			req.PublishedAt, req.TrendingDate)
		utils.WriteJSON(w, http.StatusUnprocessableEntity, utils.Envelope{"message": "Could not extract features from the submitted video"})
		return
	}

	embedded, err := ah.Predictor.Embed(frame)
	if err != nil {
		ah.Logger.Println("Error embedding video text:", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.Envelope{"message": "Internal Server Error"})
		return
	}

	ratio, err := ah.Predictor.Predict(embedded)
	if err != nil {
		ah.Logger.Println("Error predicting ratio:", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.Envelope{"message": "Internal Server Error"})
		return
	}

	title, err := ah.Suggester.RewriteTitle(r.Context(), req.Title, req.Description)
	if err != nil {
		ah.Logger.Println("Error generating title suggestion:", err)
		utils.WriteJSON(w, http.StatusBadGateway, utils.Envelope{"message": "Suggestion service unavailable"})
		return
	}

	description, err := ah.Suggester.RewriteDescription(r.Context(), req.Title, req.Description)
	if err != nil {
		ah.Logger.Println("Error generating description suggestion:", err)
		utils.WriteJSON(w, http.StatusBadGateway, utils.Envelope{"message": "Suggestion service unavailable"})
		return
	}

	hashtags, err := ah.Suggester.SuggestHashtags(r.Context(), req.Title, req.Description)
	if err != nil {
		ah.Logger.Println("Error generating hashtag suggestions:", err)
		utils.WriteJSON(w, http.StatusBadGateway, utils.Envelope{"message": "Suggestion service unavailable"})
		return
	}

	// History is best-effort; a failed insert never fails the analysis.
	prediction := &models.Prediction{
		Title:        req.Title,
		ChannelTitle: req.ChannelTitle,
		CategoryID:   categoryID,
		Ratio:        ratio,
	}
	if err := ah.PredictionStore.CreatePrediction(prediction); err != nil {
		ah.Logger.Println("Error saving prediction:", err)
	}

	utils.WriteJSON(w, http.StatusOK, utils.Envelope{"data": analyzeResponse{
		PredictedRatio:       ratio,
		SuggestedTitle:       title,
		SuggestedDescription: description,
		SuggestedHashtags:    hashtags,
	}})
}

// resolveCategory accepts either a 1-indexed category id or a display label.
func resolveCategory(raw json.RawMessage) (int, error) {
	if len(raw) == 0 {
		return 0, fmt.Errorf("category is missing")
	}

	var id int
	if err := json.Unmarshal(raw, &id); err == nil {
		if !models.ValidCategoryID(id) {
			return 0, fmt.Errorf("category id %d out of range", id)
		}
		return id, nil
	}

	var label string
	if err := json.Unmarshal(raw, &label); err != nil {
		return 0, fmt.Errorf("category must be an id or a label, got %s", raw)
	}
	id, ok := models.CategoryIDForLabel(label)
	if !ok {
		return 0, fmt.Errorf("unknown category label %q", label)
	}
	return id, nil
}

// parseLimit reads an optional positive limit query parameter.
func parseLimit(value string, fallback, max int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	limit, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid limit parameter %q", value)
	}
	if limit < 1 || limit > max {
		return 0, fmt.Errorf("limit parameter must be between 1 and %d, got %d", max, limit)
	}
	return limit, nil
}
