package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/atesyeri/somine-cms-backend/config"
)

// ErrReviewsNotConfigured is returned when the Places credentials are absent.
var ErrReviewsNotConfigured = errors.New("GOOGLE_PLACES_API_KEY or GOOGLE_PLACE_ID missing")

// ErrReviewsUpstream is returned when the Places API answers with a non-OK
// status.
var ErrReviewsUpstream = errors.New("places API returned an error status")

const reviewsCacheTTL = time.Hour

// ReviewsService proxies the Google Places details call that feeds the
// public reviews section. Responses are cached in Redis per language so the
// Places quota is only touched once an hour.
type ReviewsService struct {
	apiKey  string
	placeID string
	client  *http.Client
}

var reviewsService *ReviewsService

// GetReviewsService returns the shared reviews service.
func GetReviewsService() *ReviewsService {
	if reviewsService == nil {
		reviewsService = &ReviewsService{
			apiKey:  os.Getenv("GOOGLE_PLACES_API_KEY"),
			placeID: os.Getenv("GOOGLE_PLACE_ID"),
			client:  &http.Client{Timeout: 10 * time.Second},
		}
	}
	return reviewsService
}

type placesResponse struct {
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message"`
	Result       json.RawMessage `json:"result"`
}

// GetReviews returns the place details (reviews, rating, total) for the
// given language, from cache when fresh.
func (s *ReviewsService) GetReviews(ctx context.Context, lang string) (json.RawMessage, error) {
	if s.apiKey == "" || s.placeID == "" {
		return nil, ErrReviewsNotConfigured
	}

	cacheKey := "reviews:" + lang
	if cached, err := config.RedisClient.Get(ctx, cacheKey).Bytes(); err == nil {
		return cached, nil
	}

	endpoint := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/place/details/json?place_id=%s&fields=reviews,rating,user_ratings_total&key=%s&language=%s",
		url.QueryEscape(s.placeID), url.QueryEscape(s.apiKey), url.QueryEscape(lang),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read reviews response: %w", err)
	}

	var parsed placesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode reviews response: %w", err)
	}
	if parsed.Status != "OK" {
		return nil, fmt.Errorf("%w: %s %s", ErrReviewsUpstream, parsed.Status, parsed.ErrorMessage)
	}

	if err := config.RedisClient.Set(ctx, cacheKey, []byte(parsed.Result), reviewsCacheTTL).Err(); err != nil {
		// Cache failures only cost quota, never the response.
		fmt.Printf("⚠️  Warning: failed to cache reviews for %s: %v\n", lang, err)
	}

	return parsed.Result, nil
}
