package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealscope/backend/internal/types"
)

// MockNutritionService is a configurable stand-in for the extractor
type MockNutritionService struct {
	result *types.NutritionResult
	err    error

	gotSicknesses []types.Sickness
	gotImageURL   string
}

func (m *MockNutritionService) ExtractNutrition(ctx context.Context, sicknesses []types.Sickness, imageURL string) (*types.NutritionResult, error) {
	m.gotSicknesses = sicknesses
	m.gotImageURL = imageURL
	return m.result, m.err
}

func setupNutritionTestRouter(mock *MockNutritionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())

	handler := NewNutritionHandler(mock, nil)
	handler.RegisterRoutes(router.Group("/api/v1"))

	return router
}

// performJSONRequest performs an HTTP request with a JSON body
func performJSONRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	router.ServeHTTP(w, req)
	return w
}

func TestAnalyzeValidatesInput(t *testing.T) {
	router := setupNutritionTestRouter(&MockNutritionService{})

	t.Run("missing image_url", func(t *testing.T) {
		w := performJSONRequest(router, "POST", "/api/v1/nutrition/analyze", map[string]interface{}{
			"sicknesses": []string{"gout"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty sicknesses", func(t *testing.T) {
		w := performJSONRequest(router, "POST", "/api/v1/nutrition/analyze", map[string]interface{}{
			"sicknesses": []string{},
			"image_url":  "https://example.com/meal.jpg",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown sickness tag", func(t *testing.T) {
		w := performJSONRequest(router, "POST", "/api/v1/nutrition/analyze", map[string]interface{}{
			"sicknesses": []string{"hay fever"},
			"image_url":  "https://example.com/meal.jpg",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid sickness")
	})
}

func TestAnalyzeReturnsFacts(t *testing.T) {
	mock := &MockNutritionService{
		result: &types.NutritionResult{
			Facts: &types.NutritionFacts{
				Kcal:        320,
				Protein:     12,
				Ingredients: []string{"noodles", "egg"},
				RiskLevels: map[types.Sickness]string{
					types.SicknessDiabetes: "Moderate",
				},
			},
		},
	}
	router := setupNutritionTestRouter(mock)

	w := performJSONRequest(router, "POST", "/api/v1/nutrition/analyze", map[string]interface{}{
		"sicknesses": []string{"diabetes", "none"},
		"image_url":  "https://example.com/meal.jpg",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []types.Sickness{types.SicknessDiabetes, types.SicknessNone}, mock.gotSicknesses)
	assert.Equal(t, "https://example.com/meal.jpg", mock.gotImageURL)

	var response types.NutritionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotNil(t, response.Facts)
	assert.Equal(t, float64(320), response.Facts.Kcal)
	assert.Equal(t, []string{"noodles", "egg"}, response.Facts.Ingredients)
}

func TestAnalyzeReturnsRawFallback(t *testing.T) {
	mock := &MockNutritionService{
		result: &types.NutritionResult{Raw: `{"choices":[{"message":{"content":"not food"}}]}`},
	}
	router := setupNutritionTestRouter(mock)

	w := performJSONRequest(router, "POST", "/api/v1/nutrition/analyze", map[string]interface{}{
		"sicknesses": []string{"none"},
		"image_url":  "https://example.com/meal.jpg",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response, "raw_response")
	assert.NotContains(t, response, "facts")
}

func TestAnalyzeSurfacesExtractorFault(t *testing.T) {
	mock := &MockNutritionService{err: errors.New("upstream timeout")}
	router := setupNutritionTestRouter(mock)

	w := performJSONRequest(router, "POST", "/api/v1/nutrition/analyze", map[string]interface{}{
		"sicknesses": []string{"gout"},
		"image_url":  "https://example.com/meal.jpg",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "upstream timeout")
}
