package service

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/mealscope/backend/internal/types"
)

// INutritionService defines the interface for nutrition extraction
type INutritionService interface {
	ExtractNutrition(ctx context.Context, sicknesses []types.Sickness, imageURL string) (*types.NutritionResult, error)
}

// IUploadService defines the interface for upload relay operations
type IUploadService interface {
	Upload(ctx context.Context, fileHeader *multipart.FileHeader) types.UploadResult
	PresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error)
}
