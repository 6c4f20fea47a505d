// Package di provides dependency injection factories for creating
// application components.
package di

import (
	"context"
	"log"

	"petverse_backend/internal/feature/petcare/adapters/gemini"
	"petverse_backend/internal/feature/petcare/adapters/vision"
	"petverse_backend/internal/feature/petcare/usecase"
)

// NewTextExtractor creates the Vision-backed text extractor. Returns nil
// when credentials are missing so the scan endpoints degrade to 503
// instead of failing startup.
func NewTextExtractor(ctx context.Context) usecase.TextExtractor {
	extractor, err := vision.NewVisionTextExtractor(ctx)
	if err != nil {
		log.Println("[WARN] Vision unavailable. Vaccine card scanning disabled:", err)
		return nil
	}
	return extractor
}

// NewCareAdvisor creates the Gemini-backed care advisor. Returns nil when
// credentials are missing so the recommendation endpoints degrade to 503
// instead of failing startup.
func NewCareAdvisor(ctx context.Context) usecase.CareAdvisor {
	advisor, err := gemini.NewGeminiAdvisor(ctx)
	if err != nil {
		log.Println("[WARN] Gemini unavailable. Care recommendations disabled:", err)
		return nil
	}
	return advisor
}
