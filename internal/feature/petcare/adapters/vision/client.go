// Package vision provides a Google Cloud Vision client for extracting
// text from vaccine card photos.
package vision

import (
	"context"
	"fmt"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"petverse_backend/internal/feature/petcare/usecase"
)

// VisionTextExtractor extracts text from images using the Google Cloud
// Vision API.
type VisionTextExtractor struct {
	client *gvision.ImageAnnotatorClient
}

var _ usecase.TextExtractor = (*VisionTextExtractor)(nil)

// NewVisionTextExtractor creates a VisionTextExtractor using ADC
// credentials.
func NewVisionTextExtractor(ctx context.Context) (*VisionTextExtractor, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &VisionTextExtractor{client: client}, nil
}

// Close releases the Vision API client.
func (v *VisionTextExtractor) Close() error {
	return v.client.Close()
}

// ExtractText runs text detection over the image bytes and returns the
// full detected text.
func (v *VisionTextExtractor) ExtractText(ctx context.Context, imageData []byte) (string, error) {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: imageData},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_TEXT_DETECTION},
				},
			},
		},
	}

	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return "", fmt.Errorf("vision API request failed: %w", err)
	}

	if len(resp.Responses) == 0 {
		return "", nil
	}

	r := resp.Responses[0]
	if r.Error != nil {
		return "", fmt.Errorf("vision API error: %s", r.Error.Message)
	}
	if r.FullTextAnnotation == nil {
		return "", nil
	}
	return r.FullTextAnnotation.Text, nil
}
