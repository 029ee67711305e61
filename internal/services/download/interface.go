package download

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/sora/internal/services/download Service
//go:generate mockgen -package=mocks -destination=mocks/mock_converter.go github.com/KirkDiggler/sora/internal/services/download Converter

// Service defines the interface for the download flow
type Service interface {
	// CreateLink registers a URL and returns the token the format buttons carry
	CreateLink(ctx context.Context, input *CreateLinkInput) (*CreateLinkOutput, error)

	// Convert redeems a token and converts its URL into the chosen format
	Convert(ctx context.Context, input *ConvertInput) (*ConvertOutput, error)
}

// Converter turns a source URL into a local file
type Converter interface {
	Convert(ctx context.Context, input *ConversionRequest) (*ConversionResult, error)
}
