// Package advisory is the narrow contract to the generative model that
// comments on drafts, transcribes scanned images and suggests citations.
// Responses are opaque text; errors are passed through untouched.
package advisory

import (
	"context"
	"errors"
)

var (
	ErrEmptyInput       = errors.New("input must not be empty")
	ErrUnsupportedImage = errors.New("unsupported image type")
)

type Advisor interface {
	// Analyze comments on the likely success of a draft. domainHint is the
	// matter category (Civil, Criminal).
	Analyze(ctx context.Context, text, domainHint string) (string, error)
	// Transcribe extracts and summarises the text of a scanned image.
	Transcribe(ctx context.Context, image []byte, mimeType string) (string, error)
	// Citations lists precedents relevant to query within domainHint.
	Citations(ctx context.Context, query, domainHint string) (string, error)
}

// ImageFormat maps an upload MIME type to the short format name the model
// expects. Only jpg and png scans are accepted.
func ImageFormat(mimeType string) (string, error) {
	switch mimeType {
	case "image/png":
		return "png", nil
	case "image/jpeg", "image/jpg":
		return "jpeg", nil
	default:
		return "", ErrUnsupportedImage
	}
}
