package service

import (
	"context"
	"errors"

	"github.com/robomate/servicedesk/internal/shared/generator"
)

var errGeneratorUnavailable = errors.New("text generator is not configured")

// unavailableGenerator stands in when no API key is configured. Every
// call fails, which the lifecycle engine turns into the fixed fallback
// texts.
type unavailableGenerator struct{}

func (unavailableGenerator) GenerateQuote(ctx context.Context, payload *generator.QuotePayload) (string, error) {
	return "", errGeneratorUnavailable
}

func (unavailableGenerator) GenerateReport(ctx context.Context, payload *generator.ReportPayload) (*generator.ReportText, error) {
	return nil, errGeneratorUnavailable
}
