package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/courtcraft/estimates/internal/config"
	"github.com/courtcraft/estimates/internal/model"
	"github.com/courtcraft/estimates/internal/pricing"
)

type RateStore interface {
	ListRates(ctx context.Context) ([]model.Rate, error)
	UpdateRateValue(ctx context.Context, id int, value float64) (*model.Rate, error)
}

type EstimateStore interface {
	CreateEstimate(ctx context.Context, estimate model.Estimate) (*model.Estimate, error)
	GetEstimate(ctx context.Context, id uuid.UUID) (*model.Estimate, error)
	ListEstimates(ctx context.Context, limit int) ([]model.EstimateSummary, error)
	UpdateEstimateResult(ctx context.Context, id uuid.UUID, result model.CostBreakdown) (*model.Estimate, error)
}

type ExcelGenerator interface {
	Generate(estimate model.Estimate) ([]byte, error)
}

type PDFGenerator interface {
	Generate(estimate model.Estimate) ([]byte, error)
}

type EstimateService struct {
	rates     RateStore
	estimates EstimateStore
	excel     ExcelGenerator
	pdf       PDFGenerator
	options   pricing.Options
	log       zerolog.Logger
}

type CreateEstimateInput struct {
	ClientName  string
	ProjectName string
	Project     model.ProjectInput
	Principal   model.Principal
}

type ExportResult struct {
	FileName string
	Content  []byte
}

func NewEstimateService(
	rates RateStore,
	estimates EstimateStore,
	excel ExcelGenerator,
	pdf PDFGenerator,
	cfg *config.Config,
	log zerolog.Logger,
) *EstimateService {
	options := pricing.DefaultOptions()
	if cfg != nil {
		options = pricing.Options{
			TaxRate:          cfg.Pricing.TaxRate,
			MarginRate:       cfg.Pricing.MarginRate,
			DefaultHotelRate: cfg.Pricing.DefaultHotelRate,
		}
	}
	return &EstimateService{
		rates:     rates,
		estimates: estimates,
		excel:     excel,
		pdf:       pdf,
		options:   options,
		log:       log,
	}
}

// Calculate prices a project against the current rate table without saving it.
func (s *EstimateService) Calculate(ctx context.Context, principal model.Principal, input model.ProjectInput) (*model.CostBreakdown, error) {
	if !principal.CanEstimate() {
		return nil, ErrPermissionDenied
	}
	if err := validateProject(input); err != nil {
		return nil, err
	}
	result, err := s.price(ctx, input)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *EstimateService) CreateEstimate(ctx context.Context, input CreateEstimateInput) (*model.Estimate, error) {
	if !input.Principal.CanEstimate() {
		return nil, ErrPermissionDenied
	}
	clientName := strings.TrimSpace(input.ClientName)
	if clientName == "" {
		return nil, fmt.Errorf("%w: client_name is required", ErrInvalidInput)
	}
	if err := validateProject(input.Project); err != nil {
		return nil, err
	}

	result, err := s.price(ctx, input.Project)
	if err != nil {
		return nil, err
	}

	estimate, err := s.estimates.CreateEstimate(ctx, model.Estimate{
		ClientName:  clientName,
		ProjectName: strings.TrimSpace(input.ProjectName),
		Input:       input.Project,
		Result:      result,
		CreatedBy:   input.Principal.UserID,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("estimate_id", estimate.ID.String()).
		Str("created_by", input.Principal.UserID.String()).
		Float64("total", result.Total).
		Msg("estimate saved")
	return estimate, nil
}

func (s *EstimateService) GetEstimate(ctx context.Context, principal model.Principal, id uuid.UUID) (*model.Estimate, error) {
	if !principal.CanView() {
		return nil, ErrPermissionDenied
	}
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: estimate id is required", ErrInvalidInput)
	}
	estimate, err := s.estimates.GetEstimate(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return estimate, nil
}

func (s *EstimateService) ListEstimates(ctx context.Context, principal model.Principal, limit int) ([]model.EstimateSummary, error) {
	if !principal.CanView() {
		return nil, ErrPermissionDenied
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}
	return s.estimates.ListEstimates(ctx, limit)
}

// Recalculate reprices a saved estimate with today's rates. The stored input
// is left untouched.
func (s *EstimateService) Recalculate(ctx context.Context, principal model.Principal, id uuid.UUID) (*model.Estimate, error) {
	if !principal.CanEstimate() {
		return nil, ErrPermissionDenied
	}
	existing, err := s.GetEstimate(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	result, err := s.price(ctx, existing.Input)
	if err != nil {
		return nil, err
	}

	updated, err := s.estimates.UpdateEstimateResult(ctx, id, result)
	if err != nil {
		return nil, mapStoreError(err)
	}

	s.log.Info().
		Str("estimate_id", id.String()).
		Float64("previous_total", existing.Result.Total).
		Float64("total", result.Total).
		Msg("estimate recalculated")
	return updated, nil
}

func (s *EstimateService) ExportExcel(ctx context.Context, principal model.Principal, id uuid.UUID) (*ExportResult, error) {
	estimate, err := s.GetEstimate(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Generate(*estimate)
	if err != nil {
		return nil, err
	}
	return &ExportResult{FileName: buildFileName(*estimate, "xlsx"), Content: content}, nil
}

func (s *EstimateService) ExportPDF(ctx context.Context, principal model.Principal, id uuid.UUID) (*ExportResult, error) {
	estimate, err := s.GetEstimate(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	content, err := s.pdf.Generate(*estimate)
	if err != nil {
		return nil, err
	}
	return &ExportResult{FileName: buildFileName(*estimate, "pdf"), Content: content}, nil
}

func (s *EstimateService) ListRates(ctx context.Context) ([]model.Rate, error) {
	return s.rates.ListRates(ctx)
}

func (s *EstimateService) UpdateRate(ctx context.Context, principal model.Principal, id int, value float64) (*model.Rate, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if id <= 0 {
		return nil, fmt.Errorf("%w: rate id must be positive", ErrInvalidInput)
	}
	if value < 0 {
		return nil, fmt.Errorf("%w: rate value must not be negative", ErrInvalidInput)
	}

	rate, err := s.rates.UpdateRateValue(ctx, id, value)
	if err != nil {
		return nil, mapStoreError(err)
	}
	s.log.Info().
		Int("rate_id", id).
		Str("rate", rate.Name).
		Float64("value", value).
		Str("updated_by", principal.UserID.String()).
		Msg("pricing rate updated")
	return rate, nil
}

func (s *EstimateService) price(ctx context.Context, input model.ProjectInput) (model.CostBreakdown, error) {
	rates, err := s.rates.ListRates(ctx)
	if err != nil {
		return model.CostBreakdown{}, err
	}
	if len(rates) == 0 {
		return model.CostBreakdown{}, ErrNoRates
	}

	result := pricing.Estimate(input, pricing.NewRateTable(rates), s.options)
	if result.Degraded {
		s.log.Warn().Strs("missing_rates", result.MissingRates).Msg("estimate priced with missing rates")
	}
	if result.ColorCoat.OverAllocatedArea > 0 {
		s.log.Warn().
			Float64("square_footage", result.ColorCoat.SquareFootage).
			Float64("over_allocated", result.ColorCoat.OverAllocatedArea).
			Msg("court areas exceed square footage")
	}
	return result, nil
}

func mapStoreError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func buildFileName(estimate model.Estimate, ext string) string {
	name := sanitizeFileName(estimate.ProjectName)
	if name == "" {
		name = sanitizeFileName(estimate.ClientName)
	}
	if name == "" {
		name = estimate.ID.String()
	}
	return fmt.Sprintf("estimate-%s-%s.%s", name, estimate.CreatedAt.Format("20060102"), ext)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range strings.TrimSpace(input) {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
