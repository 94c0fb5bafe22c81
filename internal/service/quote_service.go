package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/Natim/payment-plan-generator/internal/config"
	"github.com/Natim/payment-plan-generator/internal/domain"
	"github.com/Natim/payment-plan-generator/internal/plan"
	"github.com/Natim/payment-plan-generator/internal/repository"
	"github.com/Natim/payment-plan-generator/internal/usury"
	customError "github.com/Natim/payment-plan-generator/pkg/errors"
	"github.com/Natim/payment-plan-generator/pkg/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const quarterCacheKeyPrefix = "usury:quarter:"

// QuoteService orchestrates the plan builders and the rate-cap checker
// behind the quoting API. The engine packages stay pure; everything
// impure (IDs, cache, repository) lives here.
type QuoteService struct {
	quarterRepo repository.QuarterRepository
	redis       *redis.Client
	config      *config.Config
	log         *logrus.Logger
}

func NewQuoteService(
	quarterRepo repository.QuarterRepository,
	redisClient *redis.Client,
	cfg *config.Config,
	log *logrus.Logger,
) *QuoteService {
	return &QuoteService{
		quarterRepo: quarterRepo,
		redis:       redisClient,
		config:      cfg,
		log:         log,
	}
}

// QuoteAmortized builds the amortized plan for a request and formats the
// solved annual rate. An unsolvable plan yields an empty installment list
// and the rate placeholder, not an error.
func (s *QuoteService) QuoteAmortized(ctx context.Context, request *domain.AmortizedQuoteRequest) (*domain.QuoteResponse, error) {
	if err := s.checkCount(request.Count); err != nil {
		return nil, err
	}

	startDate, err := domain.ParseDate(request.StartDate)
	if err != nil {
		return nil, customError.WrapInvalidStartDate(request.StartDate)
	}

	fee := request.PaidAmount - request.PurchaseAmount
	installments, taeg, ok := plan.BuildAmortizedPlan(request.PurchaseAmount, request.PaidAmount, request.Count, startDate)
	if !ok {
		s.log.WithFields(logrus.Fields{
			"purchase_amount": request.PurchaseAmount,
			"fee":             fee,
			"count":           request.Count,
		}).Info("no annual rate solvable, returning empty plan")
	}

	return &domain.QuoteResponse{
		QuoteID:      uuid.New().String(),
		Rate:         utils.FormatRate(taeg, ok),
		Installments: toViews(installments),
		TotalPaid:    utils.CentsToDecimal(installments.TotalPaid()),
	}, nil
}

// QuoteFlat builds the weekly flat plan for a request. The flat product
// carries no solved rate.
func (s *QuoteService) QuoteFlat(ctx context.Context, request *domain.FlatQuoteRequest) (*domain.QuoteResponse, error) {
	if err := s.checkCount(request.Count); err != nil {
		return nil, err
	}

	startDate, err := domain.ParseDate(request.StartDate)
	if err != nil {
		return nil, customError.WrapInvalidStartDate(request.StartDate)
	}

	installments := plan.BuildFlatPlan(request.PurchaseAmount, request.PaidAmount, request.Count, startDate, plan.FlatOptions{
		Anchored:      true,
		AnchorWeekday: s.config.GetFlatAnchorWeekday(),
		OffsetWeeks:   request.OffsetWeeks,
	})

	return &domain.QuoteResponse{
		QuoteID:      uuid.New().String(),
		Installments: toViews(installments),
		TotalPaid:    utils.CentsToDecimal(installments.TotalPaid()),
	}, nil
}

// CheckRateCap computes the maximum permissible rate for a plan shape
// against a published quarter. Unknown labels yield the placeholder, not
// an error.
func (s *QuoteService) CheckRateCap(ctx context.Context, request *domain.RateCapRequest) (*domain.RateCapResponse, error) {
	response := &domain.RateCapResponse{
		QuoteID:      uuid.New().String(),
		QuarterLabel: request.QuarterLabel,
		MaxRate:      utils.RateCapPlaceholder,
	}

	quarter, found := s.resolveQuarter(ctx, request.QuarterLabel)
	if !found {
		return response, nil
	}

	maxBps, ok := usury.MaxRateBps(request.Count, request.RateBps, request.DeferredDays, quarter)
	response.MaxRate = utils.FormatRateCap(maxBps, ok)
	return response, nil
}

// checkCount rejects plan lengths past the configured ceiling. Zero and
// negative counts are already stopped by request validation.
func (s *QuoteService) checkCount(count int) error {
	if count < 1 {
		return customError.WrapInvalidInstallmentCount(count)
	}
	if s.config != nil && count > s.config.Business.MaxInstallments {
		return customError.WrapInvalidInstallmentCount(count)
	}
	return nil
}

// resolveQuarter looks a publication label up in the built-in tables
// first, then the Redis cache, then the repository. Repository hits are
// cached for the configured TTL.
func (s *QuoteService) resolveQuarter(ctx context.Context, label string) (domain.Quarter, bool) {
	if label == "" {
		return domain.Quarter{}, false
	}

	if quarter, ok := usury.LookupQuarter(label); ok {
		return quarter, true
	}

	if s.redis != nil {
		payload, err := s.redis.Get(ctx, quarterCacheKeyPrefix+label).Bytes()
		if err == nil {
			var quarter domain.Quarter
			if err := json.Unmarshal(payload, &quarter); err == nil {
				return quarter, true
			}
		} else if !errors.Is(err, redis.Nil) {
			s.log.WithError(err).Warn("quarter cache lookup failed")
		}
	}

	if s.quarterRepo == nil {
		return domain.Quarter{}, false
	}

	quarter, err := s.quarterRepo.GetByLabel(ctx, label)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.log.WithError(err).WithField("label", label).Warn("quarter lookup failed")
		}
		return domain.Quarter{}, false
	}

	s.cacheQuarter(ctx, quarter)
	return *quarter, true
}

// RefreshQuarterCache loads every published quarter from the repository
// into the Redis cache. It returns the number of quarters cached.
func (s *QuoteService) RefreshQuarterCache(ctx context.Context) (int, error) {
	if s.quarterRepo == nil {
		return 0, nil
	}

	quarters, err := s.quarterRepo.List(ctx)
	if err != nil {
		return 0, customError.WrapDatabaseError(err)
	}

	for _, quarter := range quarters {
		s.cacheQuarter(ctx, quarter)
	}

	return len(quarters), nil
}

func (s *QuoteService) cacheQuarter(ctx context.Context, quarter *domain.Quarter) {
	if s.redis == nil || quarter == nil {
		return
	}

	payload, err := json.Marshal(quarter)
	if err != nil {
		return
	}

	ttl := 24 * time.Hour
	if s.config != nil {
		ttl = s.config.GetQuarterCacheTTL()
	}

	if err := s.redis.Set(ctx, quarterCacheKeyPrefix+quarter.Label, payload, ttl).Err(); err != nil {
		s.log.WithError(err).WithField("label", quarter.Label).Warn("caching quarter failed")
	}
}

func toViews(installments domain.PaymentPlan) []domain.InstallmentView {
	views := make([]domain.InstallmentView, 0, len(installments))
	for _, inst := range installments {
		views = append(views, domain.InstallmentView{
			DueDate:          inst.DueDate.Format(domain.DateFormat),
			TotalAmount:      utils.CentsToDecimal(inst.TotalAmount),
			PurchaseAmount:   utils.CentsToDecimal(inst.PurchaseAmount),
			CustomerInterest: utils.CentsToDecimal(inst.CustomerInterest),
		})
	}
	return views
}
