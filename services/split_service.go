package services

import (
	"fmt"
	"math"

	"github.com/splitr-app/splitr-backend/models"
	"github.com/splitr-app/splitr-backend/utils"
)

// SplitService validates and builds expense splits
type SplitService struct{}

// NewSplitService creates a new split service
func NewSplitService() *SplitService {
	return &SplitService{}
}

// ValidateSplits verifies that the split amounts sum to the expense
// amount within the monetary tolerance. Pure, no side effects.
func (s *SplitService) ValidateSplits(amount float64, splits []models.Split) error {
	if err := utils.ValidateNotEmpty(splits, "splits"); err != nil {
		return err
	}

	var total float64
	for _, split := range splits {
		if split.Amount < 0 {
			return utils.NewValidationError("split amounts cannot be negative")
		}
		total += split.Amount
	}

	if !utils.WithinTolerance(total, amount) {
		return utils.NewValidationError("split amounts must add up to the total expense amount")
	}

	return nil
}

// BuildEqualSplits divides amount evenly among the participants. The
// payer's split is marked paid. Any rounding remainder lands on the
// last participant so the splits always sum to the amount.
func (s *SplitService) BuildEqualSplits(amount float64, payerID string, participantIDs []string) ([]models.Split, error) {
	if err := utils.ValidateNotEmpty(participantIDs, "participants"); err != nil {
		return nil, err
	}

	share := utils.Round(amount / float64(len(participantIDs)))

	splits := make([]models.Split, len(participantIDs))
	var allocated float64
	for i, id := range participantIDs {
		splits[i] = models.Split{
			UserID: id,
			Amount: share,
			Paid:   id == payerID,
		}
		allocated += share
	}

	diff := utils.Round(amount - allocated)
	if diff != 0 {
		last := len(splits) - 1
		splits[last].Amount = utils.Round(splits[last].Amount + diff)
	}

	return splits, nil
}

// BuildPercentageSplits assigns each participant their percentage of
// the amount. Percentages must sum to 100 within tolerance.
func (s *SplitService) BuildPercentageSplits(amount float64, payerID string, shares map[string]float64) ([]models.Split, error) {
	if len(shares) == 0 {
		return nil, utils.NewValidationError("shares cannot be empty")
	}

	var totalPercent float64
	for id, percent := range shares {
		if percent < 0 {
			return nil, utils.NewValidationError(fmt.Sprintf("percentage for user %s cannot be negative", id))
		}
		totalPercent += percent
	}
	if math.Abs(totalPercent-100) > utils.SplitSumTolerance {
		return nil, utils.NewValidationError("percentages must add up to 100")
	}

	splits := make([]models.Split, 0, len(shares))
	for id, percent := range shares {
		splits = append(splits, models.Split{
			UserID: id,
			Amount: utils.Round(amount * percent / 100),
			Paid:   id == payerID,
		})
	}

	return splits, nil
}

// BuildExactSplits takes caller-provided amounts and validates them
// against the expense total.
func (s *SplitService) BuildExactSplits(amount float64, payerID string, amounts map[string]float64) ([]models.Split, error) {
	if len(amounts) == 0 {
		return nil, utils.NewValidationError("amounts cannot be empty")
	}

	splits := make([]models.Split, 0, len(amounts))
	for id, amt := range amounts {
		splits = append(splits, models.Split{
			UserID: id,
			Amount: amt,
			Paid:   id == payerID,
		})
	}

	if err := s.ValidateSplits(amount, splits); err != nil {
		return nil, err
	}

	return splits, nil
}
