package services

import (
	"testing"

	"github.com/splitr-app/splitr-backend/models"
	"github.com/splitr-app/splitr-backend/utils"
	"github.com/stretchr/testify/assert"
)

func TestSplitService_ValidateSplits(t *testing.T) {
	service := NewSplitService()

	t.Run("accepts splits summing exactly to the amount", func(t *testing.T) {
		err := service.ValidateSplits(100, []models.Split{
			{UserID: "alice", Amount: 60},
			{UserID: "bob", Amount: 40},
		})
		assert.NoError(t, err)
	})

	t.Run("accepts a sum within the tolerance", func(t *testing.T) {
		err := service.ValidateSplits(100, []models.Split{
			{UserID: "alice", Amount: 50.005},
			{UserID: "bob", Amount: 50.004},
		})
		assert.NoError(t, err)
	})

	t.Run("rejects a sum outside the tolerance", func(t *testing.T) {
		err := service.ValidateSplits(100, []models.Split{
			{UserID: "alice", Amount: 50.01},
			{UserID: "bob", Amount: 50.01},
		})
		assert.Error(t, err)
		assert.True(t, utils.IsKind(err, utils.KindValidation))
	})

	t.Run("rejects a negative split amount", func(t *testing.T) {
		err := service.ValidateSplits(10, []models.Split{
			{UserID: "alice", Amount: 20},
			{UserID: "bob", Amount: -10},
		})
		assert.Error(t, err)
		assert.True(t, utils.IsKind(err, utils.KindValidation))
	})

	t.Run("rejects empty splits", func(t *testing.T) {
		err := service.ValidateSplits(10, nil)
		assert.Error(t, err)
	})
}

func TestSplitService_BuildEqualSplits(t *testing.T) {
	service := NewSplitService()

	t.Run("divides evenly and marks the payer paid", func(t *testing.T) {
		splits, err := service.BuildEqualSplits(90, "alice", []string{"alice", "bob", "carol"})
		assert.NoError(t, err)
		assert.Len(t, splits, 3)
		for _, s := range splits {
			assert.Equal(t, 30.0, s.Amount)
			assert.Equal(t, s.UserID == "alice", s.Paid)
		}
	})

	t.Run("pushes the rounding remainder onto the last participant", func(t *testing.T) {
		splits, err := service.BuildEqualSplits(100, "alice", []string{"alice", "bob", "carol"})
		assert.NoError(t, err)
		assert.Equal(t, 33.33, splits[0].Amount)
		assert.Equal(t, 33.33, splits[1].Amount)
		assert.Equal(t, 33.34, splits[2].Amount)

		var total float64
		for _, s := range splits {
			total += s.Amount
		}
		assert.NoError(t, service.ValidateSplits(100, splits))
		assert.InDelta(t, 100, total, 0.001)
	})

	t.Run("rejects empty participants", func(t *testing.T) {
		_, err := service.BuildEqualSplits(100, "alice", nil)
		assert.Error(t, err)
	})
}

func TestSplitService_BuildPercentageSplits(t *testing.T) {
	service := NewSplitService()

	t.Run("assigns each participant their percentage", func(t *testing.T) {
		splits, err := service.BuildPercentageSplits(200, "alice", map[string]float64{
			"alice": 50,
			"bob":   30,
			"carol": 20,
		})
		assert.NoError(t, err)
		assert.Len(t, splits, 3)

		byUser := make(map[string]models.Split)
		for _, s := range splits {
			byUser[s.UserID] = s
		}
		assert.Equal(t, 100.0, byUser["alice"].Amount)
		assert.Equal(t, 60.0, byUser["bob"].Amount)
		assert.Equal(t, 40.0, byUser["carol"].Amount)
		assert.True(t, byUser["alice"].Paid)
		assert.False(t, byUser["bob"].Paid)
	})

	t.Run("rejects percentages not summing to 100", func(t *testing.T) {
		_, err := service.BuildPercentageSplits(200, "alice", map[string]float64{
			"alice": 50,
			"bob":   30,
		})
		assert.Error(t, err)
		assert.True(t, utils.IsKind(err, utils.KindValidation))
	})

	t.Run("rejects a negative percentage", func(t *testing.T) {
		_, err := service.BuildPercentageSplits(200, "alice", map[string]float64{
			"alice": 120,
			"bob":   -20,
		})
		assert.Error(t, err)
	})
}

func TestSplitService_BuildExactSplits(t *testing.T) {
	service := NewSplitService()

	t.Run("accepts exact amounts matching the total", func(t *testing.T) {
		splits, err := service.BuildExactSplits(75.5, "bob", map[string]float64{
			"alice": 25.5,
			"bob":   50,
		})
		assert.NoError(t, err)
		assert.Len(t, splits, 2)
	})

	t.Run("rejects amounts that do not match the total", func(t *testing.T) {
		_, err := service.BuildExactSplits(75.5, "bob", map[string]float64{
			"alice": 25,
			"bob":   50,
		})
		assert.Error(t, err)
		assert.True(t, utils.IsKind(err, utils.KindValidation))
	})
}
