package splitter

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donorvault/donorvault-backend/internal/domain"
)

func TestTakeFee_OffTheTop(t *testing.T) {
	// 2% of 50 = 1, net 49.
	res, err := TakeFee(decimal.NewFromInt(50), 200)
	require.NoError(t, err)
	assert.True(t, res.Fee.Equal(decimal.NewFromInt(1)))
	assert.True(t, res.Net.Equal(decimal.NewFromInt(49)))
	assert.True(t, res.Fee.Add(res.Net).Equal(decimal.NewFromInt(50)))
}

func TestTakeFee_RoundsFeeDown(t *testing.T) {
	// 2% of 49 = 0.98 -> fee 0, net 49.
	res, err := TakeFee(decimal.NewFromInt(49), 200)
	require.NoError(t, err)
	assert.True(t, res.Fee.IsZero())
	assert.True(t, res.Net.Equal(decimal.NewFromInt(49)))
}

func TestTakeFee_Validation(t *testing.T) {
	_, err := TakeFee(decimal.Zero, 200)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindValidation))

	_, err = TakeFee(decimal.NewFromInt(10), 10001)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindValidation))
}

func TestCompute_ScenarioSplit(t *testing.T) {
	// Entitlement 34 at 80% campaign preference: campaign 27, beneficiary 7.
	s, err := Compute(decimal.NewFromInt(34), 8000)
	require.NoError(t, err)
	assert.True(t, s.CampaignAmount.Equal(decimal.NewFromInt(27)))
	assert.True(t, s.BeneficiaryAmount.Equal(decimal.NewFromInt(7)))
}

func TestCompute_AllToCampaign(t *testing.T) {
	s, err := Compute(decimal.NewFromInt(14), 10000)
	require.NoError(t, err)
	assert.True(t, s.CampaignAmount.Equal(decimal.NewFromInt(14)))
	assert.True(t, s.BeneficiaryAmount.IsZero())
}

func TestCompute_Conservation(t *testing.T) {
	// The split conserves value for every bps across awkward amounts.
	amounts := []int64{1, 7, 33, 49, 101, 9999}
	bps := []int64{0, 1, 2500, 3333, 5000, 6667, 9999, 10000}

	for _, a := range amounts {
		for _, b := range bps {
			s, err := Compute(decimal.NewFromInt(a), b)
			require.NoError(t, err)
			total := s.CampaignAmount.Add(s.BeneficiaryAmount)
			assert.True(t, total.Equal(decimal.NewFromInt(a)),
				"amount %d bps %d: %s + %s != %d", a, b, s.CampaignAmount, s.BeneficiaryAmount, a)
		}
	}
}

func TestCompute_ZeroEntitlement(t *testing.T) {
	s, err := Compute(decimal.Zero, 5000)
	require.NoError(t, err)
	assert.True(t, s.CampaignAmount.IsZero())
	assert.True(t, s.BeneficiaryAmount.IsZero())
}
