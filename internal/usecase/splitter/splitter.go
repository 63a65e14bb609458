package splitter

import (
	"github.com/shopspring/decimal"

	"github.com/donorvault/donorvault-backend/internal/domain"
)

var bpsDenom = decimal.NewFromInt(domain.BpsDenominator)

// FeeResult is a gross profit amount with the protocol fee taken off the top.
type FeeResult struct {
	Fee decimal.Decimal
	Net decimal.Decimal
}

// TakeFee deducts the protocol fee from gross before any entitlement math.
// The fee is floored; the net amount absorbs the fee's rounding, so
// Fee + Net == gross exactly.
func TakeFee(gross decimal.Decimal, feeBps int64) (FeeResult, error) {
	if gross.LessThanOrEqual(decimal.Zero) {
		return FeeResult{}, domain.E(domain.KindValidation, "gross amount must be positive")
	}
	if feeBps < 0 || feeBps > domain.BpsDenominator {
		return FeeResult{}, domain.Ef(domain.KindValidation, "fee bps %d out of range", feeBps)
	}

	fee := gross.Mul(decimal.NewFromInt(feeBps)).Div(bpsDenom).Floor()
	return FeeResult{Fee: fee, Net: gross.Sub(fee)}, nil
}

// Split divides one depositor's entitlement between their campaign and
// personal beneficiary. The campaign amount is floored; the beneficiary
// receives the exact remainder, so CampaignAmount + BeneficiaryAmount ==
// entitlement with no value created or lost.
type Split struct {
	CampaignAmount    decimal.Decimal
	BeneficiaryAmount decimal.Decimal
}

// Compute splits entitlement by campaignBps.
func Compute(entitlement decimal.Decimal, campaignBps int64) (Split, error) {
	if entitlement.IsNegative() {
		return Split{}, domain.E(domain.KindValidation, "entitlement cannot be negative")
	}
	if campaignBps < 0 || campaignBps > domain.BpsDenominator {
		return Split{}, domain.Ef(domain.KindValidation, "campaign bps %d out of range", campaignBps)
	}

	campaign := entitlement.Mul(decimal.NewFromInt(campaignBps)).Div(bpsDenom).Floor()
	beneficiary := entitlement.Sub(campaign)

	// Safety check mirrored from the conservation invariant: splitting must
	// never mint or burn value.
	if !campaign.Add(beneficiary).Equal(entitlement) {
		return Split{}, domain.E(domain.KindIntegrity, "split does not conserve entitlement")
	}

	return Split{CampaignAmount: campaign, BeneficiaryAmount: beneficiary}, nil
}
