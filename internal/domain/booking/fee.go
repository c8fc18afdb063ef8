package booking

import "errors"

var ErrUnknownFeeModel = errors.New("unknown fee model")

type FeeModel string

const (
	// FeeModelAddOn charges the fee on top of the package price; the coach keeps the full price.
	FeeModelAddOn FeeModel = "add_on"
	// FeeModelDeducted takes the fee out of the package price.
	FeeModelDeducted FeeModel = "deducted"
)

const basisPointsScale = 10_000

func ParseFeeModel(s string) (FeeModel, error) {
	switch FeeModel(s) {
	case FeeModelAddOn, FeeModelDeducted:
		return FeeModel(s), nil
	default:
		return "", ErrUnknownFeeModel
	}
}

// Split is the money breakdown of one booking, in minor currency units.
type Split struct {
	Total       int64
	PlatformFee int64
	CoachPayout int64
}

type FeeCalculator struct {
	rateBps int64
	model   FeeModel
}

func NewFeeCalculator(rateBps int64, model FeeModel) (*FeeCalculator, error) {
	if rateBps < 0 || rateBps > basisPointsScale {
		return nil, ErrInvalidAmount
	}
	if _, err := ParseFeeModel(string(model)); err != nil {
		return nil, err
	}
	return &FeeCalculator{rateBps: rateBps, model: model}, nil
}

func (fc *FeeCalculator) Model() FeeModel { return fc.model }
func (fc *FeeCalculator) RateBps() int64  { return fc.rateBps }

// Fee rounds price*rate half-up to the nearest minor unit using integer arithmetic only.
func (fc *FeeCalculator) Fee(price int64) int64 {
	return (price*fc.rateBps + basisPointsScale/2) / basisPointsScale
}

func (fc *FeeCalculator) Calculate(price int64) (Split, error) {
	if price < 0 {
		return Split{}, ErrInvalidAmount
	}
	fee := fc.Fee(price)

	switch fc.model {
	case FeeModelAddOn:
		return Split{Total: price + fee, PlatformFee: fee, CoachPayout: price}, nil
	case FeeModelDeducted:
		return Split{Total: price, PlatformFee: fee, CoachPayout: price - fee}, nil
	default:
		return Split{}, ErrUnknownFeeModel
	}
}
