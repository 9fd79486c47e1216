package analyzers

import (
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/AOBaccarat/models"
)

// bankerIndicator is 1 on a Banker hand and 0 on a Player hand
type bankerIndicator struct {
	hands []models.Outcome
}

func NewBankerIndicator(history []models.Outcome) techan.Indicator {
	hands := make([]models.Outcome, 0, len(history))
	for _, result := range history {
		if result != models.OutcomeTie {
			hands = append(hands, result)
		}
	}
	return bankerIndicator{hands: hands}
}

func (bi bankerIndicator) Calculate(index int) big.Decimal {
	if index < 0 || index >= len(bi.hands) {
		return big.ZERO
	}
	if bi.hands[index] == models.OutcomeBanker {
		return big.ONE
	}
	return big.ZERO
}

// RollingBankerShare is the moving average of the Banker share over the decided (non-Tie) hands.
// The first value covers hands [0, window), so the result has len(hands)-window+1 points.
func RollingBankerShare(history []models.Outcome, window int) []float64 {
	indicator := NewBankerIndicator(history).(bankerIndicator)
	if window <= 0 || len(indicator.hands) < window {
		return nil
	}

	sma := techan.NewSimpleMovingAverage(indicator, window)
	shares := make([]float64, 0, len(indicator.hands)-window+1)
	for i := window - 1; i < len(indicator.hands); i++ {
		shares = append(shares, sma.Calculate(i).Float())
	}
	return shares
}
