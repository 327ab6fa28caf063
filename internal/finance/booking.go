package finance

// PaymentEpsilon absorbs rounding noise when comparing paid amounts against a
// booking total.
const PaymentEpsilon = 0.01

type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Financials are the derived monetary fields of a booking, all in the base
// currency.
type Financials struct {
	Amount float64
	Cost   float64
	Profit float64
}

// Compute derives a booking's financials from its sell amount (expressed in
// sellCurrency), its service cost lines and a rate snapshot. Profit is never
// clamped: selling below cost yields a negative profit.
func Compute(sellAmount float64, sellCurrency string, lines []CostLine, rates Rates) (Financials, error) {
	amount, err := rates.ToBase(sellAmount, sellCurrency)
	if err != nil {
		return Financials{}, err
	}

	cost := TotalCost(lines, rates)

	return Financials{
		Amount: amount,
		Cost:   cost,
		Profit: amount - cost,
	}, nil
}

// PaymentStatusFor re-derives the three-way payment status from the booking
// total and the cumulative paid amount, both in base currency. The status is
// not monotonic: raising the total can move a paid booking back to partial.
func PaymentStatusFor(amount, paid float64) PaymentStatus {
	switch {
	case paid >= amount-PaymentEpsilon && paid > 0:
		return PaymentStatusPaid
	case paid > 0:
		return PaymentStatusPartial
	default:
		return PaymentStatusUnpaid
	}
}
