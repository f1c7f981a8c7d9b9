package valueobject

import "github.com/shopspring/decimal"

// RevenueBand is an ordered bucket of a company's annual revenue.
type RevenueBand string

const (
	BandUnder1M   RevenueBand = "< $1M"
	Band1MTo10M   RevenueBand = "$1M - $10M"
	Band10MTo100M RevenueBand = "$10M - $100M"
	Band100MTo1B  RevenueBand = "$100M - $1B"
	BandOver1B    RevenueBand = "> $1B"
)

// DefaultBand is preselected when neither the request nor the company revenue supplies one.
const DefaultBand = Band10MTo100M

var allRevenueBands = [...]RevenueBand{
	BandUnder1M,
	Band1MTo10M,
	Band10MTo100M,
	Band100MTo1B,
	BandOver1B,
}

var (
	oneMillion     = decimal.NewFromInt(1_000_000)
	tenMillion     = decimal.NewFromInt(10_000_000)
	hundredMillion = decimal.NewFromInt(100_000_000)
	oneBillion     = decimal.NewFromInt(1_000_000_000)
)

// AllRevenueBands returns the bands in ascending revenue order.
func AllRevenueBands() []RevenueBand {
	out := make([]RevenueBand, len(allRevenueBands))
	copy(out, allRevenueBands[:])
	return out
}

// Known reports whether b is one of the defined bands.
func (b RevenueBand) Known() bool {
	for _, k := range allRevenueBands {
		if b == k {
			return true
		}
	}
	return false
}

func (b RevenueBand) String() string {
	return string(b)
}

// RevenueBandFor classifies an annual revenue amount. Lower bounds are inclusive.
func RevenueBandFor(revenue decimal.Decimal) RevenueBand {
	switch {
	case revenue.LessThan(oneMillion):
		return BandUnder1M
	case revenue.LessThan(tenMillion):
		return Band1MTo10M
	case revenue.LessThan(hundredMillion):
		return Band10MTo100M
	case revenue.LessThan(oneBillion):
		return Band100MTo1B
	default:
		return BandOver1B
	}
}
