package fava

import "slices"

// PricePoint is one dated rate for a directed pair: on Date, one unit of the
// pair's base was worth Rate units of its quote.
//
// A zero Date is possible on identity lookups (base == quote), where the rate
// is 1 by definition rather than by observation.
type PricePoint struct {
	Date Date
	Rate Rate
}

// PriceMap is a time-indexed, multi-currency price resolution index.
//
// It is built once from a chronologically ordered set of rate observations
// and is immutable afterwards: all query methods are pure reads and safe for
// concurrent use. A reload builds a whole new PriceMap and swaps the
// reference, there is no incremental mutation.
//
// For every observed direction it keeps a date-ascending series with at most
// one point per calendar day, and the inverse direction is maintained in
// tandem from the synthetic 1/rate points (zero rates yield no inverse).
// Only genuinely observed directions count towards the canonical "forward"
// direction of each currency pair.
type PriceMap struct {
	series    map[Pair][]PricePoint
	counts    map[Pair]int
	firstSeen map[Pair]Pair // unordered pair -> direction observed first

	// currencies in first-seen order; bounds the one-hop fallback search and
	// makes its intermediate selection deterministic.
	currencies []string
	known      map[string]bool

	forward []Pair
}

// NewPriceMap builds the index from observations ordered by date (ties broken
// by input order). Within a day, the last observation for a direction wins.
func NewPriceMap(observations []Observation) *PriceMap {
	m := &PriceMap{
		series:    make(map[Pair][]PricePoint),
		counts:    make(map[Pair]int),
		firstSeen: make(map[Pair]Pair),
		known:     make(map[string]bool),
	}

	for _, o := range observations {
		m.addCurrency(o.Base)
		m.addCurrency(o.Quote)

		pair := o.Pair()
		m.series[pair] = append(m.series[pair], PricePoint{Date: o.Date, Rate: o.Rate})
		m.counts[pair]++
		if u := pair.unordered(); m.firstSeen[u] == (Pair{}) {
			m.firstSeen[u] = pair
		}
		// Maintain the reverse series in tandem. The synthetic inverse is not
		// counted: only observed directions weigh on the forward selection.
		if !o.Rate.IsZero() {
			rev := pair.reversed()
			m.series[rev] = append(m.series[rev], PricePoint{Date: o.Date, Rate: o.Rate.Inverse()})
		}
	}

	for pair, points := range m.series {
		m.series[pair] = keepLastPerDay(points)
	}

	// A direction is forward when observed strictly more often than its
	// reverse; on an exact tie the direction observed first wins.
	for pair, count := range m.counts {
		rev := m.counts[pair.reversed()]
		if rev < count || (rev == count && m.firstSeen[pair.unordered()] == pair) {
			m.forward = append(m.forward, pair)
		}
	}
	slices.SortFunc(m.forward, comparePairs)

	return m
}

func (m *PriceMap) addCurrency(code string) {
	if !m.known[code] {
		m.known[code] = true
		m.currencies = append(m.currencies, code)
	}
}

// keepLastPerDay collapses consecutive same-day points, keeping the last one.
// The input is already date-ascending, so a single forward pass suffices.
func keepLastPerDay(points []PricePoint) []PricePoint {
	kept := points[:0]
	for _, pt := range points {
		if n := len(kept); n > 0 && !pt.Date.After(kept[n-1].Date) {
			kept[n-1] = pt
			continue
		}
		kept = append(kept, pt)
	}
	return kept
}

func comparePairs(a, b Pair) int {
	if a.Base != b.Base {
		if a.Base < b.Base {
			return -1
		}
		return 1
	}
	if a.Quote != b.Quote {
		if a.Quote < b.Quote {
			return -1
		}
		return 1
	}
	return 0
}

// searchAsOf returns the latest point dated on or before 'on'.
// The series is sorted, so we can use a keyed binary search.
func searchAsOf(points []PricePoint, on Date) (PricePoint, bool) {
	i, found := slices.BinarySearchFunc(points, on, func(pt PricePoint, on Date) int {
		if pt.Date.Before(on) {
			return -1
		}
		if pt.Date.After(on) {
			return 1
		}
		return 0
	})
	if found {
		return points[i], true
	}
	if i == 0 {
		// Every point postdates 'on': never extrapolate backwards.
		return PricePoint{}, false
	}
	return points[i-1], true
}

// Currencies returns every currency appearing in any observation, in
// first-seen order.
func (m *PriceMap) Currencies() []string { return slices.Clone(m.currencies) }

// PricePoint returns the most recent point known for the pair.
//
// A pair with base equal to quote resolves to rate 1 and a zero Date. When no
// direct series exists, the rate is triangulated through a third currency,
// see [PriceMap.PricePointAsOf]. The second return value is false when the
// pair cannot be resolved at all.
func (m *PriceMap) PricePoint(pair Pair) (PricePoint, bool) {
	if pair.Base == pair.Quote {
		return PricePoint{Rate: One()}, true
	}
	if points, ok := m.series[pair]; ok {
		return points[len(points)-1], true
	}
	return m.triangulateLatest(pair)
}

// PricePointAsOf returns the latest point known for the pair dated on or
// before 'on'.
//
// A pair with base equal to quote resolves to rate 1 and a zero Date. When no
// direct series exists at all, a one-hop triangulation through the first
// suitable third currency is attempted: the composite rate is the product of
// the two legs and the returned date is the pivot date both legs were
// evaluated at. The second return value is false when the pair cannot be
// resolved.
func (m *PriceMap) PricePointAsOf(pair Pair, on Date) (PricePoint, bool) {
	if pair.Base == pair.Quote {
		return PricePoint{Rate: One()}, true
	}
	if points, ok := m.series[pair]; ok {
		return searchAsOf(points, on)
	}
	return m.triangulateAsOf(pair, on)
}

// Price returns the most recent rate known for the pair.
func (m *PriceMap) Price(pair Pair) (Rate, bool) {
	pt, ok := m.PricePoint(pair)
	return pt.Rate, ok
}

// PriceAsOf returns the latest rate known for the pair on or before 'on'.
func (m *PriceMap) PriceAsOf(pair Pair, on Date) (Rate, bool) {
	pt, ok := m.PricePointAsOf(pair, on)
	return pt.Rate, ok
}

// AllPrices returns the full chronological series stored for the pair, or
// false if none exists. Unlike point lookups it never triangulates: this is
// the raw accessor for charting and listing.
func (m *PriceMap) AllPrices(pair Pair) ([]PricePoint, bool) {
	points, ok := m.series[pair]
	if !ok {
		return nil, false
	}
	return slices.Clone(points), true
}

// triangulate finds the first currency, in universe order, that has a direct
// series from pair.Base and one to pair.Quote. Only that single intermediate
// is ever tried: this is a best-effort one-hop search, not a shortest-path
// search, and multi-hop chains are unsupported.
func (m *PriceMap) triangulate(pair Pair) (leg1, leg2 []PricePoint, ok bool) {
	for _, c := range m.currencies {
		if c == pair.Base || c == pair.Quote {
			continue
		}
		leg1, ok1 := m.series[Pair{Base: pair.Base, Quote: c}]
		leg2, ok2 := m.series[Pair{Base: c, Quote: pair.Quote}]
		if ok1 && ok2 {
			return leg1, leg2, true
		}
	}
	return nil, nil, false
}

func (m *PriceMap) triangulateLatest(pair Pair) (PricePoint, bool) {
	leg1, leg2, ok := m.triangulate(pair)
	if !ok {
		return PricePoint{}, false
	}
	last1, last2 := leg1[len(leg1)-1], leg2[len(leg2)-1]
	// Pivot on the staler leg's latest date: the composite must never claim
	// to be more recent than its least-current input.
	if last1.Date.Before(last2.Date) {
		pt2, ok := searchAsOf(leg2, last1.Date)
		if !ok {
			return PricePoint{}, false
		}
		return PricePoint{Date: last1.Date, Rate: last1.Rate.Mul(pt2.Rate)}, true
	}
	pt1, ok := searchAsOf(leg1, last2.Date)
	if !ok {
		return PricePoint{}, false
	}
	return PricePoint{Date: last2.Date, Rate: pt1.Rate.Mul(last2.Rate)}, true
}

func (m *PriceMap) triangulateAsOf(pair Pair, on Date) (PricePoint, bool) {
	leg1, leg2, ok := m.triangulate(pair)
	if !ok {
		return PricePoint{}, false
	}
	pt1, ok := searchAsOf(leg1, on)
	if !ok {
		return PricePoint{}, false
	}
	// Pivot on the date actually found on the first leg, not the requested one.
	pt2, ok := searchAsOf(leg2, pt1.Date)
	if !ok {
		return PricePoint{}, false
	}
	return PricePoint{Date: pt1.Date, Rate: pt1.Rate.Mul(pt2.Rate)}, true
}

// CommodityPairs lists the forward direction of every observed currency pair,
// sorted by (base, quote). Pairs of operating currencies are listed in both
// directions, not just in the one most commonly observed.
func (m *PriceMap) CommodityPairs(operatingCurrencies []string) []Pair {
	operating := make(map[string]bool, len(operatingCurrencies))
	for _, c := range operatingCurrencies {
		operating[c] = true
	}
	pairs := slices.Clone(m.forward)
	for _, p := range m.forward {
		if operating[p.Base] && operating[p.Quote] {
			pairs = append(pairs, p.reversed())
		}
	}
	slices.SortFunc(pairs, comparePairs)
	return pairs
}
