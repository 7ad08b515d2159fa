package fava

import (
	"testing"
)

func TestPricePoint_Identity(t *testing.T) {
	// The identity conversion holds for every currency, with or without
	// observations, and carries no date.
	m := NewPriceMap([]Observation{obs("2021-01-01", "USD", "EUR", 0.85)})

	for _, cur := range []string{"USD", "EUR", "XXX"} {
		pair := Pair{Base: cur, Quote: cur}

		pt, ok := m.PricePoint(pair)
		if !ok || !pt.Rate.Equal(One()) || !pt.Date.IsZero() {
			t.Errorf("PricePoint(%v) = (%v, %v, %v), want rate 1 with no date", pair, pt.Date, pt.Rate, ok)
		}

		pt, ok = m.PricePointAsOf(pair, MustParse("1970-01-01"))
		if !ok || !pt.Rate.Equal(One()) || !pt.Date.IsZero() {
			t.Errorf("PricePointAsOf(%v) = (%v, %v, %v), want rate 1 with no date", pair, pt.Date, pt.Rate, ok)
		}
	}
}

func TestPricePointAsOf_MonotonicDates(t *testing.T) {
	m := NewPriceMap([]Observation{
		obs("2021-01-01", "USD", "EUR", 0.85),
		obs("2021-02-01", "USD", "EUR", 0.90),
		obs("2021-03-01", "USD", "EUR", 0.95),
	})

	testCases := []struct {
		name       string
		on         string
		expectDate string
		expectRate Rate
		expectOk   bool
	}{
		{"before first observation", "2020-12-31", "", Rate{}, false},
		{"exactly on first", "2021-01-01", "2021-01-01", R(0.85), true},
		{"between first and second", "2021-01-15", "2021-01-01", R(0.85), true},
		{"exactly on second", "2021-02-01", "2021-02-01", R(0.90), true},
		{"between second and third", "2021-02-15", "2021-02-01", R(0.90), true},
		{"after last", "2021-12-31", "2021-03-01", R(0.95), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pt, ok := m.PricePointAsOf(USDEUR, MustParse(tc.on))
			if ok != tc.expectOk {
				t.Fatalf("PricePointAsOf(USDEUR, %s) ok = %v, want %v", tc.on, ok, tc.expectOk)
			}
			if !tc.expectOk {
				return
			}
			if pt.Date != MustParse(tc.expectDate) || !pt.Rate.Equal(tc.expectRate) {
				t.Errorf("PricePointAsOf(USDEUR, %s) = (%v, %v), want (%s, %v)", tc.on, pt.Date, pt.Rate, tc.expectDate, tc.expectRate)
			}
		})
	}

	t.Run("no date returns the most recent point", func(t *testing.T) {
		pt, ok := m.PricePoint(USDEUR)
		if !ok || pt.Date != MustParse("2021-03-01") || !pt.Rate.Equal(R(0.95)) {
			t.Errorf("PricePoint(USDEUR) = (%v, %v, %v), want (2021-03-01, 0.95)", pt.Date, pt.Rate, ok)
		}
	})
}

func TestNewPriceMap_SameDayCollapse(t *testing.T) {
	m := NewPriceMap([]Observation{
		obs("2021-01-01", "USD", "EUR", 0.85),
		obs("2021-01-01", "USD", "EUR", 0.87),
	})

	points, ok := m.AllPrices(USDEUR)
	if !ok || len(points) != 1 {
		t.Fatalf("AllPrices(USDEUR) = (%v, %v), want exactly one point", points, ok)
	}
	// The later-ingested observation wins.
	if !points[0].Rate.Equal(R(0.87)) {
		t.Errorf("collapsed point rate = %v, want 0.87", points[0].Rate)
	}

	// And so does its synthetic inverse.
	inv, ok := m.AllPrices(EURUSD)
	if !ok || len(inv) != 1 || !inv[0].Rate.Equal(R(0.87).Inverse()) {
		t.Errorf("AllPrices(EURUSD) = (%v, %v), want exactly 1/0.87", inv, ok)
	}
}

func TestPricePoint_InverseConsistency(t *testing.T) {
	t.Run("synthetic inverse", func(t *testing.T) {
		m := NewPriceMap([]Observation{obs("2021-01-01", "USD", "EUR", 0.85)})

		pt, ok := m.PricePoint(EURUSD)
		if !ok || pt.Date != MustParse("2021-01-01") || !pt.Rate.Equal(R(0.85).Inverse()) {
			t.Errorf("PricePoint(EURUSD) = (%v, %v, %v), want (2021-01-01, 1/0.85)", pt.Date, pt.Rate, ok)
		}
	})

	t.Run("direct observation overrides the synthetic inverse", func(t *testing.T) {
		m := NewPriceMap([]Observation{
			obs("2021-01-01", "USD", "EUR", 0.85),
			obs("2021-01-01", "EUR", "USD", 1.20),
		})

		pt, ok := m.PricePoint(EURUSD)
		if !ok || !pt.Rate.Equal(R(1.20)) {
			t.Errorf("PricePoint(EURUSD) = (%v, %v, %v), want the direct 1.20", pt.Date, pt.Rate, ok)
		}
	})

	t.Run("zero rate produces no inverse", func(t *testing.T) {
		m := NewPriceMap([]Observation{obs("2021-01-01", "USD", "EUR", 0)})

		if _, ok := m.AllPrices(EURUSD); ok {
			t.Error("AllPrices(EURUSD) found a series, want none for a zero rate")
		}
		if _, ok := m.PricePoint(EURUSD); ok {
			t.Error("PricePoint(EURUSD) resolved, want no data for a zero rate")
		}
	})
}

func TestPricePoint_Triangulation(t *testing.T) {
	// No direct USD->GBP series: only USD->CHF and CHF->GBP legs exist.
	m := NewPriceMap([]Observation{
		obs("2021-01-01", "USD", "CHF", 0.92),
		obs("2021-01-10", "CHF", "GBP", 0.80),
		obs("2021-02-01", "USD", "CHF", 0.94),
	})

	t.Run("no date pivots on the staler leg", func(t *testing.T) {
		// leg1 (USD->CHF) latest is 2021-02-01, leg2 (CHF->GBP) latest is
		// 2021-01-10: the pivot is the earlier 2021-01-10, where leg1 is
		// still at 0.92.
		pt, ok := m.PricePoint(USDGBP)
		if !ok {
			t.Fatal("PricePoint(USDGBP) not resolved")
		}
		want := R(0.92).Mul(R(0.80))
		if pt.Date != MustParse("2021-01-10") || !pt.Rate.Equal(want) {
			t.Errorf("PricePoint(USDGBP) = (%v, %v), want (2021-01-10, %v)", pt.Date, pt.Rate, want)
		}
	})

	t.Run("date given pivots through the first leg", func(t *testing.T) {
		pt, ok := m.PricePointAsOf(USDGBP, MustParse("2021-03-01"))
		if !ok {
			t.Fatal("PricePointAsOf(USDGBP) not resolved")
		}
		// leg1 as of 2021-03-01 is the 2021-02-01 point (0.94); leg2 is then
		// evaluated as of that pivot date, not the requested one.
		want := R(0.94).Mul(R(0.80))
		if pt.Date != MustParse("2021-02-01") || !pt.Rate.Equal(want) {
			t.Errorf("PricePointAsOf(USDGBP) = (%v, %v), want (2021-02-01, %v)", pt.Date, pt.Rate, want)
		}
	})

	t.Run("date before both legs is no data", func(t *testing.T) {
		if _, ok := m.PricePointAsOf(USDGBP, MustParse("2020-12-01")); ok {
			t.Error("PricePointAsOf(USDGBP, 2020-12-01) resolved, want no data")
		}
	})

	t.Run("triangulation never materializes a series", func(t *testing.T) {
		if _, ok := m.AllPrices(USDGBP); ok {
			t.Error("AllPrices(USDGBP) found a series, want none")
		}
	})

	t.Run("no intermediate means no data", func(t *testing.T) {
		if _, ok := m.PricePoint(Pair{Base: "USD", Quote: "JPY"}); ok {
			t.Error("PricePoint(USDJPY) resolved, want no data")
		}
	})
}

func TestPricePoint_TriangulationIsSingleHop(t *testing.T) {
	// USD->CHF and SEK->GBP exist, but the only path USD->CHF->SEK->GBP is
	// two hops and must not be found.
	m := NewPriceMap([]Observation{
		obs("2021-01-01", "USD", "CHF", 0.92),
		obs("2021-01-01", "CHF", "SEK", 11.0),
		obs("2021-01-01", "SEK", "GBP", 0.07),
	})

	// CHF bridges USD->SEK in one hop.
	if _, ok := m.PricePoint(Pair{Base: "USD", Quote: "SEK"}); !ok {
		t.Error("PricePoint(USDSEK) not resolved, want one-hop triangulation through CHF")
	}
	// Nothing bridges USD->GBP in one hop: USD->SEK is itself synthetic only.
	if _, ok := m.PricePoint(USDGBP); ok {
		t.Error("PricePoint(USDGBP) resolved, want no data for a two-hop chain")
	}
}

func TestCommodityPairs(t *testing.T) {
	t.Run("majority direction is forward", func(t *testing.T) {
		m := NewPriceMap([]Observation{
			obs("2021-01-01", "USD", "EUR", 0.85),
			obs("2021-01-02", "USD", "EUR", 0.86),
			obs("2021-01-03", "EUR", "USD", 1.18),
		})

		pairs := m.CommodityPairs(nil)
		if len(pairs) != 1 || pairs[0] != USDEUR {
			t.Errorf("CommodityPairs(nil) = %v, want [USDEUR]", pairs)
		}
	})

	t.Run("exact tie keeps the first-seen direction", func(t *testing.T) {
		m := NewPriceMap([]Observation{
			obs("2021-01-01", "EUR", "USD", 1.18),
			obs("2021-01-02", "USD", "EUR", 0.85),
		})

		pairs := m.CommodityPairs(nil)
		if len(pairs) != 1 || pairs[0] != EURUSD {
			t.Errorf("CommodityPairs(nil) = %v, want [EURUSD]", pairs)
		}
	})

	t.Run("operating currency pairs are listed both ways", func(t *testing.T) {
		m := NewPriceMap([]Observation{
			obs("2021-01-01", "USD", "EUR", 0.85),
			obs("2021-01-01", "USD", "CHF", 0.92),
		})

		pairs := m.CommodityPairs([]string{"USD", "EUR"})
		want := []Pair{EURUSD, USDCHF, USDEUR}
		if len(pairs) != len(want) {
			t.Fatalf("CommodityPairs(USD,EUR) = %v, want %v", pairs, want)
		}
		for i := range want {
			if pairs[i] != want[i] {
				t.Errorf("CommodityPairs(USD,EUR)[%d] = %v, want %v (sorted by base then quote)", i, pairs[i], want[i])
			}
		}

		pairs = m.CommodityPairs(nil)
		want = []Pair{USDCHF, USDEUR}
		if len(pairs) != len(want) || pairs[0] != want[0] || pairs[1] != want[1] {
			t.Errorf("CommodityPairs(nil) = %v, want %v", pairs, want)
		}
	})
}

func TestPriceMap_EndToEnd(t *testing.T) {
	m := NewPriceMap([]Observation{
		obs("2021-01-01", "USD", "EUR", 0.85),
		obs("2021-02-01", "USD", "EUR", 0.90),
	})

	pt, ok := m.PricePointAsOf(USDEUR, MustParse("2021-01-15"))
	if !ok || pt.Date != MustParse("2021-01-01") || !pt.Rate.Equal(R(0.85)) {
		t.Errorf("PricePointAsOf(USDEUR, 2021-01-15) = (%v, %v, %v), want (2021-01-01, 0.85)", pt.Date, pt.Rate, ok)
	}

	pt, ok = m.PricePoint(EURUSD)
	if !ok || pt.Date != MustParse("2021-02-01") || !pt.Rate.Equal(R(0.90).Inverse()) {
		t.Errorf("PricePoint(EURUSD) = (%v, %v, %v), want (2021-02-01, 1/0.90)", pt.Date, pt.Rate, ok)
	}

	rate, ok := m.Price(USDEUR)
	if !ok || !rate.Equal(R(0.90)) {
		t.Errorf("Price(USDEUR) = (%v, %v), want 0.90", rate, ok)
	}
	rate, ok = m.PriceAsOf(USDEUR, MustParse("2021-01-15"))
	if !ok || !rate.Equal(R(0.85)) {
		t.Errorf("PriceAsOf(USDEUR, 2021-01-15) = (%v, %v), want 0.85", rate, ok)
	}
}

func TestPriceMap_Currencies(t *testing.T) {
	m := NewPriceMap([]Observation{
		obs("2021-01-01", "USD", "EUR", 0.85),
		obs("2021-01-02", "CHF", "EUR", 1.02),
	})

	got := m.Currencies()
	want := []string{"USD", "EUR", "CHF"}
	if len(got) != len(want) {
		t.Fatalf("Currencies() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Currencies()[%d] = %q, want %q (first-seen order)", i, got[i], want[i])
		}
	}
}
