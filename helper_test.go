package fava

var (
	USDEUR = Pair{Base: "USD", Quote: "EUR"}
	EURUSD = Pair{Base: "EUR", Quote: "USD"}
	USDCHF = Pair{Base: "USD", Quote: "CHF"}
	CHFGBP = Pair{Base: "CHF", Quote: "GBP"}
	USDGBP = Pair{Base: "USD", Quote: "GBP"}
)

// obs is a helper for tests to create an observation from consts.
func obs(date, base, quote string, rate float64) Observation {
	return Observation{Date: MustParse(date), Base: base, Quote: quote, Rate: R(rate)}
}
