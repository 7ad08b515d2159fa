package agent

import (
	"context"
	"fmt"

	"github.com/c-vigo/fava"
	"github.com/c-vigo/fava/docs"
	"github.com/c-vigo/fava/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// NewAnalyst returns the price analyst expert: a chat wired with function
// tools to query the given price index.
func NewAnalyst(m *fava.PriceMap, operatingCurrencies []string) *Expert {
	lib := []Function{priceFunc(m), pairsFunc(m, operatingCurrencies), seriesFunc(m)}

	return &Expert{
		Name: "Analyst",
		Description: `This is the price Analyst. He is in charge of reading the user's
		exchange-rate observations. He can resolve the rate between any two currencies
		on any day, list the known currency pairs, and dump full price histories.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's exchange-rate observations.
				You know how to use the Tools to resolve prices between currencies,
				including rates that are only known through an intermediate currency.
				Pardon the user's approximative language and figure out which
				currencies and dates they meant. Always state the date a rate was
				resolved at, it may be older than the day the user asked about.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// parsePair reads the 'base' and 'quote' string arguments.
func parsePair(args map[string]any) (fava.Pair, error) {
	base, ok := args["base"].(string)
	if !ok {
		return fava.Pair{}, fmt.Errorf("argument 'base' is not a string as expected but %T", args["base"])
	}
	quote, ok := args["quote"].(string)
	if !ok {
		return fava.Pair{}, fmt.Errorf("argument 'quote' is not a string as expected but %T", args["quote"])
	}
	return fava.NewPair(base, quote)
}

// parseDate reads the optional 'date' string argument.
func parseDate(args map[string]any) (on fava.Date, hasDate bool, err error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return fava.Date{}, false, nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return fava.Date{}, false, fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}
	on, err = fava.ParseDate(sdate)
	if err != nil {
		return fava.Date{}, false, fmt.Errorf("argument 'date' must be a valid date got %q: %w", sdate, err)
	}
	return on, true, nil
}

func priceFunc(m *fava.PriceMap) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Price",
			Description: `Price resolves the most recent known exchange rate between two
			currencies on or before a day, triangulating through a third currency when
			the pair was never directly observed.

			` + must(docs.GetTopic("triangulation")),
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"base": {
						Type:        genai.TypeString,
						Description: "The 3-letter code of the currency being priced.",
					},
					"quote": {
						Type:        genai.TypeString,
						Description: "The 3-letter code of the currency the price is expressed in.",
					},
					"date": {
						Type:        genai.TypeString,
						Description: "The day to resolve the rate at, format YYYY-MM-DD. The latest known rate is the default.",
					},
				},
				Required: []string{"base", "quote"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The resolved rate and the day it was observed on.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			pair, err := parsePair(args)
			if err != nil {
				return errResponse(id, "Price", err)
			}
			on, hasDate, err := parseDate(args)
			if err != nil {
				return errResponse(id, "Price", err)
			}

			var pt fava.PricePoint
			var ok bool
			if hasDate {
				pt, ok = m.PricePointAsOf(pair, on)
			} else {
				pt, ok = m.PricePoint(pair)
			}
			if !ok {
				return okResponse(id, "Price", fmt.Sprintf("no rate is known for %s/%s", pair.Base, pair.Quote))
			}
			when := "by definition, on any day"
			if !pt.Date.IsZero() {
				when = "as of " + pt.Date.String()
			}
			return okResponse(id, "Price", fmt.Sprintf("1 %s = %s %s (%s)", pair.Base, pt.Rate, pair.Quote, when))
		},
	}
}

func pairsFunc(m *fava.PriceMap, operatingCurrencies []string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "CommodityPairs",
			Description: `CommodityPairs lists every known currency pair in its canonical
			direction, with its latest known rate. Pairs of operating currencies are
			listed in both directions.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of currency pairs with their latest rates.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return okResponse(id, "CommodityPairs", renderer.RenderPairs(renderer.NewPairs(m, operatingCurrencies)))
		},
	}
}

func seriesFunc(m *fava.PriceMap) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Series",
			Description: `Series dumps the full chronological price history stored for a
			directed currency pair. It only lists observed data and never triangulates.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"base": {
						Type:        genai.TypeString,
						Description: "The 3-letter code of the currency being priced.",
					},
					"quote": {
						Type:        genai.TypeString,
						Description: "The 3-letter code of the currency the price is expressed in.",
					},
				},
				Required: []string{"base", "quote"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of all dated rates for the pair.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			pair, err := parsePair(args)
			if err != nil {
				return errResponse(id, "Series", err)
			}
			s, ok := renderer.NewSeries(m, pair)
			if !ok {
				return okResponse(id, "Series", fmt.Sprintf("no series is stored for %s/%s", pair.Base, pair.Quote))
			}
			return okResponse(id, "Series", renderer.RenderSeries(s))
		},
	}
}
