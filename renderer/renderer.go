// Package renderer renders price query results to markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/c-vigo/fava"
)

//go:embed *.md
var templates embed.FS

// PairRow is one line of the commodity pairs table.
type PairRow struct {
	Base  string
	Quote string
	Date  string
	Rate  string
}

// Pairs holds the data to render the commodity pairs table.
type Pairs struct {
	Operating []string
	Rows      []PairRow
}

// NewPairs queries the price map for the pairs listing: every forward pair
// (both ways for operating currency pairs) with its latest known point.
func NewPairs(m *fava.PriceMap, operatingCurrencies []string) *Pairs {
	p := &Pairs{Operating: operatingCurrencies}
	for _, pair := range m.CommodityPairs(operatingCurrencies) {
		row := PairRow{Base: pair.Base, Quote: pair.Quote, Date: "-", Rate: "-"}
		if pt, ok := m.PricePoint(pair); ok {
			row.Date, row.Rate = pt.Date.String(), pt.Rate.String()
		}
		p.Rows = append(p.Rows, row)
	}
	return p
}

// RenderPairs renders the commodity pairs table to a markdown string.
func RenderPairs(p *Pairs) string {
	return renderTemplate("pairs", "pairs.md", nil, p)
}

// Series holds the data to render the full price series of one pair.
type Series struct {
	Base   string
	Quote  string
	Points []fava.PricePoint
}

// NewSeries queries the raw stored series for the pair. The second return is
// false when no direct series exists (the listing never triangulates).
func NewSeries(m *fava.PriceMap, pair fava.Pair) (*Series, bool) {
	points, ok := m.AllPrices(pair)
	if !ok {
		return nil, false
	}
	return &Series{Base: pair.Base, Quote: pair.Quote, Points: points}, true
}

// RenderSeries renders the price series table to a markdown string.
func RenderSeries(s *Series) string {
	return renderTemplate("series", "series.md", nil, s)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, readErr := fs.ReadFile(templates, file)
		if readErr != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
