package recommend

import (
	"strings"

	"moneyharbor/internal/textutil"
)

type category string

const (
	categoryIndexFunds     category = "index-funds"
	categoryBonds          category = "bonds"
	categoryRealEstate     category = "real-estate"
	categoryLending        category = "lending"
	categoryCrypto         category = "crypto"
	categoryDividendStocks category = "dividend-stocks"
	categorySavings        category = "savings"
	categoryOther          category = "other"
)

type categoryRule struct {
	category category
	keywords []string
}

// Evaluated in order; the first rule with a matching keyword wins.
// Hebrew abbreviations are written with an ASCII double quote since
// textutil.Fold maps gershayim to it.
var categoryRules = []categoryRule{
	{categoryIndexFunds, []string{"s&p", "nasdaq", "index", "global", "מדד", "גלובלי"}},
	{categoryBonds, []string{"bond", "treasury bill", "אג\"ח", "מק\"מ"}},
	{categoryRealEstate, []string{"real estate", "reit", "נדל\"ן"}},
	{categoryLending, []string{"p2p", "peer", "loan", "lending", "הלוואות"}},
	{categoryCrypto, []string{"bitcoin", "crypto", "ethereum", "ביטקוין", "קריפטו"}},
	{categoryDividendStocks, []string{"dividend", "דיבידנד"}},
	{categorySavings, []string{"savings", "deposit", "חיסכון", "פיקדון"}},
}

func classify(name string) category {
	normalized := textutil.Fold(name)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(normalized, kw) {
				return rule.category
			}
		}
	}
	return categoryOther
}
