package agent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/anyafi/anya/internal/core"
)

// Extraction is heuristic: each field is tried against an ordered pattern
// list and the first matching pattern wins. The order is part of the
// contract — reordering changes observable behavior on ambiguous input.
// Amounts outside the documented range are rejected, never clamped.

const (
	minGoalAmount = 100
	maxAmount     = 100_000_000
)

type goalParams struct {
	Title         string
	TargetAmount  float64
	DeadlineDays  int
	MonthlyBudget *float64
}

type transactionParams struct {
	Amount   float64
	Merchant string
	Category core.Category
}

var goalTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:save|saving|buy|purchase|get)\s+(?:a|an|for|)\s*([a-z0-9\s]+?)(?:\s+for|\s+in|\s+by|$)`),
	regexp.MustCompile(`(?:want to|planning to)\s+(?:buy|get|purchase)\s+(?:a|an|)\s*([a-z0-9\s]+?)(?:\s+for|\s+in|\s+by|$)`),
	regexp.MustCompile(`for\s+(?:a|an|)\s*([a-z0-9\s]+?)(?:\s+for|\s+in|\s+by|$)`),
}

var goalAmountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`₹\s*([0-9,]+(?:\.[0-9]{2})?)`),
	regexp.MustCompile(`rs\.?\s*([0-9,]+(?:\.[0-9]{2})?)`),
	regexp.MustCompile(`rupees?\s*([0-9,]+(?:\.[0-9]{2})?)`),
	regexp.MustCompile(`(?:^|\s)([0-9,]+(?:\.[0-9]{2})?)\s*(?:rupees?|rs|₹|inr)`),
	regexp.MustCompile(`(?:cost|price|worth|amount|target)(?:\s+is|\s+of)?\s*₹?\s*([0-9,]+(?:\.[0-9]{2})?)`),
	regexp.MustCompile(`(?:save|saving|buy|purchase|get|need)\s+(?:₹|rs\.?)?\s*([0-9,]+(?:\.[0-9]{2})?)`),
	regexp.MustCompile(`\b([0-9]{4,}(?:\.[0-9]{2})?)\s+(?:for|to)`),
}

var deadlinePatterns = []struct {
	re   *regexp.Regexp
	days int
}{
	{regexp.MustCompile(`in\s+(\d+)\s+months?`), 30},
	{regexp.MustCompile(`in\s+(\d+)\s+weeks?`), 7},
	{regexp.MustCompile(`in\s+(\d+)\s+days?`), 1},
	{regexp.MustCompile(`(\d+)\s+months?`), 30},
	{regexp.MustCompile(`(\d+)\s+weeks?`), 7},
}

var goalBudgetPatterns = []*regexp.Regexp{
	regexp.MustCompile(`budget\s+(?:of|is)?\s*₹?\s*([0-9,]+)`),
	regexp.MustCompile(`spend\s+₹?\s*([0-9,]+)\s+(?:per|a|each)\s+month`),
	regexp.MustCompile(`monthly\s+budget\s+₹?\s*([0-9,]+)`),
}

var titleStopWords = regexp.MustCompile(`\b(for|in|by|the|a|an)\b`)

// extractGoalParams recovers goal fields from free text. It returns nil only
// when neither a title nor an amount could be found.
func extractGoalParams(text string) *goalParams {
	lower := strings.ToLower(text)
	params := &goalParams{}

	for _, re := range goalTitlePatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		title := strings.TrimSpace(titleStopWords.ReplaceAllString(m[1], ""))
		if len(title) > 2 {
			params.Title = titleCase(title)
			break
		}
	}

	for _, re := range goalAmountPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		if amount, ok := parseAmount(m[1]); ok && amount >= minGoalAmount && amount <= maxAmount {
			params.TargetAmount = amount
			break
		}
	}

	for _, p := range deadlinePatterns {
		m := p.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil {
			params.DeadlineDays = n * p.days
			break
		}
	}

	for _, re := range goalBudgetPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		if budget, ok := parseAmount(m[1]); ok {
			params.MonthlyBudget = &budget
			break
		}
	}

	if params.Title == "" && params.TargetAmount == 0 {
		return nil
	}
	return params
}

var progressPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:i\s+)?(?:already\s+)?(?:have|saved|got)\s+(?:₹|rs\.?)?\s*([0-9,]+(?:\.[0-9]{2})?)`),
	regexp.MustCompile(`(?:₹|rs\.?)\s*([0-9,]+(?:\.[0-9]{2})?)\s+(?:saved|already)`),
	regexp.MustCompile(`\b([0-9,]+(?:\.[0-9]{2})?)\s+(?:rupees?|rs|₹)`),
	regexp.MustCompile(`update.*?(?:₹|rs\.?)?\s*([0-9,]+(?:\.[0-9]{2})?)`),
}

// extractProgressAmount recovers the saved-so-far amount, range [0, 1e8].
func extractProgressAmount(text string) (float64, bool) {
	lower := strings.ToLower(text)
	for _, re := range progressPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		if amount, ok := parseAmount(m[1]); ok && amount >= 0 && amount <= maxAmount {
			return amount, true
		}
	}
	return 0, false
}

var budgetPatterns = []*regexp.Regexp{
	regexp.MustCompile(`budget\s+is\s+(?:₹|rs\.?)?\s*([0-9,]+(?:\.[0-9]{2})?)`),
	regexp.MustCompile(`monthly\s+budget\s+(?:is\s+)?(?:₹|rs\.?)?\s*([0-9,]+(?:\.[0-9]{2})?)`),
	regexp.MustCompile(`set\s+budget\s+(?:to\s+)?(?:₹|rs\.?)?\s*([0-9,]+(?:\.[0-9]{2})?)`),
	regexp.MustCompile(`month\s+budget\s+(?:is\s+)?(?:₹|rs\.?)?\s*([0-9,]+(?:\.[0-9]{2})?)`),
}

// extractBudgetAmount recovers a monthly budget amount, range [0, 1e8].
func extractBudgetAmount(text string) (float64, bool) {
	lower := strings.ToLower(text)
	for _, re := range budgetPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		if amount, ok := parseAmount(m[1]); ok && amount >= 0 && amount <= maxAmount {
			return amount, true
		}
	}
	return 0, false
}

var txAmountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:spent|paid|cost|bought.*?for)\s+(?:₹|rs\.?)?\s*([0-9,]+(?:\.[0-9]{2})?)`),
	regexp.MustCompile(`(?:₹|rs\.?)\s*([0-9,]+(?:\.[0-9]{2})?)`),
	regexp.MustCompile(`\b([0-9,]+(?:\.[0-9]{2})?)\s+(?:rupees?|rs|₹)`),
}

var (
	txMerchantPattern = regexp.MustCompile(`(?:at|from|to)\s+([a-z0-9\s']+?)(?:\s+for|\s+on|\s*$)`)
	txItemPattern     = regexp.MustCompile(`(?:bought|purchase|for)\s+([a-z0-9\s']+?)(?:\s+for|\s+at|\s+cost|\s*$)`)
)

var categoryKeywords = []struct {
	category core.Category
	words    []string
}{
	{core.CategoryFood, []string{"food", "restaurant", "cafe", "dinner", "lunch", "breakfast", "burger", "pizza", "coffee", "starbucks"}},
	{core.CategoryTransport, []string{"uber", "ola", "taxi", "bus", "train", "flight", "fuel", "petrol"}},
	{core.CategoryGroceries, []string{"grocery", "vegetables", "fruits", "milk", "supermarket"}},
	{core.CategoryEntertainment, []string{"movie", "netflix", "game", "concert", "party"}},
	{core.CategoryBills, []string{"bill", "electricity", "water", "rent", "internet", "wifi"}},
	{core.CategoryShopping, []string{"clothes", "shoes", "dress", "shopping", "amazon", "flipkart"}},
}

// extractTransaction recovers amount, merchant and category from a spending
// message. The amount is mandatory: without one the extraction fails.
// Amount range is (0, 1e8].
func extractTransaction(text string) *transactionParams {
	lower := strings.ToLower(text)
	params := &transactionParams{}

	for _, re := range txAmountPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		if amount, ok := parseAmount(m[1]); ok && amount > 0 && amount <= maxAmount {
			params.Amount = amount
			break
		}
	}
	if params.Amount == 0 {
		return nil
	}

	if m := txMerchantPattern.FindStringSubmatch(lower); m != nil {
		params.Merchant = titleCase(strings.TrimSpace(m[1]))
	} else if m := txItemPattern.FindStringSubmatch(lower); m != nil {
		params.Merchant = titleCase(strings.TrimSpace(m[1]))
	} else {
		params.Merchant = "Unknown Merchant"
	}

	params.Category = categorize(lower, strings.ToLower(params.Merchant))
	return params
}

// categorize checks keyword sets in a fixed priority order against both the
// message and the derived merchant string.
func categorize(message, merchant string) core.Category {
	for _, ck := range categoryKeywords {
		for _, w := range ck.words {
			if strings.Contains(message, w) || strings.Contains(merchant, w) {
				return ck.category
			}
		}
	}
	return core.CategoryOther
}

func parseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
