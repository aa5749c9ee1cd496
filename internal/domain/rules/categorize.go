package rules

import (
	"strings"

	domain "github.com/scamradar/scamradar/internal/domain/scans"
)

// categoryRule binds a category to its trigger keywords. Rules are checked
// in slice order and the first hit wins, so the priority below is part of
// the contract: money > job > shopping > crypto > kyc > lottery. A text
// that mentions both earnings and a lottery lands in money, not lottery.
var categoryRules = []struct {
	category domain.Category
	keywords []string
}{
	{domain.CategoryMoney, []string{"earn", "income", "profit", "money", "cash", "work from home"}},
	{domain.CategoryJob, []string{"job", "hiring", "interview", "vacancy", "salary"}},
	{domain.CategoryShopping, []string{"free", "offer", "discount", "sale", "voucher"}},
	{domain.CategoryCrypto, []string{"crypto", "btc", "bitcoin", "investment", "trading"}},
	{domain.CategoryKYC, []string{"kyc", "verification", "account blocked"}},
	{domain.CategoryLottery, []string{"lottery", "jackpot", "lucky draw", "prize"}},
}

// Categorize maps a normalized text onto the fixed taxonomy. Substring
// matching keeps the buckets auditable: anyone can see which keyword put a
// text where. Falls through to the general bucket.
func Categorize(n Normalized) domain.Category {
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(n.Text, kw) {
				return rule.category
			}
		}
	}
	return domain.CategoryGeneral
}
