package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/scamradar/scamradar/internal/domain/scans"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.Category
	}{
		{"money", "Earn extra income every week", domain.CategoryMoney},
		{"job", "We are hiring, interview this Friday", domain.CategoryJob},
		{"shopping", "Flash sale, 90% discount voucher", domain.CategoryShopping},
		{"crypto", "New bitcoin trading platform", domain.CategoryCrypto},
		{"kyc", "Your account blocked, complete verification", domain.CategoryKYC},
		{"lottery", "You won the lucky draw jackpot", domain.CategoryLottery},
		{"fallback", "meet me at the station at 5", domain.CategoryGeneral},
		{"empty", "", domain.CategoryGeneral},
		// priority: money outranks lottery even when both match
		{"money beats lottery", "won a lottery, earn guaranteed profit", domain.CategoryMoney},
		// priority: shopping outranks crypto
		{"shopping beats crypto", "free crypto for every signup", domain.CategoryShopping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(Normalize(tt.text)))
		})
	}
}

func TestCategorizeDeterministic(t *testing.T) {
	n := Normalize("crypto investment with guaranteed salary")
	first := Categorize(n)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Categorize(n))
	}
}
