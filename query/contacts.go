package query

import (
	"strings"
	"unicode"

	"github.com/vegasq/querylab/dataset"
)

// GapReason explains why a customer's contact details are incomplete.
type GapReason string

const (
	// GapPostalCodeNonNumeric: the postal code is set and holds a non-digit.
	GapPostalCodeNonNumeric GapReason = "postal_code_non_numeric"
	// GapRegionMissing: the customer has no region.
	GapRegionMissing GapReason = "region_missing"
	// GapPhoneWithoutOperatorCode: the phone does not start with "(".
	// An empty phone has no operator code either.
	GapPhoneWithoutOperatorCode GapReason = "phone_without_operator_code"
)

// ContactGap is a customer with at least one incomplete contact detail.
type ContactGap struct {
	CustomerID string
	PostalCode string
	Region     string
	Phone      string
	Reasons    []GapReason
}

// IncompleteContacts lists, in dataset order, the customers with a non-numeric
// postal code, no region, or a phone without an operator code. Reasons are
// reported in that fixed order.
func IncompleteContacts(ds *dataset.Dataset) []ContactGap {
	var gaps []ContactGap
	for _, c := range ds.Customers {
		reasons := contactGaps(c)
		if len(reasons) == 0 {
			continue
		}
		gaps = append(gaps, ContactGap{
			CustomerID: c.ID,
			PostalCode: c.PostalCode,
			Region:     c.Region,
			Phone:      c.Phone,
			Reasons:    reasons,
		})
	}
	return gaps
}

func contactGaps(c dataset.Customer) []GapReason {
	var reasons []GapReason
	if c.PostalCode != "" && strings.IndexFunc(c.PostalCode, isNotDigit) >= 0 {
		reasons = append(reasons, GapPostalCodeNonNumeric)
	}
	if c.Region == "" {
		reasons = append(reasons, GapRegionMissing)
	}
	if !strings.HasPrefix(c.Phone, "(") {
		reasons = append(reasons, GapPhoneWithoutOperatorCode)
	}
	return reasons
}

func isNotDigit(r rune) bool {
	return !unicode.IsDigit(r)
}
