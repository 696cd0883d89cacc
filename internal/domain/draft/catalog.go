package draft

import (
	"slices"

	"legaldesk/internal/domain/record"
)

// Category is the matter category a document belongs to.
type Category string

const (
	Civil    Category = "Civil"
	Criminal Category = "Criminal"
)

type CategoryInfo struct {
	Category    Category `json:"category"`
	CourtHeader string   `json:"court_header"`
	DocTypes    []string `json:"doc_types"`
}

var catalog = []CategoryInfo{
	{
		Category:    Civil,
		CourtHeader: "IN THE COURT OF THE CIVIL JUDGE, SENIOR DIVISION",
		DocTypes:    []string{"Property Notice", "Rent Agreement", "Divorce Petition", "Civil Suit"},
	},
	{
		Category:    Criminal,
		CourtHeader: "IN THE COURT OF THE HON'BLE SESSIONS JUDGE",
		DocTypes:    []string{"Regular Bail Application", "Anticipatory Bail", "Criminal FIR", "Section 138 Notice"},
	},
}

// Catalog returns a copy of the known categories and their document types.
func Catalog() []CategoryInfo {
	out := make([]CategoryInfo, len(catalog))
	for i, c := range catalog {
		c.DocTypes = slices.Clone(c.DocTypes)
		out[i] = c
	}
	return out
}

func lookup(category Category) (CategoryInfo, bool) {
	for _, c := range catalog {
		if c.Category == category {
			return c, true
		}
	}
	return CategoryInfo{}, false
}

// Validate checks that docType belongs to category.
func Validate(category Category, docType string) error {
	info, ok := lookup(category)
	if !ok {
		return record.Invalid("unknown category %q", category)
	}
	if !slices.Contains(info.DocTypes, docType) {
		return record.Invalid("document type %q is not available for %s matters", docType, category)
	}
	return nil
}

// DefaultDocType is the first document type of a category.
func DefaultDocType(category Category) string {
	info, ok := lookup(category)
	if !ok || len(info.DocTypes) == 0 {
		return ""
	}
	return info.DocTypes[0]
}
