// Package ref models the reference master data that feed text is resolved
// against: the product type hierarchy, the hazard classification, and the
// snapshots the matching engine consults.
package ref

// ProductRow is one entry of the product type master. Name columns feed
// matching; the remaining fields describe the entry's place in the
// product hierarchy.
type ProductRow struct {
	Code        string `json:"code"`
	NameKR      string `json:"name_kr"`
	NameEN      string `json:"name_en"`
	Abbrev      string `json:"abbrev"`
	AltName     string `json:"alt_name"`
	TopCode     string `json:"top_code"`
	TopName     string `json:"top_name"`
	UpperCode   string `json:"upper_code"`
	UpperName   string `json:"upper_name"`
	ManualFixed bool   `json:"manual_fixed"`
}

// HazardRow is one entry of the hazard item master. The five name columns
// feed matching; MidCategory and TopCategory place the item in the hazard
// classification, and the two flags describe how the item is handled
// downstream.
type HazardRow struct {
	Code        string `json:"code"`
	NameKR      string `json:"name_kr"`
	NameEN      string `json:"name_en"`
	Abbrev      string `json:"abbrev"`
	Nickname    string `json:"nickname"`
	TestItem    string `json:"test_item"`
	MidCode     string `json:"mid_code"`
	MidCategory string `json:"mid_category"`
	TopCode     string `json:"top_code"`
	TopCategory string `json:"top_category"`
	Analyzable  bool   `json:"analyzable"`
	Interest    bool   `json:"interest"`
	ManualFixed bool   `json:"manual_fixed"`
}

// HazardClass is one row of the hazard classification code master,
// mapping class codes to display names.
type HazardClass struct {
	MidCode string `json:"mid_code"`
	MidName string `json:"mid_name"`
	TopCode string `json:"top_code"`
	TopName string `json:"top_name"`
}
