package record

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// Report summarizes resolution coverage over a batch of records.
type Report struct {
	Total          int
	MissingByField map[string]int
	// Invalid counts records that fail Validate, lacking a field every
	// downstream consumer depends on.
	Invalid int
	// UnmappedProducts counts records that name a product the reference
	// masters could not place in the hierarchy.
	UnmappedProducts int
	// UnmappedHazards counts records with hazard text the masters could
	// not classify.
	UnmappedHazards int
}

var auditFields = []struct {
	name string
	get  func(*Record) string
}{
	{"registration_date", func(r *Record) string { return r.RegistrationDate }},
	{"product_type", func(r *Record) string { return r.ProductType }},
	{"product_name", func(r *Record) string { return r.ProductName }},
	{"origin_country", func(r *Record) string { return r.OriginCountry }},
	{"notifying_country", func(r *Record) string { return r.NotifyingCountry }},
	{"hazard_item", func(r *Record) string { return r.HazardItem }},
	{"hazard_category", func(r *Record) string { return r.HazardCategory }},
}

// Audit tallies field coverage across records.
func Audit(records []Record) Report {
	rep := Report{
		Total:          len(records),
		MissingByField: make(map[string]int),
	}
	for i := range records {
		r := &records[i]
		for _, f := range auditFields {
			if f.get(r) == "" {
				rep.MissingByField[f.name]++
			}
		}
		if r.Validate() != nil {
			rep.Invalid++
		}
		if (r.ProductType != "" || r.ProductName != "") && r.TopProductType == "" && r.UpperProductType == "" {
			rep.UnmappedProducts++
		}
		if (r.HazardItem != "" || r.FullText != "") && r.HazardCategory == "" {
			rep.UnmappedHazards++
		}
	}
	return rep
}

// String renders the report as an aligned text table.
func (rep Report) String() string {
	var buf strings.Builder
	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "records\t%d\n", rep.Total)
	for _, f := range auditFields {
		fmt.Fprintf(tw, "missing %s\t%d\n", f.name, rep.MissingByField[f.name])
	}
	fmt.Fprintf(tw, "invalid records\t%d\n", rep.Invalid)
	fmt.Fprintf(tw, "unmapped products\t%d\n", rep.UnmappedProducts)
	fmt.Fprintf(tw, "unmapped hazards\t%d\n", rep.UnmappedHazards)
	tw.Flush()
	return buf.String()
}
