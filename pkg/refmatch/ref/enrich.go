package ref

// ResolveProductHierarchy fills TopName and UpperName from the ancestor
// codes, using the master itself as the code lookup. A code without a
// mapping keeps the code as the display name so downstream output is
// never silently blank. Rows are not modified in place.
func ResolveProductHierarchy(rows []ProductRow) []ProductRow {
	byCode := make(map[string]string, len(rows))
	for _, r := range rows {
		if r.Code == "" {
			continue
		}
		if _, ok := byCode[r.Code]; !ok {
			byCode[r.Code] = r.NameKR
		}
	}

	out := make([]ProductRow, len(rows))
	copy(out, rows)
	for i := range out {
		out[i].TopName = resolveCode(byCode, out[i].TopCode, out[i].TopName)
		out[i].UpperName = resolveCode(byCode, out[i].UpperCode, out[i].UpperName)
	}
	return out
}

// ResolveHazardClasses fills MidCategory and TopCategory from the class
// codes using the classification master. Rows are not modified in place.
func ResolveHazardClasses(rows []HazardRow, classes []HazardClass) []HazardRow {
	mid := make(map[string]string, len(classes))
	top := make(map[string]string, len(classes))
	for _, c := range classes {
		if c.MidCode != "" {
			if _, ok := mid[c.MidCode]; !ok {
				mid[c.MidCode] = c.MidName
			}
		}
		if c.TopCode != "" {
			if _, ok := top[c.TopCode]; !ok {
				top[c.TopCode] = c.TopName
			}
		}
	}

	out := make([]HazardRow, len(rows))
	copy(out, rows)
	for i := range out {
		out[i].MidCategory = resolveCode(mid, out[i].MidCode, out[i].MidCategory)
		out[i].TopCategory = resolveCode(top, out[i].TopCode, out[i].TopCategory)
	}
	return out
}

// resolveCode looks code up in byCode. Lookup wins over a name already on
// the row; an unmapped code falls back to the existing name, then to the
// code itself. An empty code leaves the name untouched.
func resolveCode(byCode map[string]string, code, existing string) string {
	if code == "" {
		return existing
	}
	if name, ok := byCode[code]; ok && name != "" {
		return name
	}
	if existing != "" {
		return existing
	}
	return code
}
