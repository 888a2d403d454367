package countries

var names = map[string]string{
	"AR": "Argentina",
	"AU": "Australia",
	"BR": "Brazil",
	"CA": "Canada",
	"DE": "Germany",
	"ES": "Spain",
	"FR": "France",
	"GB": "United Kingdom",
	"IN": "India",
	"IT": "Italy",
	"JP": "Japan",
	"KR": "South Korea",
	"MX": "Mexico",
	"NL": "Netherlands",
	"SE": "Sweden",
	"US": "United States",
}

// Resolve maps ISO country codes to display names.
// Unknown codes pass through unchanged.
func Resolve(codes []string) []string {
	out := make([]string, len(codes))
	for i, code := range codes {
		if name, ok := names[code]; ok {
			out[i] = name
		} else {
			out[i] = code
		}
	}
	return out
}
