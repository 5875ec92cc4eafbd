package geo

import "strings"

// Region is one of the six continental roll-up buckets.
type Region int

const (
	NorthAmerica Region = iota
	SouthAmerica
	Europe
	Africa
	Asia
	Oceania
)

// regionCount is the number of Region values.
const regionCount = 6

func (r Region) String() string {
	switch r {
	case NorthAmerica:
		return "North America"
	case SouthAmerica:
		return "South America"
	case Europe:
		return "Europe"
	case Africa:
		return "Africa"
	case Asia:
		return "Asia"
	case Oceania:
		return "Oceania"
	default:
		return "Unknown"
	}
}

// AllRegions returns the regions in roll-up display order.
func AllRegions() []Region {
	return []Region{NorthAmerica, SouthAmerica, Europe, Africa, Asia, Oceania}
}

// Country is a static lookup entry. Lat/Lon locate the map marker.
type Country struct {
	Code   string
	Name   string
	Region Region
	Lat    float64
	Lon    float64
}

// countries is read-only after package init; callers only see copies.
var countries = map[string]Country{
	// North America, Central America and the Caribbean.
	"US": {"US", "United States", NorthAmerica, 39, -98},
	"CA": {"CA", "Canada", NorthAmerica, 56, -106},
	"MX": {"MX", "Mexico", NorthAmerica, 23, -102},
	"GT": {"GT", "Guatemala", NorthAmerica, 15.5, -90.3},
	"CR": {"CR", "Costa Rica", NorthAmerica, 10, -84},
	"PA": {"PA", "Panama", NorthAmerica, 9, -80},
	"CU": {"CU", "Cuba", NorthAmerica, 22, -80},
	"DO": {"DO", "Dominican Republic", NorthAmerica, 19, -70.7},
	"JM": {"JM", "Jamaica", NorthAmerica, 18, -77},
	"PR": {"PR", "Puerto Rico", NorthAmerica, 18.2, -66.5},

	"BR": {"BR", "Brazil", SouthAmerica, -10, -52},
	"AR": {"AR", "Argentina", SouthAmerica, -34, -64},
	"CL": {"CL", "Chile", SouthAmerica, -30, -71},
	"CO": {"CO", "Colombia", SouthAmerica, 4, -73},
	"PE": {"PE", "Peru", SouthAmerica, -10, -76},
	"VE": {"VE", "Venezuela", SouthAmerica, 7, -66},
	"EC": {"EC", "Ecuador", SouthAmerica, -1.8, -78},
	"UY": {"UY", "Uruguay", SouthAmerica, -33, -56},
	"BO": {"BO", "Bolivia", SouthAmerica, -17, -65},
	"PY": {"PY", "Paraguay", SouthAmerica, -23, -58},

	"GB": {"GB", "United Kingdom", Europe, 54, -2},
	"IE": {"IE", "Ireland", Europe, 53, -8},
	"FR": {"FR", "France", Europe, 46, 2},
	"DE": {"DE", "Germany", Europe, 51, 10},
	"NL": {"NL", "Netherlands", Europe, 52, 5.3},
	"BE": {"BE", "Belgium", Europe, 50.5, 4.5},
	"ES": {"ES", "Spain", Europe, 40, -4},
	"PT": {"PT", "Portugal", Europe, 39.5, -8},
	"IT": {"IT", "Italy", Europe, 42.8, 12.8},
	"CH": {"CH", "Switzerland", Europe, 46.8, 8.2},
	"AT": {"AT", "Austria", Europe, 47.5, 14.5},
	"PL": {"PL", "Poland", Europe, 52, 19},
	"CZ": {"CZ", "Czechia", Europe, 49.8, 15.5},
	"SE": {"SE", "Sweden", Europe, 62, 15},
	"NO": {"NO", "Norway", Europe, 61, 8},
	"FI": {"FI", "Finland", Europe, 64, 26},
	"DK": {"DK", "Denmark", Europe, 56, 10},
	"UA": {"UA", "Ukraine", Europe, 49, 32},
	"RO": {"RO", "Romania", Europe, 46, 25},
	"GR": {"GR", "Greece", Europe, 39, 22},
	"HU": {"HU", "Hungary", Europe, 47, 19.5},
	"RU": {"RU", "Russia", Europe, 58, 60},

	"ZA": {"ZA", "South Africa", Africa, -29, 24},
	"NG": {"NG", "Nigeria", Africa, 9, 8},
	"EG": {"EG", "Egypt", Africa, 27, 30},
	"KE": {"KE", "Kenya", Africa, 0.5, 38},
	"MA": {"MA", "Morocco", Africa, 32, -6},
	"GH": {"GH", "Ghana", Africa, 8, -1},
	"ET": {"ET", "Ethiopia", Africa, 9, 40},
	"DZ": {"DZ", "Algeria", Africa, 28, 3},
	"TN": {"TN", "Tunisia", Africa, 34, 9},
	"CI": {"CI", "Côte d'Ivoire", Africa, 7.5, -5.5},
	"TZ": {"TZ", "Tanzania", Africa, -6, 35},
	"SN": {"SN", "Senegal", Africa, 14.5, -14.5},

	"TR": {"TR", "Turkey", Asia, 39, 35},
	"IL": {"IL", "Israel", Asia, 31.5, 34.8},
	"AE": {"AE", "United Arab Emirates", Asia, 24, 54},
	"SA": {"SA", "Saudi Arabia", Asia, 24, 45},
	"IR": {"IR", "Iran", Asia, 32, 53},
	"IN": {"IN", "India", Asia, 21, 78},
	"PK": {"PK", "Pakistan", Asia, 30, 70},
	"BD": {"BD", "Bangladesh", Asia, 24, 90},
	"CN": {"CN", "China", Asia, 35, 105},
	"JP": {"JP", "Japan", Asia, 36, 138},
	"KR": {"KR", "South Korea", Asia, 36, 128},
	"TW": {"TW", "Taiwan", Asia, 23.7, 121},
	"HK": {"HK", "Hong Kong", Asia, 22.3, 114.2},
	"SG": {"SG", "Singapore", Asia, 1.35, 103.8},
	"MY": {"MY", "Malaysia", Asia, 4, 102},
	"TH": {"TH", "Thailand", Asia, 15, 101},
	"VN": {"VN", "Vietnam", Asia, 16, 107},
	"ID": {"ID", "Indonesia", Asia, -2, 118},
	"PH": {"PH", "Philippines", Asia, 13, 122},
	"KZ": {"KZ", "Kazakhstan", Asia, 48, 67},

	"AU": {"AU", "Australia", Oceania, -25, 134},
	"NZ": {"NZ", "New Zealand", Oceania, -41, 174},
	"FJ": {"FJ", "Fiji", Oceania, -17.7, 178},
	"PG": {"PG", "Papua New Guinea", Oceania, -6, 147},
}

// Lookup returns the static entry for an ISO 3166-1 alpha-2 code
// (case-insensitive).
func Lookup(code string) (Country, bool) {
	c, ok := countries[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// CodeFor returns the code of the country with the given name
// (case-insensitive), or "" if unknown.
func CodeFor(name string) string {
	name = strings.TrimSpace(name)
	for code, c := range countries {
		if strings.EqualFold(c.Name, name) {
			return code
		}
	}
	return ""
}

// RegionOf reports the continental bucket of a country code.
func RegionOf(code string) (Region, bool) {
	c, ok := Lookup(code)
	if !ok {
		return 0, false
	}
	return c.Region, true
}

// NameOf returns the display name for a code, falling back to the code.
func NameOf(code string) string {
	if c, ok := Lookup(code); ok {
		return c.Name
	}
	return strings.ToUpper(code)
}
