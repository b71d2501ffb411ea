package scenario

// SchemeCategories are the four fixed welfare-benefit domains a simulation
// can be contextualized with.
var SchemeCategories = []string{
	"Food & Nutrition",
	"Social Security / Pensions / DBT",
	"Employment & Wage Programs",
	"Health Insurance / Health-linked Benefits",
}

// ValidCategory reports whether s names one of the fixed scheme categories.
func ValidCategory(s string) bool {
	for _, c := range SchemeCategories {
		if c == s {
			return true
		}
	}
	return false
}
