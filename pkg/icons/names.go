package icons

// Fallback is used when a config names an icon outside the set.
const Fallback = "search"

var componentNames = map[string]struct{ lucide, material string }{
	"check":   {"Check", "Check"},
	"chevron": {"ChevronRight", "ChevronRight"},
	"close":   {"X", "Close"},
	"expand":  {"ChevronDown", "ExpandMore"},
	"mail":    {"Mail", "Mail"},
	"plus":    {"Plus", "Add"},
	"search":  {"Search", "Search"},
	"star":    {"Star", "Star"},
}

// Resolve returns name when it is part of the set and Fallback otherwise.
func Resolve(name string) string {
	key := normalise(name)
	if _, ok := componentNames[key]; ok && Has(key) {
		return key
	}
	return Fallback
}

// Lucide returns the lucide-react component name for icon name.
func Lucide(name string) string {
	return componentNames[Resolve(name)].lucide
}

// Material returns the @mui/icons-material component name for icon name.
func Material(name string) string {
	return componentNames[Resolve(name)].material
}
