package shopping

// Rendering templates for the text shopping list
const (
	HeaderFormat    = "Shopping List for %s people\n"
	DateLineFormat  = "Generated on %s\n"
	SectionFormat   = "\n%s:\n"
	LineFormat      = "- %s: %s %s\n"
	GeneratedLayout = "1/2/2006"
)

// QuantityPrecision is the number of decimals kept after scaling
const QuantityPrecision = 2
