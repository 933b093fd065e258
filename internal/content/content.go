package content

// Category classifies a lesson topic. The set is fixed; catalog validation
// rejects anything outside it.
type Category string

const (
	CategoryConcept   Category = "konsep"
	CategoryStructure Category = "struktur"
	CategoryRevenue   Category = "pendapatan"
	CategorySpending  Category = "belanja"
)

// Topic is one entry in the lesson catalog. Immutable after load.
type Topic struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Body        string   `json:"body"`
}

// Question is one quiz question: four options, exactly one correct.
type Question struct {
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	Answer      int      `json:"answer"`
	Explanation string   `json:"explanation"`
}

// Catalog is the full static content of the app.
type Catalog struct {
	Topics    []Topic    `json:"topics"`
	Questions []Question `json:"questions"`
}

// Icon returns the glyph shown on a topic card for the given category.
func (c Category) Icon() string {
	switch c {
	case CategoryConcept:
		return "▣"
	case CategoryStructure:
		return "◫"
	case CategoryRevenue:
		return "◈"
	case CategorySpending:
		return "◮"
	default:
		return "•"
	}
}
