package models

// Score categories a facility row carries. Each category maps
// sub-attribute names (CSV column headers) to numeric scores.
const (
	CategoryAge       = "age"
	CategoryGender    = "gender"
	CategoryStayDays  = "stayDays"
	CategoryCompanion = "companion"
	CategoryPurpose   = "purpose"
)

// Facility is one scoreable destination, identified by (prefecture, name).
// Rows are created once at catalog load time and never mutated.
type Facility struct {
	Prefecture string                        `json:"prefecture"`
	Name       string                        `json:"name"`
	Scores     map[string]map[string]float64 `json:"scores"`
	NPS        float64                       `json:"nps"`
}

// Key returns the identity key used for dedup and reconciliation.
func (f Facility) Key() string {
	return f.Prefecture + "/" + f.Name
}

// Score returns the score for a single sub-attribute, 0 when the
// category or sub-attribute is absent.
func (f Facility) Score(category, subattribute string) float64 {
	cat, ok := f.Scores[category]
	if !ok {
		return 0
	}
	return cat[subattribute]
}

// ScoredFacility is a Facility with its computed total score. Derived on
// every recommendation call, never persisted.
type ScoredFacility struct {
	Facility
	TotalScore float64 `json:"totalScore"`
}
