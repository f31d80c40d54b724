package models

// UserProfile is the ephemeral attribute selection driving a
// recommendation. Each field may hold either a sub-attribute name
// (e.g. "20代") or a coarse category name (e.g. "若年層") that expands
// to several sub-attributes. Empty fields contribute nothing.
// Region, when set, filters facilities by prefecture before scoring.
type UserProfile struct {
	Age       string `json:"age,omitempty"`
	Gender    string `json:"gender,omitempty"`
	StayDays  string `json:"stayDays,omitempty"`
	Companion string `json:"companion,omitempty"`
	Purpose   string `json:"purpose,omitempty"`
	Region    string `json:"region,omitempty"`
}

// IsEmpty reports whether no scoring field is populated.
func (p UserProfile) IsEmpty() bool {
	return p.Age == "" && p.Gender == "" && p.StayDays == "" &&
		p.Companion == "" && p.Purpose == ""
}
