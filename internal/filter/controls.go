package filter

// Controls supplies the current values of the filter inputs. The engine reads
// them at apply time and writes them back on restore and clear.
type Controls interface {
	Values() State
	SetValues(State)
	SetDateOption(value, label string)
	HasCategory(category string) bool
	HasSubcategory(subcategory string) bool
}

// Option is one entry of a select control
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FormControls is an in-memory set of filter inputs with their option lists
type FormControls struct {
	state         State
	dateOptions   []Option
	categories    map[string]struct{}
	subcategories map[string]struct{}
}

// DefaultDateOptions returns the date selector options in display order
func DefaultDateOptions() []Option {
	return []Option{
		{Value: DateAll, Label: "All Time"},
		{Value: Date30, Label: "Last 30 Days"},
		{Value: Date90, Label: "Last 90 Days"},
		{Value: Date180, Label: "Last 180 Days"},
		{Value: Date365, Label: "Last 365 Days"},
		{Value: DateYTD, Label: "Year to Date"},
		{Value: DateCustom, Label: "Custom Range..."},
	}
}

// NewFormControls creates controls at their default values with the given
// category and subcategory options
func NewFormControls(categories, subcategories []string) *FormControls {
	fc := &FormControls{
		state:       DefaultState(),
		dateOptions: DefaultDateOptions(),
	}
	fc.SetOptions(categories, subcategories)
	return fc
}

// SetOptions replaces the category and subcategory option lists
func (fc *FormControls) SetOptions(categories, subcategories []string) {
	fc.categories = toSet(categories)
	fc.subcategories = toSet(subcategories)
}

// Values implements Controls
func (fc *FormControls) Values() State {
	return fc.state
}

// SetValues implements Controls. Empty selectors become "all".
func (fc *FormControls) SetValues(state State) {
	fc.state = state.withDefaults()
}

// SetDateOption updates the label of an existing date option or appends a new one
func (fc *FormControls) SetDateOption(value, label string) {
	for i := range fc.dateOptions {
		if fc.dateOptions[i].Value == value {
			fc.dateOptions[i].Label = label
			return
		}
	}
	fc.dateOptions = append(fc.dateOptions, Option{Value: value, Label: label})
}

// DateOptions returns the date selector options
func (fc *FormControls) DateOptions() []Option {
	options := make([]Option, len(fc.dateOptions))
	copy(options, fc.dateOptions)
	return options
}

// HasCategory implements Controls
func (fc *FormControls) HasCategory(category string) bool {
	_, ok := fc.categories[category]
	return ok
}

// HasSubcategory implements Controls
func (fc *FormControls) HasSubcategory(subcategory string) bool {
	_, ok := fc.subcategories[subcategory]
	return ok
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
