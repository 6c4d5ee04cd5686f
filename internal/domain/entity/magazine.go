package entity

// Magazine represents a publication in the catalog.
// The name and category fields are unexported so that every write goes through
// the validating setters; an invalid assignment never replaces the stored value.
type Magazine struct {
	ID int64

	name     string
	category string
}

// NewMagazine creates a new Magazine with the given name and category.
// Returns a ValidationError if the name is not 2-16 characters long or the
// category is empty. The ID is assigned by the repository on registration.
func NewMagazine(name, category string) (*Magazine, error) {
	m := &Magazine{}
	if err := m.SetName(name); err != nil {
		return nil, err
	}
	if err := m.SetCategory(category); err != nil {
		return nil, err
	}
	return m, nil
}

// Name returns the magazine's display name.
func (m *Magazine) Name() string { return m.name }

// Category returns the magazine's topic category.
func (m *Magazine) Category() string { return m.category }

// SetName assigns a new name to the magazine.
// The value is re-validated on every write; on failure the current name is
// left unchanged and a ValidationError is returned.
func (m *Magazine) SetName(name string) error {
	if err := ValidateMagazineName(name); err != nil {
		return err
	}
	m.name = name
	return nil
}

// SetCategory assigns a new category to the magazine.
// The value is re-validated on every write; on failure the current category is
// left unchanged and a ValidationError is returned.
func (m *Magazine) SetCategory(category string) error {
	if err := ValidateCategory(category); err != nil {
		return err
	}
	m.category = category
	return nil
}
