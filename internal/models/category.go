package models

// Category represents a game category in the crowdfunding catalog.
type Category struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:100;unique;not null"`
	Description *string `gorm:"type:text"`

	// One category has many games.
	Games []Game `gorm:"foreignKey:CategoryID"`
}

// Validate checks the category's fields against the catalog's length rules.
func (c *Category) Validate() error {
	if err := ValidateStringLength("Category name", &c.Name, 2, false); err != nil {
		return err
	}
	return ValidateStringLength("Description", c.Description, 10, true)
}
