package models

// Publisher represents a game publisher in the crowdfunding catalog.
type Publisher struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:100;unique;not null"`
	Description *string `gorm:"type:text"`

	// One publisher has many games.
	Games []Game `gorm:"foreignKey:PublisherID"`
}

// Validate checks the publisher's fields against the catalog's length rules.
func (p *Publisher) Validate() error {
	if err := ValidateStringLength("Publisher name", &p.Name, 2, false); err != nil {
		return err
	}
	return ValidateStringLength("Description", p.Description, 10, true)
}
