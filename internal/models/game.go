package models

// Game represents a crowdfunding game. Every game belongs to exactly one
// category and one publisher; the relation pointers stay nil when the
// referenced row cannot be resolved, so a joined read still returns the game.
type Game struct {
	ID          uint     `gorm:"primaryKey"`
	Title       string   `gorm:"size:100;not null"`
	Description string   `gorm:"type:text;not null"`
	StarRating  *float64 `gorm:"column:star_rating"`

	CategoryID  uint `gorm:"not null"`
	PublisherID uint `gorm:"not null"`

	Category  *Category  `gorm:"foreignKey:CategoryID"`
	Publisher *Publisher `gorm:"foreignKey:PublisherID"`
}

// Validate checks the game's fields against the catalog's length rules.
// The description column is not null, so it is validated as required.
func (g *Game) Validate() error {
	if err := ValidateStringLength("Game title", &g.Title, 2, false); err != nil {
		return err
	}
	return ValidateStringLength("Description", &g.Description, 10, false)
}
