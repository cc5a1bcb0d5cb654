package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tailspin/backend/internal/models"
)

// GameFilter narrows a game listing. Nil fields are not applied; set fields
// combine conjunctively as exact matches on the foreign keys.
type GameFilter struct {
	CategoryID  *uint
	PublisherID *uint
}

// Store provides GORM-based persistence for the catalog entities.
type Store struct{ db *gorm.DB }

// AutoMigrate creates or updates the catalog tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{}, &models.Publisher{}, &models.Game{})
}

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

// WithTx runs fn inside a single transaction scoped to the request. A non-nil
// error from fn rolls everything back; nil commits.
func (s *Store) WithTx(fn func(*Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// gamesQuery is the base read for games. Publisher and Category are LEFT
// JOINed so a game with an unresolvable reference still appears, with the
// relation left nil.
func (s *Store) gamesQuery() *gorm.DB {
	return s.db.Model(&models.Game{}).Joins("Publisher").Joins("Category")
}

// ListGames returns all games matching the filter, with publisher and
// category resolved where they exist.
func (s *Store) ListGames(filter GameFilter) ([]models.Game, error) {
	query := s.gamesQuery()
	if filter.CategoryID != nil {
		query = query.Where("games.category_id = ?", *filter.CategoryID)
	}
	if filter.PublisherID != nil {
		query = query.Where("games.publisher_id = ?", *filter.PublisherID)
	}

	var games []models.Game
	if err := query.Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// GetGame returns a single game with its publisher and category resolved.
// Returns gorm.ErrRecordNotFound if no such game exists.
func (s *Store) GetGame(id uint) (*models.Game, error) {
	var game models.Game
	if err := s.gamesQuery().First(&game, "games.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

// Writes omit associations so a loaded Category/Publisher pointer can never
// override the foreign key fields or touch the referenced rows.
func (s *Store) CreateGame(game *models.Game) error {
	return s.db.Omit(clause.Associations).Create(game).Error
}

func (s *Store) SaveGame(game *models.Game) error {
	return s.db.Omit(clause.Associations).Save(game).Error
}

func (s *Store) DeleteGame(game *models.Game) error { return s.db.Delete(game).Error }

// CategoryExists reports whether a category row with the given id exists.
func (s *Store) CategoryExists(id uint) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// PublisherExists reports whether a publisher row with the given id exists.
func (s *Store) PublisherExists(id uint) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Publisher{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListCategories returns all categories sorted by name, with their games
// loaded so callers can report per-category game counts.
func (s *Store) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Preload("Games").Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ListPublishers returns all publishers sorted by name, with their games
// loaded so callers can report per-publisher game counts.
func (s *Store) ListPublishers() ([]models.Publisher, error) {
	var publishers []models.Publisher
	if err := s.db.Preload("Games").Order("name ASC").Find(&publishers).Error; err != nil {
		return nil, err
	}
	return publishers, nil
}
