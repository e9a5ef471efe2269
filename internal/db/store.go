package db

import (
	"context" // Request scoped cancellation
	"errors"  // Error matching
	"fmt"     // Statement assembly

	"irys_gallery/internal/domain" // Importing domain models
	"irys_gallery/internal/utils"  // Wallet locking

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/clause"        // ON CONFLICT clause
)

// Store runs the gallery queries against the users and artworks tables
type Store struct {
	db     *gorm.DB     // Shared connection pool
	locker utils.Locker // Serializes connects per wallet address
}

// NewStore creates a Store; a nil locker falls back to an in-process KeyedMutex
func NewStore(db *gorm.DB, locker utils.Locker) *Store {
	if locker == nil {
		locker = utils.NewKeyedMutex()
	}
	return &Store{db: db, locker: locker}
}

// Ping checks that the database answers
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return &domain.StoreError{Op: "ping", Err: err}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return &domain.StoreError{Op: "ping", Err: err}
	}
	return nil
}

// FindUserByWallet returns the user owning walletAddress, or nil when there is none
func (s *Store) FindUserByWallet(ctx context.Context, walletAddress string) (*domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).Where("wallet_address = ?", walletAddress).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // No user yet
	}
	if err != nil {
		return nil, &domain.StoreError{Op: "find user", Err: err}
	}
	return &user, nil
}

// ConnectWallet returns the user for walletAddress, creating it with only the address set when absent.
// created is true only for the call whose insert actually added the row. Concurrent calls for one
// address are serialized by the locker, and the insert ignores unique conflicts so writers that
// bypass the locker still end up sharing one row.
func (s *Store) ConnectWallet(ctx context.Context, walletAddress string) (user *domain.User, created bool, err error) {
	unlock, err := s.locker.Lock(ctx, "wallet:"+walletAddress)
	if err != nil {
		return nil, false, &domain.StoreError{Op: "lock wallet", Err: err}
	}
	defer unlock()

	// Check if the user already exists
	user, err = s.FindUserByWallet(ctx, walletAddress)
	if err != nil {
		return nil, false, err
	}
	if user != nil {
		return user, false, nil
	}

	created, err = s.insertWallet(ctx, walletAddress)
	if err != nil {
		return nil, false, err
	}
	if !created {
		logrus.WithField("wallet_address", walletAddress).Warn("Concurrent connect resolved to existing user")
	}

	// Read back the row so store defaults are returned
	user, err = s.FindUserByWallet(ctx, walletAddress)
	if err != nil {
		return nil, false, err
	}
	if user == nil {
		return nil, false, &domain.StoreError{Op: "create user", Err: errors.New("user missing after insert")}
	}
	return user, created, nil
}

// insertWallet inserts a user with only the wallet address set, profile fields stay NULL.
// It reports false without error when the address already exists.
func (s *Store) insertWallet(ctx context.Context, walletAddress string) (bool, error) {
	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "wallet_address"}}, DoNothing: true}).
		Select("wallet_address").
		Create(&domain.User{WalletAddress: walletAddress})
	if res.Error != nil {
		return false, &domain.StoreError{Op: "create user", Err: res.Error}
	}
	return res.RowsAffected == 1, nil
}

// listArtworksSQL is the listing statement; the search filter is spliced in before ORDER BY
const listArtworksSQL = "SELECT a.*, u.username AS artist_name, u.avatar_url AS artist_avatar " +
	"FROM artworks AS a JOIN users u ON a.user_id = u.id%s " +
	"ORDER BY a.created_at DESC, a.id DESC LIMIT ? OFFSET ?"

// artworksQuery builds the listing statement. Limit and offset are bound exactly as given,
// so non-positive values reach the database unchanged.
func (s *Store) artworksQuery(ctx context.Context, q domain.ArtworkQuery) *gorm.DB {
	var where string
	var vars []any
	// Filter by title or description when searching
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		if s.db.Dialector.Name() == "postgres" {
			where = " WHERE a.title ILIKE ? OR a.description ILIKE ?"
		} else {
			where = " WHERE LOWER(a.title) LIKE LOWER(?) OR LOWER(a.description) LIKE LOWER(?)"
		}
		vars = append(vars, pattern, pattern)
	}
	vars = append(vars, q.Limit, q.Offset())
	return s.db.WithContext(ctx).Raw(fmt.Sprintf(listArtworksSQL, where), vars...)
}

// ListArtworks returns one page of artworks joined with their owner's name and avatar,
// newest first, ties broken by id. The result is never nil.
func (s *Store) ListArtworks(ctx context.Context, q domain.ArtworkQuery) ([]domain.ArtworkListing, error) {
	artworks := make([]domain.ArtworkListing, 0) // Empty page encodes as []
	if err := s.artworksQuery(ctx, q).Scan(&artworks).Error; err != nil {
		return nil, &domain.StoreError{Op: "list artworks", Err: err}
	}
	return artworks, nil
}
