package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"famorg/internal/model"
)

type FamilyStore struct {
	db *sql.DB
}

func NewFamilyStore(db *sql.DB) *FamilyStore {
	return &FamilyStore{db: db}
}

// GenerateID produces a shareable family join code.
func GenerateID() string {
	return "family_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func (s *FamilyStore) Create(id string) (*model.Family, error) {
	_, err := s.db.Exec(`INSERT INTO families (id) VALUES (?)`, id)
	if err != nil {
		return nil, fmt.Errorf("insert family: %w", err)
	}
	return s.GetByID(id)
}

func (s *FamilyStore) GetByID(id string) (*model.Family, error) {
	var f model.Family
	err := s.db.QueryRow(`SELECT id, created_at FROM families WHERE id = ?`, id).Scan(&f.ID, &f.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get family: %w", err)
	}
	return &f, nil
}

func (s *FamilyStore) Exists(id string) (bool, error) {
	f, err := s.GetByID(id)
	if err != nil {
		return false, err
	}
	return f != nil, nil
}
