package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"campaign-space-api/internal/domain"
)

func setupCharacterTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	db.Exec(`CREATE TABLE characters (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		owner_id TEXT NOT NULL,
		name TEXT NOT NULL,
		race TEXT NOT NULL,
		class TEXT NOT NULL,
		level INTEGER NOT NULL DEFAULT 1,
		stats TEXT NOT NULL,
		background TEXT,
		alignment TEXT NOT NULL DEFAULT 'True Neutral',
		bio TEXT,
		profile_image_url TEXT,
		profile_image_key TEXT,
		banner_image_url TEXT,
		banner_image_key TEXT,
		profile_views INTEGER NOT NULL DEFAULT 0,
		slug TEXT UNIQUE
	)`)
	db.Exec(`CREATE TABLE character_top_friends (
		character_id TEXT NOT NULL,
		friend_id TEXT NOT NULL,
		PRIMARY KEY (character_id, friend_id)
	)`)

	return db
}

func newTestCharacter(ownerID uuid.UUID, name, slug string) *domain.Character {
	return &domain.Character{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		OwnerID:   ownerID,
		Name:      name,
		Race:      "Goliath",
		Class:     "Barbarian",
		Level:     9,
		Stats:     datatypes.JSON([]byte(`{"strength":18,"dexterity":12,"constitution":16,"intelligence":8,"wisdom":10,"charisma":11}`)),
		Alignment: domain.AlignmentChaoticNeutral,
		Slug:      slug,
	}
}

func TestCharacterRepository_SlugExists(t *testing.T) {
	db := setupCharacterTestDB(t)
	repo := NewCharacterRepository(db)
	ctx := context.Background()

	db.Create(newTestCharacter(uuid.New(), "Grog Strongjaw", "grogstrongjaw-a1b2c3"))

	exists, err := repo.SlugExists(ctx, "grogstrongjaw-a1b2c3")
	if err != nil {
		t.Fatalf("SlugExists() error = %v", err)
	}
	if !exists {
		t.Error("SlugExists() = false for a taken slug")
	}

	exists, err = repo.SlugExists(ctx, "vexahlia-d4e5f6")
	if err != nil {
		t.Fatalf("SlugExists() error = %v", err)
	}
	if exists {
		t.Error("SlugExists() = true for a free slug")
	}
}

func TestCharacterRepository_FindBySlug(t *testing.T) {
	db := setupCharacterTestDB(t)
	repo := NewCharacterRepository(db)
	ctx := context.Background()

	character := newTestCharacter(uuid.New(), "Grog Strongjaw", "grogstrongjaw-a1b2c3")
	db.Create(character)

	found, err := repo.FindBySlug(ctx, "grogstrongjaw-a1b2c3")
	if err != nil {
		t.Fatalf("FindBySlug() error = %v", err)
	}
	if found.ID != character.ID {
		t.Errorf("FindBySlug() ID = %v, want %v", found.ID, character.ID)
	}

	if _, err := repo.FindBySlug(ctx, "nobody-000000"); err == nil {
		t.Error("FindBySlug() expected error for unknown slug, got nil")
	}
}

func TestCharacterRepository_IncrementProfileViews(t *testing.T) {
	db := setupCharacterTestDB(t)
	repo := NewCharacterRepository(db)
	ctx := context.Background()

	character := newTestCharacter(uuid.New(), "Grog Strongjaw", "grogstrongjaw-a1b2c3")
	character.ProfileViews = 40
	db.Create(character)

	views, err := repo.IncrementProfileViews(ctx, character.ID, 2)
	if err != nil {
		t.Fatalf("IncrementProfileViews() error = %v", err)
	}
	if views != 42 {
		t.Errorf("IncrementProfileViews() = %d, want 42", views)
	}

	// Unknown character is reported, not silently ignored
	if _, err := repo.IncrementProfileViews(ctx, uuid.New(), 1); err != gorm.ErrRecordNotFound {
		t.Errorf("IncrementProfileViews() for unknown ID error = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestCharacterRepository_FindByOwnerID(t *testing.T) {
	db := setupCharacterTestDB(t)
	repo := NewCharacterRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	now := time.Now()

	older := newTestCharacter(ownerID, "Grog Strongjaw", "grogstrongjaw-a1b2c3")
	older.CreatedAt = now.Add(-time.Hour)
	newer := newTestCharacter(ownerID, "Vex'ahlia", "vexahlia-d4e5f6")
	newer.CreatedAt = now
	db.Create(older)
	db.Create(newer)
	db.Create(newTestCharacter(uuid.New(), "Stranger", "stranger-111111"))

	characters, err := repo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		t.Fatalf("FindByOwnerID() error = %v", err)
	}
	if len(characters) != 2 {
		t.Fatalf("FindByOwnerID() returned %d characters, want 2", len(characters))
	}
	if characters[0].ID != newer.ID {
		t.Error("expected newest character first")
	}
}

func TestCharacterRepository_DeleteTopFriendRefs(t *testing.T) {
	db := setupCharacterTestDB(t)
	repo := NewCharacterRepository(db)
	ctx := context.Background()

	characterID := uuid.New()
	friendID := uuid.New()
	adorerID := uuid.New()

	// The character lists a friend, and someone else lists the character
	db.Exec("INSERT INTO character_top_friends (character_id, friend_id) VALUES (?, ?)", characterID, friendID)
	db.Exec("INSERT INTO character_top_friends (character_id, friend_id) VALUES (?, ?)", adorerID, characterID)
	db.Exec("INSERT INTO character_top_friends (character_id, friend_id) VALUES (?, ?)", adorerID, friendID)

	if err := repo.DeleteTopFriendRefs(ctx, nil, characterID); err != nil {
		t.Fatalf("DeleteTopFriendRefs() error = %v", err)
	}

	var count int64
	db.Raw("SELECT COUNT(*) FROM character_top_friends WHERE character_id = ? OR friend_id = ?", characterID, characterID).Scan(&count)
	if count != 0 {
		t.Errorf("expected no links involving the character, got %d", count)
	}
	db.Raw("SELECT COUNT(*) FROM character_top_friends").Scan(&count)
	if count != 1 {
		t.Errorf("expected the unrelated link to survive, got %d rows", count)
	}
}
