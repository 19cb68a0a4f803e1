package store

import "testing"

func setupUserStore(t *testing.T) (*UserStore, string) {
	t.Helper()
	db := setupTestDB(t)
	fam, err := NewFamilyStore(db).Create("family_users")
	if err != nil {
		t.Fatalf("create family: %v", err)
	}
	return NewUserStore(db), fam.ID
}

func TestUserCreateAndGetByUsername(t *testing.T) {
	s, famID := setupUserStore(t)

	created, err := s.Create("alice", "hashed-password", "member", famID)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if created.ID == 0 {
		t.Error("user should have an id")
	}

	got, err := s.GetByUsername("alice")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if got == nil || got.PasswordHash != "hashed-password" || got.FamilyID != famID {
		t.Errorf("got %+v", got)
	}
}

func TestUserGetByUsernameNotFound(t *testing.T) {
	s, _ := setupUserStore(t)

	got, err := s.GetByUsername("nobody")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if got != nil {
		t.Error("expected nil for unknown username")
	}
}

func TestUserUsernameUnique(t *testing.T) {
	s, famID := setupUserStore(t)

	if _, err := s.Create("alice", "h1", "member", famID); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := s.Create("alice", "h2", "member", famID); err == nil {
		t.Fatal("duplicate username should fail")
	}
}

func TestFamilyExists(t *testing.T) {
	db := setupTestDB(t)
	fs := NewFamilyStore(db)

	ok, err := fs.Exists("family_none1")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if ok {
		t.Error("family should not exist yet")
	}

	if _, err := fs.Create("family_none1"); err != nil {
		t.Fatalf("create: %v", err)
	}
	ok, err = fs.Exists("family_none1")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !ok {
		t.Error("family should exist")
	}
}

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()
	if a == b {
		t.Error("generated family ids should differ")
	}
	if len(a) != len("family_")+8 {
		t.Errorf("id %q has unexpected length", a)
	}
}
