package auth

import (
	"context"
	"testing"

	"famorg/internal/session"
)

func TestWithIdentityRoundTrip(t *testing.T) {
	id := session.Identity{Username: "alice", Role: "member", FamilyID: "family_abc12"}
	ctx := WithIdentity(context.Background(), id)

	got, ok := FromContext(ctx)
	if !ok {
		t.Fatal("identity should be present")
	}
	if got != id {
		t.Errorf("identity = %+v, want %+v", got, id)
	}
	if Username(ctx) != "alice" {
		t.Errorf("Username = %q, want alice", Username(ctx))
	}
	if FamilyID(ctx) != "family_abc12" {
		t.Errorf("FamilyID = %q, want family_abc12", FamilyID(ctx))
	}
}

func TestFromContextMissing(t *testing.T) {
	if _, ok := FromContext(context.Background()); ok {
		t.Fatal("bare context should have no identity")
	}
	if Username(context.Background()) != "" {
		t.Error("Username on bare context should be empty")
	}
}
