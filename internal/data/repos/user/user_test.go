package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/campusbridge/campus-bridge/internal/data/repos/testutil"
	types "github.com/campusbridge/campus-bridge/internal/domain"
)

func TestUserRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewUserRepo(db, testutil.Logger(t))

	u := &types.User{
		Email:     "  Ada@Example.EDU ",
		Password:  "hash",
		Role:      types.RoleStudent,
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
	if _, err := repo.Create(ctx, tx, []*types.User{u}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID == uuid.Nil {
		t.Fatalf("Create: expected generated id")
	}
	if u.Email != "ada@example.edu" {
		t.Fatalf("Create: email not normalized: %q", u.Email)
	}

	if rows, err := repo.GetByIDs(ctx, tx, []uuid.UUID{u.ID}); err != nil || len(rows) != 1 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(rows))
	}
	rows, err := repo.GetByEmails(ctx, tx, []string{"ADA@example.edu"})
	if err != nil || len(rows) != 1 || rows[0].Role != types.RoleStudent {
		t.Fatalf("GetByEmails: err=%v rows=%v", err, rows)
	}
	if ok, err := repo.EmailExists(ctx, tx, "ada@example.edu"); err != nil || !ok {
		t.Fatalf("EmailExists: ok=%v err=%v", ok, err)
	}
	if ok, err := repo.EmailExists(ctx, tx, "nobody@example.edu"); err != nil || ok {
		t.Fatalf("EmailExists missing: ok=%v err=%v", ok, err)
	}
	if rows, err := repo.GetByIDs(ctx, tx, nil); err != nil || len(rows) != 0 {
		t.Fatalf("GetByIDs empty: err=%v len=%d", err, len(rows))
	}
}
