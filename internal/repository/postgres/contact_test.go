package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/domain"
	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/service/dispatch"
)

func contactRows(email, name, state string, inserted bool) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "email", "full_name", "email_sent", "inserted", "created_at", "updated_at"}).
		AddRow("5c0f0b1e-0000-0000-0000-000000000001", email, name, state, inserted, now, now)
}

func TestUpsertInsertsPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO contacts").
		WithArgs(sqlmock.AnyArg(), "ann@x.com", "Ann").
		WillReturnRows(contactRows("ann@x.com", "Ann", "pending", true))

	repo := NewContactRepo(db)
	c, inserted, err := repo.Upsert(context.Background(), "ann@x.com", "Ann")
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if !inserted {
		t.Error("inserted = false, want true for a fresh row")
	}
	if c.EmailSent != domain.DeliveryPending {
		t.Errorf("state = %s, want pending", c.EmailSent)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestUpsertConflictPreservesSentState(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO contacts").
		WithArgs(sqlmock.AnyArg(), "ann@x.com", "Ann Lee").
		WillReturnRows(contactRows("ann@x.com", "Ann Lee", "sent", false))

	repo := NewContactRepo(db)
	c, inserted, err := repo.Upsert(context.Background(), "ann@x.com", "Ann Lee")
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if inserted {
		t.Error("inserted = true, want false for a conflict update")
	}
	if c.EmailSent != domain.DeliverySent {
		t.Errorf("state = %s, want sent preserved", c.EmailSent)
	}
	if c.FullName != "Ann Lee" {
		t.Errorf("full_name = %q, want updated", c.FullName)
	}
}

func TestSetDeliveryState(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE contacts").
		WithArgs("ann@x.com", "sent").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewContactRepo(db)
	if err := repo.SetDeliveryState(context.Background(), "ann@x.com", domain.DeliverySent); err != nil {
		t.Fatalf("SetDeliveryState: %v", err)
	}
}

func TestSetDeliveryStateUnknownEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE contacts").
		WithArgs("ghost@x.com", "failed").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewContactRepo(db)
	err = repo.SetDeliveryState(context.Background(), "ghost@x.com", domain.DeliveryFailed)
	if !errors.Is(err, dispatch.ErrContactNotFound) {
		t.Fatalf("err = %v, want ErrContactNotFound", err)
	}
}

func TestClaimRetry(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE contacts").
		WithArgs("ann@x.com").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE contacts").
		WithArgs("ann@x.com").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewContactRepo(db)

	claimed, err := repo.ClaimRetry(context.Background(), "ann@x.com")
	if err != nil {
		t.Fatalf("ClaimRetry: %v", err)
	}
	if !claimed {
		t.Error("claimed = false, want true when the row was failed")
	}

	claimed, err = repo.ClaimRetry(context.Background(), "ann@x.com")
	if err != nil {
		t.Fatalf("ClaimRetry: %v", err)
	}
	if claimed {
		t.Error("claimed = true, want false when another dispatcher won")
	}
}

func TestGetUnknownEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, email, full_name").
		WithArgs("ghost@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "full_name", "email_sent", "created_at", "updated_at"}))

	repo := NewContactRepo(db)
	_, err = repo.Get(context.Background(), "ghost@x.com")
	if !errors.Is(err, dispatch.ErrContactNotFound) {
		t.Fatalf("err = %v, want ErrContactNotFound", err)
	}
}
