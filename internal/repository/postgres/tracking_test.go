package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestInsertOpenNewPair(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO tracking_events").
		WithArgs(sqlmock.AnyArg(), "camp1", "a@x.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewTrackingRepo(db)
	inserted, err := repo.InsertOpen(context.Background(), "camp1", "a@x.com")
	if err != nil {
		t.Fatalf("InsertOpen: %v", err)
	}
	if !inserted {
		t.Fatal("inserted = false, want true for a new pair")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestInsertOpenDuplicateIsNoop(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	// ON CONFLICT DO NOTHING reports zero rows affected for a duplicate.
	mock.ExpectExec("INSERT INTO tracking_events").
		WithArgs(sqlmock.AnyArg(), "camp1", "a@x.com").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewTrackingRepo(db)
	inserted, err := repo.InsertOpen(context.Background(), "camp1", "a@x.com")
	if err != nil {
		t.Fatalf("InsertOpen: %v", err)
	}
	if inserted {
		t.Fatal("inserted = true, want false for a duplicate pair")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestInsertClick(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO tracking_events").
		WithArgs(sqlmock.AnyArg(), "camp1", "a@x.com", "part42").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewTrackingRepo(db)
	if err := repo.InsertClick(context.Background(), "camp1", "a@x.com", "part42"); err != nil {
		t.Fatalf("InsertClick: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestListEventsFiltered(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "campaign_id", "customer_email", "event_type", "part_id", "created_at"}).
		AddRow("id1", "camp1", "a@x.com", "click", "part42", now).
		AddRow("id2", "camp1", "a@x.com", "open", "", now)
	mock.ExpectQuery("SELECT id, campaign_id, customer_email").
		WithArgs("camp1", 10).
		WillReturnRows(rows)

	repo := NewTrackingRepo(db)
	events, err := repo.ListEvents(context.Background(), "camp1", 10)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	if events[0].PartID != "part42" {
		t.Fatalf("part_id = %q, want part42", events[0].PartID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCampaignStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"campaign_id", "opens", "clicks", "uopens", "uclicks"}).
		AddRow("camp1", 10, 4, 8, 3)
	mock.ExpectQuery("SELECT campaign_id").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(rows)

	repo := NewTrackingRepo(db)
	stats, err := repo.CampaignStats(context.Background(), time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("CampaignStats: %v", err)
	}
	if len(stats) != 1 || stats[0].OpenCount != 10 || stats[0].UniqueClicks != 3 {
		t.Fatalf("stats = %+v", stats)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
