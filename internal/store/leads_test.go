package store

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"brookside/internal/models"
)

func TestInquiryStoreLifecycle(t *testing.T) {
	db := testDB(t)
	s := NewInquiryStore(db)
	ctx := context.Background()

	email := "test-inq-" + uuid.NewString()[:8] + "@example.com"
	t.Cleanup(func() { cleanTable(t, db, "inquiries", "email", email) })

	created, err := s.Create(ctx, &models.Inquiry{
		ParentName:   "Jane Parent",
		Email:        email,
		ChildAge:     6,
		YearApplying: "2027",
		Campus:       models.CampusWestlands,
		Status:       models.InquiryStatusNew,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Status != models.InquiryStatusNew {
		t.Errorf("status: got %q, want new", created.Status)
	}

	moved, err := s.SetStatus(ctx, created.ID, models.InquiryStatusContacted)
	if err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if moved == nil || moved.Status != models.InquiryStatusContacted {
		t.Fatalf("got %+v, want contacted", moved)
	}

	missing, err := s.SetStatus(ctx, uuid.New(), models.InquiryStatusEnrolled)
	if err != nil {
		t.Fatalf("SetStatus (missing): %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown id")
	}

	contacted, err := s.List(ctx, models.InquiryStatusContacted)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	found := false
	for _, q := range contacted {
		if q.Email == email {
			found = true
		}
		if q.Status != models.InquiryStatusContacted {
			t.Errorf("status filter leaked %q", q.Status)
		}
	}
	if !found {
		t.Error("expected contacted inquiry in filtered list")
	}
}

func TestContactStoreLifecycle(t *testing.T) {
	db := testDB(t)
	s := NewContactStore(db)
	ctx := context.Background()

	email := "test-contact-" + uuid.NewString()[:8] + "@example.com"
	t.Cleanup(func() { cleanTable(t, db, "contacts", "email", email) })

	phone := "+254700000000"
	created, err := s.Create(ctx, &models.Contact{
		Name:    "John Caller",
		Email:   email,
		Phone:   &phone,
		Message: "When do admissions open?",
		Campus:  models.CampusRedhill,
		Status:  models.ContactStatusNew,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Phone == nil || *created.Phone != phone {
		t.Errorf("phone: got %v, want %q", created.Phone, phone)
	}

	responded, err := s.SetStatus(ctx, created.ID, models.ContactStatusResponded)
	if err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if responded == nil || responded.Status != models.ContactStatusResponded {
		t.Fatalf("got %+v, want responded", responded)
	}
}

func TestPaymentStoreCreateAndSum(t *testing.T) {
	db := testDB(t)
	s := NewPaymentStore(db)
	ctx := context.Background()

	name := "test-pay-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanTable(t, db, "payments", "parent_name", name) })

	before, err := s.SumAmounts(ctx)
	if err != nil {
		t.Fatalf("SumAmounts: %v", err)
	}

	purpose := "Term 1 fees"
	if _, err := s.Create(ctx, &models.Payment{
		ParentName: name,
		Amount:     1500.50,
		Currency:   "KES",
		Purpose:    &purpose,
		Campus:     models.CampusWestlands,
		Method:     models.PaymentMethodMpesa,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	after, err := s.SumAmounts(ctx)
	if err != nil {
		t.Fatalf("SumAmounts: %v", err)
	}
	if diff := after - before; diff < 1500.49 || diff > 1500.51 {
		t.Errorf("sum moved by %v, want 1500.50", diff)
	}
}

func TestSubscriberStoreUpsert(t *testing.T) {
	db := testDB(t)
	s := NewSubscriberStore(db)
	ctx := context.Background()

	email := "test-sub-" + uuid.NewString()[:8] + "@example.com"
	t.Cleanup(func() { cleanTable(t, db, "email_subscribers", "email", email) })

	footer := "footer"
	first, err := s.Upsert(ctx, &models.Subscriber{Email: email, Source: &footer})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	popup := "popup"
	second, err := s.Upsert(ctx, &models.Subscriber{Email: email, Source: &popup})
	if err != nil {
		t.Fatalf("Upsert (again): %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("re-subscribe created a new row: %s != %s", second.ID, first.ID)
	}
	if second.Source == nil || *second.Source != "popup" {
		t.Errorf("source: got %v, want popup", second.Source)
	}

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM email_subscribers WHERE email = $1", email).Scan(&n); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if n != 1 {
		t.Errorf("rows for %s: got %d, want 1", email, n)
	}
}
