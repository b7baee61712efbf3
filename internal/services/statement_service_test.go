package services

import (
	"testing"
	"time"

	"gulfacorns/internal/models"
	"gulfacorns/internal/testutil"
)

func TestGetStatement(t *testing.T) {
	t.Run("current_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStatementService(db, NewUserService(db))
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestPendingEntry(t, db, user.ID, "0.50", "USD")
		testutil.CreateTestPurchase(t, db, user.ID, "3.75", "0.25", "USD")
		testutil.CreateTestInvestLot(t, db, user.ID, "1.00", "USD")

		old := testutil.CreateTestPurchase(t, db, user.ID, "9.10", "0.90", "USD")
		db.Model(&models.Purchase{}).Where("id = ?", old.ID).
			Update("created_at", time.Now().AddDate(0, -2, 0))

		data, err := svc.GetStatement(user.ID, "")
		testutil.AssertNoError(t, err)

		if data.UserName != user.Name {
			t.Errorf("expected user name %q, got %q", user.Name, data.UserName)
		}
		if len(data.Purchases) != 2 {
			t.Errorf("expected 2 purchases this month, got %d", len(data.Purchases))
		}
		if len(data.Lots) != 1 {
			t.Errorf("expected 1 lot this month, got %d", len(data.Lots))
		}
		if len(data.RoundUps) != 1 {
			t.Fatalf("expected round-ups in 1 currency, got %d", len(data.RoundUps))
		}
		testutil.AssertDecimal(t, data.RoundUps[0].Amount, "0.75")
		if len(data.Pending) != 1 {
			t.Fatalf("expected pending in 1 currency, got %d", len(data.Pending))
		}
		testutil.AssertDecimal(t, data.Pending[0].Amount, "0.50")
	})

	t.Run("past_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStatementService(db, NewUserService(db))
		user := testutil.CreateTestUser(t, db)

		p := testutil.CreateTestPurchase(t, db, user.ID, "9.10", "0.90", "USD")
		march := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)
		db.Model(&models.Purchase{}).Where("id = ?", p.ID).Update("created_at", march)

		data, err := svc.GetStatement(user.ID, "2025-03")
		testutil.AssertNoError(t, err)
		if len(data.Purchases) != 1 {
			t.Errorf("expected 1 purchase in March, got %d", len(data.Purchases))
		}
		if data.Month.Month() != time.March {
			t.Errorf("expected March, got %s", data.Month.Month())
		}

		empty, err := svc.GetStatement(user.ID, "2025-04")
		testutil.AssertNoError(t, err)
		if len(empty.Purchases) != 0 {
			t.Errorf("expected no purchases in April, got %d", len(empty.Purchases))
		}
	})

	t.Run("invalid_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStatementService(db, NewUserService(db))
		user := testutil.CreateTestUser(t, db)

		_, err := svc.GetStatement(user.ID, "March")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStatementService(db, NewUserService(db))

		_, err := svc.GetStatement("0190a6e4-3b1c-7d2e-8f00-0123456789ab", "")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}
