package pagination_test

import (
	"testing"

	"gulfacorns/internal/models"
	"gulfacorns/internal/pagination"
	"gulfacorns/internal/testutil"
)

func TestPageRequest_Defaults(t *testing.T) {
	tests := []struct {
		name     string
		in       pagination.PageRequest
		wantPage int
		wantSize int
	}{
		{"zero_values", pagination.PageRequest{}, 1, 20},
		{"keeps_valid", pagination.PageRequest{Page: 3, PageSize: 5}, 3, 5},
		{"clamps_large_size", pagination.PageRequest{Page: 1, PageSize: 500}, 1, 100},
		{"negative_page", pagination.PageRequest{Page: -2, PageSize: 10}, 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			p.Defaults()
			if p.Page != tt.wantPage || p.PageSize != tt.wantSize {
				t.Errorf("got page %d size %d, want page %d size %d", p.Page, p.PageSize, tt.wantPage, tt.wantSize)
			}
		})
	}

	p := pagination.PageRequest{Page: 3, PageSize: 5}
	if p.Offset() != 10 {
		t.Errorf("expected offset 10, got %d", p.Offset())
	}
}

func TestNewPageResponse(t *testing.T) {
	t.Run("computes_total_pages", func(t *testing.T) {
		resp := pagination.NewPageResponse([]int{1, 2}, 1, 2, 5)
		if resp.TotalPages != 3 {
			t.Errorf("expected 3 pages, got %d", resp.TotalPages)
		}
	})

	t.Run("nil_data_becomes_empty", func(t *testing.T) {
		resp := pagination.NewPageResponse[int](nil, 1, 20, 0)
		if resp.Data == nil || len(resp.Data) != 0 {
			t.Errorf("expected empty non-nil slice, got %v", resp.Data)
		}
		if resp.TotalPages != 0 {
			t.Errorf("expected 0 pages, got %d", resp.TotalPages)
		}
	})
}

func TestFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)

	var created []*models.Purchase
	for _, amount := range []string{"1.10", "2.20", "3.30"} {
		created = append(created, testutil.CreateTestPurchase(t, db, user.ID, amount, "0.90", "USD"))
	}
	testutil.CreateTestPurchase(t, db, other.ID, "9.99", "0.01", "USD")

	query := db.Model(&models.Purchase{}).Where("user_id = ?", user.ID)

	first, err := pagination.Find[models.Purchase](query, pagination.PageRequest{Page: 1, PageSize: 2})
	testutil.AssertNoError(t, err)
	if first.TotalItems != 3 || first.TotalPages != 2 {
		t.Fatalf("expected 3 items over 2 pages, got %d over %d", first.TotalItems, first.TotalPages)
	}
	if len(first.Data) != 2 || first.Data[0].ID != created[2].ID {
		t.Errorf("expected newest purchase first, got %+v", first.Data)
	}

	second, err := pagination.Find[models.Purchase](query, pagination.PageRequest{Page: 2, PageSize: 2})
	testutil.AssertNoError(t, err)
	if len(second.Data) != 1 || second.Data[0].ID != created[0].ID {
		t.Errorf("expected oldest purchase on page 2, got %+v", second.Data)
	}
}
