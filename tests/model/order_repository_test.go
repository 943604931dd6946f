package modeltest

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	entity "bazar.GO/model/entity"
	orderRepo "bazar.GO/model/repository/order"
)

func orderTestRepo(t *testing.T) *orderRepo.OrderRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	repo := orderRepo.NewOrderRepository(db)
	if err := repo.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repo
}

func TestOrderRepository_SaveAndList(t *testing.T) {
	repo := orderTestRepo(t)

	email := "rahim@example.com"
	log := entity.OrderLog{
		Name:    "Rahim Uddin",
		Phone:   "01712345678",
		Email:   &email,
		Address: "Mirpur, Dhaka",
		Payload: []byte(`[{"id":"fan-1","quantity":2}]`),
		Total:   5000,
	}
	if err := repo.Save(&log); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if log.OrderID == 0 {
		t.Error("OrderID should be assigned on save")
	}

	got, err := repo.List(10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("orders = %d, want 1", len(got))
	}
	if got[0].Total != 5000 || got[0].Name != "Rahim Uddin" {
		t.Errorf("order = %+v", got[0])
	}
	if got[0].Email == nil || *got[0].Email != email {
		t.Errorf("email = %v", got[0].Email)
	}
	if got[0].Message != nil {
		t.Error("absent message should stay NULL")
	}
}

func TestOrderRepository_ListNewestFirst(t *testing.T) {
	repo := orderTestRepo(t)

	for i, name := range []string{"first", "second"} {
		log := entity.OrderLog{
			Name:      name,
			Phone:     "017",
			Payload:   []byte(`[]`),
			CreatedAt: time.Now().Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Save(&log); err != nil {
			t.Fatal(err)
		}
	}

	got, err := repo.List(1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].Name != "second" {
		t.Errorf("List(1) = %+v, want the newest order", got)
	}
}
