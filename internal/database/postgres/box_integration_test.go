package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
)

func TestBoxRepository_Integration(t *testing.T) {
	ctx, pool := startTestDatabase(t)
	repo := NewBoxRepository(pool)

	newBox := func(name, slug string) *domain.Box {
		return &domain.Box{
			Name:     name,
			Slug:     slug,
			Price:    49.99,
			Category: "tech",
			Tags:     []string{"apple", "gadgets"},
			Provider: domain.ProviderRillaBox,
			Items: []domain.BoxItem{
				{Name: "AirPods Pro", Value: 249, DropChance: 5},
				{Name: "Phone Case", Value: 9.5, DropChance: 95},
			},
		}
	}

	t.Run("InsertAndGetBySlug", func(t *testing.T) {
		boxID, err := repo.Insert(ctx, newBox("Apple Hype Box", "apple-hype"))
		if err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
		if boxID == 0 {
			t.Error("expected non-zero box ID")
		}

		box, err := repo.GetBySlug(ctx, "apple-hype")
		if err != nil {
			t.Fatalf("GetBySlug failed: %v", err)
		}
		if box.Name != "Apple Hype Box" {
			t.Errorf("expected name Apple Hype Box, got %s", box.Name)
		}
		if len(box.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(box.Items))
		}
		// Prize table comes back most valuable first
		if box.Items[0].Name != "AirPods Pro" {
			t.Errorf("expected AirPods Pro first, got %s", box.Items[0].Name)
		}
		if len(box.Tags) != 2 || box.Tags[0] != "apple" {
			t.Errorf("unexpected tags: %v", box.Tags)
		}
	})

	t.Run("DuplicateSlugRejected", func(t *testing.T) {
		_, err := repo.Insert(ctx, newBox("Apple Hype Box Copy", "apple-hype"))
		if !errorsIsSlugTaken(err) {
			t.Errorf("expected ErrSlugTaken, got %v", err)
		}
	})

	t.Run("GetByIDNotFound", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 999999)
		if err != domain.ErrBoxNotFound {
			t.Errorf("expected ErrBoxNotFound, got %v", err)
		}
	})

	t.Run("FilterAndSort", func(t *testing.T) {
		cheap := newBox("Budget Box", "budget-box")
		cheap.Price = 4.99
		cheap.Category = "budget"
		cheap.Published = true
		if _, err := repo.Insert(ctx, cheap); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}

		boxes, err := repo.GetAll(ctx, domain.BoxFilter{Category: "budget"})
		if err != nil {
			t.Fatalf("GetAll failed: %v", err)
		}
		if len(boxes) != 1 || boxes[0].Slug != "budget-box" {
			t.Errorf("expected only budget-box, got %v", boxes)
		}

		boxes, err = repo.GetAll(ctx, domain.BoxFilter{SortBy: domain.SortByPriceAsc})
		if err != nil {
			t.Fatalf("GetAll failed: %v", err)
		}
		if len(boxes) < 2 {
			t.Fatalf("expected at least 2 boxes, got %d", len(boxes))
		}
		if boxes[0].Price > boxes[1].Price {
			t.Errorf("expected ascending price order, got %v then %v", boxes[0].Price, boxes[1].Price)
		}
	})

	t.Run("ReplaceItems", func(t *testing.T) {
		boxID, err := repo.Insert(ctx, newBox("Swap Box", "swap-box"))
		if err != nil {
			t.Fatalf("Insert failed: %v", err)
		}

		err = repo.ReplaceItems(ctx, boxID, []domain.BoxItem{
			{Name: "Sticker", Value: 0.5, DropChance: 100},
		})
		if err != nil {
			t.Fatalf("ReplaceItems failed: %v", err)
		}

		box, err := repo.GetByID(ctx, boxID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if len(box.Items) != 1 || box.Items[0].Name != "Sticker" {
			t.Errorf("expected single Sticker item, got %v", box.Items)
		}

		if err := repo.ReplaceItems(ctx, 999999, nil); err != domain.ErrBoxNotFound {
			t.Errorf("expected ErrBoxNotFound, got %v", err)
		}
	})

	t.Run("GetAllNames", func(t *testing.T) {
		names, err := repo.GetAllNames(ctx)
		if err != nil {
			t.Fatalf("GetAllNames failed: %v", err)
		}
		if names["Apple Hype Box"] != "apple-hype" {
			t.Errorf("expected apple-hype for Apple Hype Box, got %s", names["Apple Hype Box"])
		}
	})

	t.Run("Delete", func(t *testing.T) {
		boxID, err := repo.Insert(ctx, newBox("Doomed Box", "doomed-box"))
		if err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
		if err := repo.Delete(ctx, boxID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := repo.GetByID(ctx, boxID); err != domain.ErrBoxNotFound {
			t.Errorf("expected ErrBoxNotFound after delete, got %v", err)
		}
	})
}

func TestOperatorRepository_Integration(t *testing.T) {
	ctx, pool := startTestDatabase(t)
	repo := NewOperatorRepository(pool)

	op := &domain.Operator{
		ID:     uuid.NewString(),
		Name:   "RillaBox",
		Slug:   "rillabox",
		Status: domain.StatusDraft,
		Rating: 8.5,
	}

	t.Run("InsertAndGet", func(t *testing.T) {
		if err := repo.Insert(ctx, op); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}

		got, err := repo.GetByID(ctx, op.ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if got.Name != "RillaBox" || got.Status != domain.StatusDraft {
			t.Errorf("unexpected operator: %+v", got)
		}

		got, err = repo.GetBySlug(ctx, "rillabox")
		if err != nil {
			t.Fatalf("GetBySlug failed: %v", err)
		}
		if got.ID != op.ID {
			t.Errorf("expected ID %s, got %s", op.ID, got.ID)
		}
	})

	t.Run("GetDuePublish", func(t *testing.T) {
		past := time.Now().Add(-time.Hour)
		scheduled := &domain.Operator{
			ID:        uuid.NewString(),
			Name:      "HypeDrop",
			Slug:      "hypedrop",
			Status:    domain.StatusScheduled,
			PublishAt: &past,
		}
		if err := repo.Insert(ctx, scheduled); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}

		due, err := repo.GetDuePublish(ctx, time.Now())
		if err != nil {
			t.Fatalf("GetDuePublish failed: %v", err)
		}
		if len(due) != 1 || due[0].Slug != "hypedrop" {
			t.Errorf("expected hypedrop due for publish, got %v", due)
		}
	})

	t.Run("GetAllPublishedOnly", func(t *testing.T) {
		op.Status = domain.StatusPublished
		if err := repo.Update(ctx, op); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		published, err := repo.GetAll(ctx, true)
		if err != nil {
			t.Fatalf("GetAll failed: %v", err)
		}
		if len(published) != 1 || published[0].Slug != "rillabox" {
			t.Errorf("expected only rillabox published, got %v", published)
		}
	})

	t.Run("UpdateNotFound", func(t *testing.T) {
		ghost := &domain.Operator{ID: uuid.NewString(), Name: "Ghost", Slug: "ghost"}
		if err := repo.Update(ctx, ghost); err != domain.ErrOperatorNotFound {
			t.Errorf("expected ErrOperatorNotFound, got %v", err)
		}
	})
}

func TestContentRepository_Integration(t *testing.T) {
	ctx, pool := startTestDatabase(t)
	operators := NewOperatorRepository(pool)
	repo := NewContentRepository(pool)

	operatorID := uuid.NewString()
	err := operators.Insert(ctx, &domain.Operator{
		ID: operatorID, Name: "Cases.GG", Slug: "casesgg", Status: domain.StatusDraft,
	})
	if err != nil {
		t.Fatalf("operator Insert failed: %v", err)
	}

	intro, err := repo.Insert(ctx, &domain.ContentBlock{
		OperatorID: operatorID,
		Type:       domain.BlockTypeText,
		Heading:    "Overview",
		Payload:    []byte(`{"body":"An established operator."}`),
		Position:   0,
	})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	faq, err := repo.Insert(ctx, &domain.ContentBlock{
		OperatorID: operatorID,
		Type:       domain.BlockTypeFAQ,
		Payload:    []byte(`{"entries":[{"question":"Legit?","answer":"Yes"}]}`),
		Position:   1,
	})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	t.Run("GetByOperatorOrdered", func(t *testing.T) {
		blocks, err := repo.GetByOperator(ctx, operatorID)
		if err != nil {
			t.Fatalf("GetByOperator failed: %v", err)
		}
		if len(blocks) != 2 {
			t.Fatalf("expected 2 blocks, got %d", len(blocks))
		}
		if blocks[0].ID != intro || blocks[1].ID != faq {
			t.Errorf("unexpected block order: %v then %v", blocks[0].ID, blocks[1].ID)
		}
	})

	t.Run("Reorder", func(t *testing.T) {
		if err := repo.Reorder(ctx, operatorID, []int{faq, intro}); err != nil {
			t.Fatalf("Reorder failed: %v", err)
		}
		blocks, err := repo.GetByOperator(ctx, operatorID)
		if err != nil {
			t.Fatalf("GetByOperator failed: %v", err)
		}
		if blocks[0].ID != faq {
			t.Errorf("expected FAQ block first after reorder, got %v", blocks[0].ID)
		}
	})

	t.Run("CascadeOnOperatorDelete", func(t *testing.T) {
		if err := operators.Delete(ctx, operatorID); err != nil {
			t.Fatalf("operator Delete failed: %v", err)
		}
		blocks, err := repo.GetByOperator(ctx, operatorID)
		if err != nil {
			t.Fatalf("GetByOperator failed: %v", err)
		}
		if len(blocks) != 0 {
			t.Errorf("expected no blocks after operator delete, got %d", len(blocks))
		}
	})
}

func TestSyncMetadataRepository_Integration(t *testing.T) {
	ctx, pool := startTestDatabase(t)
	repo := NewSyncMetadataRepository(pool)

	meta := &domain.SyncMetadata{
		Provider:     domain.ProviderHypeDrop,
		LastSyncedAt: time.Now().UTC().Truncate(time.Second),
		RowsImported: 120,
		RowsRejected: 3,
		SourceFile:   "hypedrop-2026-08.csv",
	}

	if err := repo.Upsert(ctx, meta); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	got, err := repo.Get(ctx, domain.ProviderHypeDrop)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.RowsImported != 120 || got.SourceFile != "hypedrop-2026-08.csv" {
		t.Errorf("unexpected metadata: %+v", got)
	}

	meta.RowsImported = 200
	if err := repo.Upsert(ctx, meta); err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}
	got, err = repo.Get(ctx, domain.ProviderHypeDrop)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.RowsImported != 200 {
		t.Errorf("expected 200 rows imported after upsert, got %d", got.RowsImported)
	}

	if _, err := repo.Get(ctx, "unknown"); err != domain.ErrInvalidProvider {
		t.Errorf("expected ErrInvalidProvider, got %v", err)
	}
}

func errorsIsSlugTaken(err error) bool {
	return errors.Is(err, domain.ErrSlugTaken)
}
