package store

import (
	"testing"
)

func TestAddAndFindOwner(t *testing.T) {
	s := newTestStore(t)

	owner := s.AddOwner("Harry Potter")
	if owner.ID != 1 {
		t.Errorf("expected id 1, got %d", owner.ID)
	}
	if owner.Name != "Harry Potter" {
		t.Errorf("expected name 'Harry Potter', got %q", owner.Name)
	}
	if owner.ItemIDs == nil || len(owner.ItemIDs) != 0 {
		t.Errorf("expected empty item set, got %v", owner.ItemIDs)
	}

	got, ok := s.FindOwnerByID(owner.ID)
	if !ok {
		t.Fatal("expected owner to be found")
	}
	if got.Name != "Harry Potter" {
		t.Errorf("expected name 'Harry Potter', got %q", got.Name)
	}

	if _, ok := s.FindOwnerByID(99); ok {
		t.Error("expected unknown owner not to be found")
	}
}

func TestFindAllOwnersOrderedByID(t *testing.T) {
	s := newTestStore(t)
	s.AddOwner("Ron")
	s.AddOwner("Ginny")
	s.AddOwner("Luna")

	all := s.FindAllOwners()
	if len(all) != 3 {
		t.Fatalf("expected 3 owners, got %d", len(all))
	}
	for i, o := range all {
		if o.ID != int64(i+1) {
			t.Errorf("position %d: expected id %d, got %d", i, i+1, o.ID)
		}
	}
}

func TestOwnerSnapshotsAreCopies(t *testing.T) {
	s := newTestStore(t)
	owner := s.AddOwner("Neville")
	item := s.AddItem(ptr("Remembrall"), ptr("Glows red"))
	s.AssignItemToOwner(owner.ID, item.ID)

	got, _ := s.FindOwnerByID(owner.ID)
	got.ItemIDs[0] = 42
	got.Name = "changed"

	again, _ := s.FindOwnerByID(owner.ID)
	if again.ItemIDs[0] != item.ID || again.Name != "Neville" {
		t.Errorf("store state changed through a snapshot: %+v", again)
	}
}

func TestUpdateOwner(t *testing.T) {
	s := newTestStore(t)
	owner := s.AddOwner("Tom")

	updated, err := s.UpdateOwner(owner.ID, "Voldemort")
	if err != nil {
		t.Fatalf("UpdateOwner: %v", err)
	}
	if updated.Name != "Voldemort" {
		t.Errorf("expected name 'Voldemort', got %q", updated.Name)
	}

	_, err = s.UpdateOwner(99, "Nobody")
	if !IsNotFound(err) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestDeleteOwnerReleasesItems(t *testing.T) {
	s := newTestStore(t)
	owner := s.AddOwner("Dumbledore")
	wand := s.AddItem(ptr("Elder Wand"), ptr("Unbeatable"))
	stone := s.AddItem(ptr("Resurrection Stone"), ptr("Black stone"))
	s.AssignItemToOwner(owner.ID, wand.ID)
	s.AssignItemToOwner(owner.ID, stone.ID)

	s.DeleteOwner(owner.ID)

	if _, ok := s.FindOwnerByID(owner.ID); ok {
		t.Error("expected owner to be removed")
	}
	if n := len(s.FindAllItems()); n != 2 {
		t.Fatalf("expected both items to remain, got %d", n)
	}
	for _, it := range s.FindAllItems() {
		if it.Owned() {
			t.Errorf("item %d still owned by %d", it.ID, it.OwnerID)
		}
	}
	if n := len(s.UnassignedItems()); n != 2 {
		t.Errorf("expected 2 unassigned items, got %d", n)
	}
	checkConsistency(t, s)
}

func TestDeleteUnknownOwnerIsNoop(t *testing.T) {
	s := newTestStore(t)
	s.AddOwner("Sirius")

	s.DeleteOwner(42)

	if n := len(s.FindAllOwners()); n != 1 {
		t.Errorf("expected 1 owner, got %d", n)
	}
}

func TestOwnerIDsNeverReused(t *testing.T) {
	s := newTestStore(t)
	a := s.AddOwner("A")
	b := s.AddOwner("B")
	s.DeleteOwner(b.ID)
	s.DeleteOwner(a.ID)

	c := s.AddOwner("C")
	if c.ID != 3 {
		t.Errorf("expected id 3 after deletions, got %d", c.ID)
	}
}
