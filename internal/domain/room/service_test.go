package room

import (
	"context"
	"strings"
	"testing"
)

type mockRepo struct {
	rooms  []*Room
	nextID int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{nextID: 1}
}

func (m *mockRepo) Create(_ context.Context, r *Room) error {
	r.ID = m.nextID
	m.nextID++
	r.Occupied = false
	r.OccupiedBy = 0
	cp := *r
	m.rooms = append(m.rooms, &cp)
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*Room, error) {
	for _, r := range m.rooms {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepo) List(_ context.Context) ([]*Room, error) {
	out := make([]*Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockRepo) SearchByName(_ context.Context, name string) ([]*Room, error) {
	var out []*Room
	for _, r := range m.rooms {
		if strings.Contains(r.Name, name) {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockRepo) SetOccupancy(_ context.Context, roomID, patientID int64) error {
	for _, r := range m.rooms {
		if r.ID == roomID {
			r.OccupiedBy = patientID
			r.Occupied = patientID != 0
			return nil
		}
	}
	return ErrNotFound
}

func (m *mockRepo) Delete(_ context.Context, id int64) error {
	for i, r := range m.rooms {
		if r.ID == id {
			m.rooms = append(m.rooms[:i], m.rooms[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func TestCreateRoom(t *testing.T) {
	svc := NewService(newMockRepo())
	ctx := context.Background()

	r := &Room{Name: "White Room", Size: 2}
	if err := svc.CreateRoom(ctx, r); err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if r.ID != 1 {
		t.Errorf("expected id 1, got %d", r.ID)
	}

	got, err := svc.GetRoom(ctx, r.ID)
	if err != nil {
		t.Fatalf("GetRoom: %v", err)
	}
	if got.Occupied || got.OccupiedBy != 0 {
		t.Errorf("new room must start empty, got %+v", got)
	}
}

func TestCreateRoomValidation(t *testing.T) {
	svc := NewService(newMockRepo())
	ctx := context.Background()

	if err := svc.CreateRoom(ctx, &Room{Size: 2}); err == nil {
		t.Error("expected error for missing name")
	}
	if err := svc.CreateRoom(ctx, &Room{Name: "White Room"}); err == nil {
		t.Error("expected error for zero size")
	}
	if err := svc.CreateRoom(ctx, &Room{Name: "White Room", Size: -1}); err == nil {
		t.Error("expected error for negative size")
	}
}

func TestSearchRoomsByName(t *testing.T) {
	svc := NewService(newMockRepo())
	ctx := context.Background()

	for _, name := range []string{"White Room", "Blue Room", "ICU"} {
		if err := svc.CreateRoom(ctx, &Room{Name: name, Size: 1}); err != nil {
			t.Fatalf("CreateRoom %q: %v", name, err)
		}
	}

	got, err := svc.SearchRoomsByName(ctx, "Room")
	if err != nil {
		t.Fatalf("SearchRoomsByName: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 matches, got %d", len(got))
	}

	// Empty query matches every room.
	got, err = svc.SearchRoomsByName(ctx, "")
	if err != nil {
		t.Fatalf("SearchRoomsByName: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 matches, got %d", len(got))
	}
}

func TestGetRoomNotFound(t *testing.T) {
	svc := NewService(newMockRepo())
	if _, err := svc.GetRoom(context.Background(), 99); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
