package office

import (
	"fmt"
	"strings"
	"testing"
)

func TestDefaultFixture(t *testing.T) {
	l := Default()
	if l.Floor != 14 {
		t.Fatalf("expected floor 14, got %d", l.Floor)
	}
	if l.RoomCount() != 18 {
		t.Fatalf("expected 18 rooms, got %d", l.RoomCount())
	}
	cats := l.Categories()
	if len(cats) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(cats))
	}
	want := []string{"Reception", "Conference Rooms", "Team Pods", "Private Offices", "Common Areas"}
	for i, cat := range cats {
		if cat.Name != want[i] {
			t.Fatalf("category[%d] = %s, want %s", i, cat.Name, want[i])
		}
	}
}

func TestTotalCapacityIsSumOfRooms(t *testing.T) {
	l := Default()
	sum := 0
	for _, cat := range l.Categories() {
		for _, room := range l.CategoryRooms(cat.Name) {
			sum += room.Capacity
		}
	}
	if got := l.TotalCapacity(); got != sum {
		t.Fatalf("TotalCapacity() = %d, want %d", got, sum)
	}
}

func TestRoomLookup(t *testing.T) {
	l := Default()
	room, ok := l.Room("The War Room")
	if !ok {
		t.Fatalf("expected to find The War Room")
	}
	if room.Capacity != 15 {
		t.Fatalf("expected capacity 15, got %d", room.Capacity)
	}
	if _, ok := l.Room("Rooftop Bar"); ok {
		t.Fatalf("unexpected room")
	}
}

func TestAssignIsCapacityGated(t *testing.T) {
	l := Default()
	room, _ := l.Room("Reception")
	for i := 0; i < room.Capacity; i++ {
		if !l.Assign(fmt.Sprintf("Visitor %d", i), "Reception") {
			t.Fatalf("assignment %d should fit, capacity %d", i, room.Capacity)
		}
	}
	if l.Assign("One Too Many", "Reception") {
		t.Fatalf("expected assignment past capacity to fail")
	}
	if len(room.Occupants) != room.Capacity {
		t.Fatalf("occupants %d exceed capacity %d", len(room.Occupants), room.Capacity)
	}
}

func TestAssignUnknownRoom(t *testing.T) {
	l := Default()
	if l.Assign("Anyone", "Broom Closet") {
		t.Fatalf("expected assignment to unknown room to fail")
	}
}

func TestCategoryRoomsOrder(t *testing.T) {
	l := Default()
	pods := l.CategoryRooms("Team Pods")
	if len(pods) != 6 {
		t.Fatalf("expected 6 team pods, got %d", len(pods))
	}
	if pods[0].Name != "Frontend Team Pod" || pods[5].Name != "Design Studio" {
		t.Fatalf("unexpected pod ordering: %s ... %s", pods[0].Name, pods[5].Name)
	}
	if got := l.CategoryRooms("Dungeons"); got != nil {
		t.Fatalf("unknown category should resolve to nothing")
	}
}

func TestParseLayoutYAMLValidation(t *testing.T) {
	if _, err := ParseLayoutYAML([]byte(" ")); err == nil {
		t.Fatalf("expected empty payload to fail")
	}
	zeroCap := `floor: 1
categories:
  - name: Odd Spaces
    rooms:
      - name: Void
        capacity: 0
`
	if _, err := ParseLayoutYAML([]byte(zeroCap)); err == nil || !strings.Contains(err.Error(), "capacity") {
		t.Fatalf("expected capacity error, got %v", err)
	}
	dup := `floor: 1
categories:
  - name: A
    rooms:
      - name: Twin Room
        capacity: 2
  - name: B
    rooms:
      - name: Twin Room
        capacity: 2
`
	if _, err := ParseLayoutYAML([]byte(dup)); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate room error, got %v", err)
	}
}
