// internal/office/layout.go
//
// The office layout owns the 14th-floor room catalogue: lookup by name,
// category listing for display, and the single capacity-gated assignment
// operation. Occupancy is tracked by employee name only; the layout never
// reaches back into the roster.

package office

import "strings"

// Room is one space on the floor. Occupants are appended in assignment
// order and only the Assign gate keeps their count at or under capacity.
type Room struct {
	Name      string
	Capacity  int
	Amenities []string
	Occupants []string
}

// Full reports whether the room has no seats left.
func (r *Room) Full() bool {
	return len(r.Occupants) >= r.Capacity
}

// Category groups rooms for display: reception, conference rooms, team
// pods, private offices, common areas.
type Category struct {
	Name  string
	Rooms []string
}

// Layout is the room catalogue plus the category ordering used by every
// floor-plan view.
type Layout struct {
	Floor      int
	rooms      map[string]*Room
	categories []Category
}

// Room returns the named room, or false when the floor has no such space.
// Lookup is exact; room names are display strings, not user input.
func (l *Layout) Room(name string) (*Room, bool) {
	room, ok := l.rooms[name]
	return room, ok
}

// Assign seats an employee in the named room. It fails when the room is
// unknown or already at capacity; the caller decides what to do about a
// seatless employee.
func (l *Layout) Assign(employeeName, roomName string) bool {
	room, ok := l.rooms[roomName]
	if !ok || room.Full() {
		return false
	}
	room.Occupants = append(room.Occupants, employeeName)
	return true
}

// RoomCount returns how many rooms the floor has.
func (l *Layout) RoomCount() int {
	return len(l.rooms)
}

// TotalCapacity sums every room's capacity.
func (l *Layout) TotalCapacity() int {
	total := 0
	for _, room := range l.rooms {
		total += room.Capacity
	}
	return total
}

// Categories returns the display grouping in fixture order.
func (l *Layout) Categories() []Category {
	return l.categories
}

// CategoryRooms resolves one category's rooms in fixture order. Unknown
// categories resolve to nothing.
func (l *Layout) CategoryRooms(categoryName string) []*Room {
	for _, cat := range l.categories {
		if strings.EqualFold(cat.Name, categoryName) {
			rooms := make([]*Room, 0, len(cat.Rooms))
			for _, name := range cat.Rooms {
				if room, ok := l.rooms[name]; ok {
					rooms = append(rooms, room)
				}
			}
			return rooms
		}
	}
	return nil
}
