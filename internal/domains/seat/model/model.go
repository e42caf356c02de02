package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	idSeparator = ":"
	idParts     = 3
)

var ErrInvalidSeatID = errors.New("invalid seat id")

// Seat is a position in a room grid. Row and number are zero based.
type Seat struct {
	RoomID string
	Row    int
	Number int
}

// ID renders the seat as "<room_id>:<row>:<number>".
func (s Seat) ID() string {
	return strings.Join([]string{s.RoomID, strconv.Itoa(s.Row), strconv.Itoa(s.Number)}, idSeparator)
}

// In reports whether the seat exists in the given room geometry.
func (s Seat) In(roomID string, rowsCount, seatsPerRowCount int) bool {
	return s.RoomID == roomID &&
		s.Row >= 0 && s.Row < rowsCount &&
		s.Number >= 0 && s.Number < seatsPerRowCount
}

func ParseID(id string) (Seat, error) {
	parts := strings.Split(id, idSeparator)
	if len(parts) != idParts || parts[0] == "" {
		return Seat{}, fmt.Errorf("%w: %q", ErrInvalidSeatID, id)
	}

	row, err := strconv.Atoi(parts[1])
	if err != nil || row < 0 {
		return Seat{}, fmt.Errorf("%w: bad row in %q", ErrInvalidSeatID, id)
	}

	number, err := strconv.Atoi(parts[2])
	if err != nil || number < 0 {
		return Seat{}, fmt.Errorf("%w: bad number in %q", ErrInvalidSeatID, id)
	}

	return Seat{RoomID: parts[0], Row: row, Number: number}, nil
}

// Of lists every seat of a room, row by row.
func Of(roomID string, rowsCount, seatsPerRowCount int) []Seat {
	if rowsCount <= 0 || seatsPerRowCount <= 0 {
		return []Seat{}
	}

	seats := make([]Seat, 0, rowsCount*seatsPerRowCount)

	for row := range rowsCount {
		for number := range seatsPerRowCount {
			seats = append(seats, Seat{RoomID: roomID, Row: row, Number: number})
		}
	}

	return seats
}

// Available returns the seats of all that are not in reserved, keeping the order of all.
func Available(all, reserved []Seat) []Seat {
	taken := make(map[Seat]struct{}, len(reserved))
	for _, seat := range reserved {
		taken[seat] = struct{}{}
	}

	available := make([]Seat, 0, len(all))

	for _, seat := range all {
		if _, ok := taken[seat]; !ok {
			available = append(available, seat)
		}
	}

	return available
}
