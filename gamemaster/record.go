package gamemaster

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"reversi/game"

	"github.com/pkg/errors"
)

// Entry is one line of a game record: who moved and where.
type Entry struct {
	Player game.Player
	Move   game.Position
}

// Record coordinates are 0-based and counted from the bottom left corner:
// row 0 is the bottom row (Position row 8), col 0 the left column.
const lastCoordinate = game.MaxIndex - game.MinIndex

// ToCoordinates converts an interior position to record coordinates.
func ToCoordinates(p game.Position) (row, col int) {
	return game.MaxIndex - p.Row, p.Col - game.MinIndex
}

// FromCoordinates converts record coordinates to an interior position.
func FromCoordinates(row, col int) (game.Position, error) {
	if row < 0 || row > lastCoordinate || col < 0 || col > lastCoordinate {
		return game.NoMove, &CoordinateError{Row: row, Col: col}
	}
	return game.Position{Row: game.MaxIndex - row, Col: col + game.MinIndex}, nil
}

type CoordinateError struct {
	Row, Col int
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("coordinate is out of range(0-%d), row: %d, col: %d", lastCoordinate, e.Row, e.Col)
}

// String formats the entry as "<black|white> <row> <col>" in record
// coordinates, e.g. Black's opening d3 is "black 5 3".
func (e Entry) String() string {
	player, _ := e.Player.MarshalText()
	row, col := ToCoordinates(e.Move)
	return fmt.Sprintf("%s %d %d", player, row, col)
}

// Record is the list of moves of a game in the order they were played.
// Passes are implicit: a player appearing twice in a row means the other
// one had to pass.
type Record []Entry

func (r Record) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, e := range r {
		written, err := fmt.Fprintln(bw, e.String())
		n += int64(written)
		if err != nil {
			return n, errors.Wrap(err, "failed to write record entry")
		}
	}
	if err := bw.Flush(); err != nil {
		return n, errors.Wrap(err, "failed to flush record")
	}
	return n, nil
}

// LineError is a parse failure on a given line of a record.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ParseRecord reads a record written by Record.WriteTo. Blank lines and
// lines starting with '#' are skipped.
func ParseRecord(r io.Reader) (Record, error) {
	var record Record
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		entry, err := parseEntry(text)
		if err != nil {
			return nil, &LineError{Line: line, Err: err}
		}
		record = append(record, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read record")
	}
	return record, nil
}

func parseEntry(text string) (Entry, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return Entry{}, errors.Errorf("expected \"<player> <row> <col>\", got %q", text)
	}

	var player game.Player
	if err := player.UnmarshalText([]byte(fields[0])); err != nil {
		return Entry{}, err
	}

	row, err := strconv.Atoi(fields[1])
	if err != nil {
		return Entry{}, errors.Wrapf(err, "invalid row %q", fields[1])
	}
	col, err := strconv.Atoi(fields[2])
	if err != nil {
		return Entry{}, errors.Wrapf(err, "invalid col %q", fields[2])
	}
	pos, err := FromCoordinates(row, col)
	if err != nil {
		return Entry{}, err
	}

	return Entry{Player: player, Move: pos}, nil
}
