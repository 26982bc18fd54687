package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
)

var emptyBoard = [...]string{
	"   |   |   ",
	"---|---|---",
	"   |   |   ",
	"---|---|---",
	"   |   |   ",
}

type lineResult struct {
	line string
	err  error
}

// Console is the terminal front end: it prints announcements and boards and
// reads one line of input at a time.
type Console struct {
	in  io.Reader
	out io.Writer

	once  sync.Once
	lines chan lineResult
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:    in,
		out:   out,
		lines: make(chan lineResult),
	}
}

func (that *Console) Announce(msg string) {
	fmt.Fprintln(that.out, msg)
}

func (that *Console) Prompt(msg string) {
	fmt.Fprint(that.out, msg)
}

// ReadLine blocks until a line is typed or ctx is done. The reader goroutine
// is started on first use and outlives a canceled call.
func (that *Console) ReadLine(ctx context.Context) (string, error) {
	that.once.Do(func() {
		go that.readLoop()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	}
}

func (that *Console) readLoop() {
	defer close(that.lines)

	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		that.lines <- lineResult{line: scanner.Text()}
	}

	if err := scanner.Err(); err != nil {
		that.lines <- lineResult{err: fmt.Errorf("failed to read input: %w", err)}
	}
}

// ShowBoard prints the moves so far and the board.
func (that *Console) ShowBoard(game *entity.Game) {
	var sb strings.Builder
	sb.WriteString("Total Moves: ")
	for _, cell := range game.Record.Cells() {
		sb.WriteString(cell.String())
		sb.WriteString(" ")
	}
	fmt.Fprintln(that.out, sb.String())

	for _, row := range Board(game.Marks()) {
		fmt.Fprintln(that.out, row)
	}
}

// Board renders marks, indexed by code-1, into the five text rows.
func Board(marks [entity.MaxMoves]string) []string {
	rows := make([][]byte, len(emptyBoard))
	for i, row := range emptyBoard {
		rows[i] = []byte(row)
	}

	for i, mark := range marks {
		if mark == entity.EmptyCell {
			continue
		}

		row, col := entity.Decode(entity.Code(i + 1))
		rows[(row-1)*2][1+(col-1)*4] = mark[0]
	}

	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = string(row)
	}

	return out
}
