package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// almostFull is a 7x6 board with one free cell in column 6 and no line of four
var almostFull = []string{
	"ABABAB.",
	"ABBBAAB",
	"AABABAB",
	"BABBAAA",
	"BAABABA",
	"ABBBABA",
}

func emptyRows(height int, rows ...string) []string {
	out := make([]string, 0, height)
	for len(out)+len(rows) < height {
		out = append(out, ".......")
	}
	return append(out, rows...)
}

func mustFromRows(t *testing.T, lineLength int, rows ...string) *Board {
	t.Helper()
	b, err := FromRows(lineLength, rows...)
	require.NoError(t, err, "Rows should describe a valid board")
	return b
}

func TestDrop(t *testing.T) {
	t.Run("dropping into an empty column fills the bottom row", func(t *testing.T) {
		b := NewBoard(7, 6, 4)

		next, err := b.Drop(3)

		require.NoError(t, err)
		require.Equal(t, PlayerA, next.At(0, 3), "Token should settle on row 0")
		require.Equal(t, PlayerB, next.ToMove(), "Turn should pass to side B")
		require.Equal(t, 1, next.Pieces())
		require.Equal(t, 0, next.Top(3))
	})

	t.Run("dropping stacks on top of existing tokens", func(t *testing.T) {
		b := NewBoard(7, 6, 4)
		b, _ = b.Drop(2)
		b, _ = b.Drop(2)

		next, err := b.Drop(2)

		require.NoError(t, err)
		require.Equal(t, PlayerA, next.At(0, 2))
		require.Equal(t, PlayerB, next.At(1, 2))
		require.Equal(t, PlayerA, next.At(2, 2), "Token should settle above the previous two")
	})

	t.Run("dropping does not mutate the input board", func(t *testing.T) {
		b := NewBoard(7, 6, 4)

		_, err := b.Drop(0)

		require.NoError(t, err)
		require.Equal(t, Empty, b.At(0, 0), "Parent board should keep its empty cell")
		require.Equal(t, PlayerA, b.ToMove(), "Parent board should keep its side to move")
		require.Equal(t, 0, b.Pieces())
	})

	t.Run("dropping out of range is an illegal move", func(t *testing.T) {
		b := NewBoard(7, 6, 4)

		for _, col := range []int{-1, 7, 100} {
			next, err := b.Drop(col)

			require.ErrorIs(t, err, ErrIllegalMove, "Column %d should be rejected", col)
			require.Nil(t, next)
		}
	})

	t.Run("dropping into a full column is an illegal move", func(t *testing.T) {
		b := NewBoard(3, 2, 3)
		b, _ = b.Drop(1)
		b, _ = b.Drop(1)

		next, err := b.Drop(1)

		require.ErrorIs(t, err, ErrIllegalMove, "Full column should be rejected")
		require.Nil(t, next)
	})
}

func TestFreeColumns(t *testing.T) {
	t.Run("empty board has every column free in ascending order", func(t *testing.T) {
		require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, NewBoard(7, 6, 4).FreeColumns())
	})

	t.Run("full columns are left out", func(t *testing.T) {
		b := mustFromRows(t, 4, almostFull...)

		require.Equal(t, []int{6}, b.FreeColumns(), "Only column 6 has room")
	})

	t.Run("full board has no free columns", func(t *testing.T) {
		b := mustFromRows(t, 4, almostFull...)
		b, _ = b.Drop(6)

		require.Empty(t, b.FreeColumns())
	})
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want Outcome
	}{
		{
			name: "empty board is in progress",
			rows: emptyRows(6),
			want: Outcome{Status: InProgress},
		},
		{
			name: "horizontal line",
			rows: emptyRows(6, "BBB....", "AAAA..."),
			want: Outcome{Status: Won, Winner: PlayerA},
		},
		{
			name: "vertical line",
			rows: emptyRows(6, "A......", "AB.....", "AB.....", "AB....B"),
			want: Outcome{Status: Won, Winner: PlayerA},
		},
		{
			name: "diagonal up line",
			rows: emptyRows(6, "...A...", "..AB...", ".ABB...", "ABBAA.B"),
			want: Outcome{Status: Won, Winner: PlayerA},
		},
		{
			name: "diagonal down line",
			rows: emptyRows(6, "B......", "AB.....", "AAB....", "AABBA.B"),
			want: Outcome{Status: Won, Winner: PlayerB},
		},
		{
			name: "three in a row is not a line",
			rows: emptyRows(6, "BB.....", "AAA...."),
			want: Outcome{Status: InProgress},
		},
		{
			name: "almost full board without a line is in progress",
			rows: almostFull,
			want: Outcome{Status: InProgress},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustFromRows(t, 4, tt.rows...)

			require.Equal(t, tt.want, b.Outcome())
		})
	}

	t.Run("filling the last cell without a line is a draw", func(t *testing.T) {
		b := mustFromRows(t, 4, almostFull...)
		require.Equal(t, PlayerB, b.ToMove(), "Side B should own the last move")

		full, err := b.Drop(6)

		require.NoError(t, err)
		require.Equal(t, Outcome{Status: Draw}, full.Outcome())
		require.Equal(t, Outcome{Status: Draw}, full.OutcomeAt(5, 6), "Last-cell scan should agree")
	})
}

func TestOutcomeAtAgreesWithFullScan(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for g := 0; g < 200; g++ {
		b := NewBoard(7, 6, 4)
		for !b.Outcome().Decided() {
			free := b.FreeColumns()
			col := free[rng.Intn(len(free))]
			next, err := b.Drop(col)
			require.NoError(t, err)

			require.Equal(t, next.Outcome(), next.OutcomeAt(next.Top(col), col),
				"Scanning from the last drop should match the full scan:\n%s", next)
			b = next
		}
	}
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for g := 0; g < 100; g++ {
		b := NewBoard(5, 4, 3)
		for !b.Outcome().Decided() {
			free := b.FreeColumns()
			next, err := b.Drop(free[rng.Intn(len(free))])
			require.NoError(t, err)
			b = next

			// Gravity: no empty cell below a token
			for col := 0; col < b.Width(); col++ {
				seenEmpty := false
				for row := 0; row < b.Height(); row++ {
					if b.At(row, col) == Empty {
						seenEmpty = true
					} else {
						require.False(t, seenEmpty, "Column %d has a floating token:\n%s", col, b)
					}
				}
			}

			// Alternation: side A is never behind, side B never more than one behind
			countA, countB := b.Count(PlayerA), b.Count(PlayerB)
			require.Contains(t, []int{0, 1}, countA-countB, "Counts should alternate:\n%s", b)
			if countA == countB {
				require.Equal(t, PlayerA, b.ToMove())
			} else {
				require.Equal(t, PlayerB, b.ToMove())
			}
			require.Equal(t, countA+countB, b.Pieces())
		}
	}
}

func TestFromRows(t *testing.T) {
	t.Run("round trips through String", func(t *testing.T) {
		rows := emptyRows(6, "..B....", ".AAB...")

		b := mustFromRows(t, 4, rows...)

		require.Equal(t, 7, b.Width())
		require.Equal(t, 6, b.Height())
		require.Equal(t, PlayerA, b.At(0, 1))
		require.Equal(t, PlayerB, b.At(1, 2))
		require.Equal(t, 4, b.Pieces())
		require.Equal(t, PlayerA, b.ToMove())
		require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, b.FreeColumns())

		parsed := mustFromRows(t, 4, strings.Split(b.String(), "\n")...)
		require.Equal(t, b, parsed, "Rendering then parsing should give the same board")
	})

	t.Run("accepts X and O tokens", func(t *testing.T) {
		b := mustFromRows(t, 3, "...", "XO.")

		require.Equal(t, PlayerA, b.At(0, 0))
		require.Equal(t, PlayerB, b.At(0, 1))
	})

	t.Run("rejects floating tokens", func(t *testing.T) {
		_, err := FromRows(4, emptyRows(6, ".A.....", "...B...")...)

		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("rejects broken alternation", func(t *testing.T) {
		_, err := FromRows(4, emptyRows(6, "AAA.B..")...)
		require.ErrorIs(t, err, ErrInvalidBoard, "Side A two tokens ahead")

		_, err = FromRows(4, emptyRows(6, "AB.B...")...)
		require.ErrorIs(t, err, ErrInvalidBoard, "Side B ahead of side A")
	})

	t.Run("rejects ragged rows and unknown cells", func(t *testing.T) {
		_, err := FromRows(4, ".......", "......")
		require.ErrorIs(t, err, ErrInvalidBoard)

		_, err = FromRows(4, ".......", "...Z...")
		require.ErrorIs(t, err, ErrInvalidBoard)

		_, err = FromRows(4)
		require.ErrorIs(t, err, ErrInvalidBoard)
	})
}
