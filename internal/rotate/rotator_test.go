package rotate

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rick-Wilson/bridge-wrangler/internal/pbn"
)

const rotatorSample = `[Event "Test"]
[Board "1"]
[Dealer "N"]
[Vulnerable "NS"]
[Deal "N:AKQ.J54.632.T987 J97.KT8.KQT4.652 T862.A97.A98.AKQ 543.Q632.J75.J43"]
[Declarer "S"]
[Contract "3NT"]
[Auction "N"]
1C Pass 2NT Pass
3NT AP
[Play "W"]
H2 H4 HT HA
[Score "NS 400"]
{ North opens and East passes; the lead comes from West. }
`

func rotatorBoard(t *testing.T) *pbn.Board {
	t.Helper()
	f, err := pbn.Read(rotatorSample)
	require.NoError(t, err)
	require.Len(t, f.Boards, 1)
	return f.Boards[0]
}

func TestRotateBoardFields(t *testing.T) {
	b := rotatorBoard(t)
	out := Board(b, 1, false)

	v, _ := out.TagValue("Dealer")
	assert.Equal(t, "E", v)
	v, _ = out.TagValue("Declarer")
	assert.Equal(t, "W", v)
	v, _ = out.TagValue("Vulnerable")
	assert.Equal(t, "EW", v, "odd offset swaps partnerships")
	v, _ = out.TagValue("Auction")
	assert.Equal(t, "E", v)
	v, _ = out.TagValue("Play")
	assert.Equal(t, "N", v)
	v, _ = out.TagValue("Score")
	assert.Equal(t, "EW 400", v)

	// Auction content is untouched; only the starting seat moves.
	assert.Equal(t, []string{"1C Pass 2NT Pass", "3NT AP"}, out.FindTag("Auction").Data)

	// Holdings move one seat clockwise.
	d, ok := out.Deal()
	require.True(t, ok)
	assert.Equal(t, pbn.East, d.First)
	assert.Equal(t, "AKQ.J54.632.T987", d.Hand(pbn.East))
	assert.Equal(t, "J97.KT8.KQT4.652", d.Hand(pbn.South))
}

func TestRotateBoardEvenOffsetKeepsVulnerability(t *testing.T) {
	b := rotatorBoard(t)
	out := Board(b, 2, false)

	v, _ := out.TagValue("Vulnerable")
	assert.Equal(t, "NS", v)
	v, _ = out.TagValue("Score")
	assert.Equal(t, "NS 400", v)
	v, _ = out.TagValue("Dealer")
	assert.Equal(t, "S", v)
}

func TestRotateBoardHoldingsArePermuted(t *testing.T) {
	b := rotatorBoard(t)
	before, ok := b.Deal()
	require.True(t, ok)

	for k := 0; k < 4; k++ {
		out := Board(b, k, false)
		after, ok := out.Deal()
		require.True(t, ok)

		var want, got []string
		for _, s := range pbn.Seats() {
			want = append(want, before.Hand(s))
			got = append(got, after.Hand(s))
		}
		sort.Strings(want)
		sort.Strings(got)
		assert.Equal(t, want, got, "offset %d must permute, not rewrite, holdings", k)
	}
}

func TestRotateBoardRoundTrip(t *testing.T) {
	b := rotatorBoard(t)
	for k := 0; k < 4; k++ {
		back := Board(Board(b, k, false), (4-k)%4, false)
		if diff := cmp.Diff(b, back); diff != "" {
			t.Errorf("offset %d round trip mismatch (-orig +back):\n%s", k, diff)
		}
	}
}

func TestRotateBoardDoesNotMutateInput(t *testing.T) {
	b := rotatorBoard(t)
	snapshot := b.Write()
	_ = Board(b, 3, true)
	assert.Equal(t, snapshot, b.Write())
}

func TestRotateBoardStandardVul(t *testing.T) {
	b := rotatorBoard(t) // board 1; standard cycle says None
	out := Board(b, 1, true)
	v, _ := out.TagValue("Vulnerable")
	assert.Equal(t, "None", v)

	// The override applies even for a zero offset.
	out = Board(b, 0, true)
	v, _ = out.TagValue("Vulnerable")
	assert.Equal(t, "None", v)
}

func TestRotateBoardPassThroughTags(t *testing.T) {
	b := rotatorBoard(t)
	b.AppendTag("BCFlags", "1f")
	b.AppendTag("Annotator", "North East Tournaments Ltd")

	out := Board(b, 2, false)
	v, _ := out.TagValue("BCFlags")
	assert.Equal(t, "1f", v)
	// Tag values other than the seat-bearing ones are copied verbatim,
	// even when they contain direction words.
	v, _ = out.TagValue("Annotator")
	assert.Equal(t, "North East Tournaments Ltd", v)
	v, _ = out.TagValue("Contract")
	assert.Equal(t, "3NT", v)
}

func TestRotateDirectionWords(t *testing.T) {
	tests := []struct {
		in   string
		k    int
		want string
	}{
		{"North leads", 2, "South leads"},
		{"East and West", 1, "South and North"},
		{"the north hand", 2, "the south hand"},
		{"NORTH-SOUTH are vulnerable", 2, "SOUTH-NORTH are vulnerable"},
		{"Northern lights", 1, "Northern lights"},
		{"no direction words here", 3, "no direction words here"},
		{"West wins; west continues", 1, "North wins; north continues"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RotateDirectionWords(tt.in, tt.k), "k=%d %q", tt.k, tt.in)
	}
}

func TestRotateDirectionWordsZeroOffset(t *testing.T) {
	in := "North East South West"
	assert.Equal(t, in, RotateDirectionWords(in, 0))
	assert.Equal(t, in, RotateDirectionWords(in, 4))
}

func TestRotateScoreValue(t *testing.T) {
	assert.Equal(t, "NS 420", rotateScoreValue("NS 420", 0))
	assert.Equal(t, "EW 420", rotateScoreValue("NS 420", 1))
	assert.Equal(t, "NS 420", rotateScoreValue("NS 420", 2))
	assert.Equal(t, "NS -100", rotateScoreValue("EW -100", 1))
	assert.Equal(t, "420", rotateScoreValue("420", 1))
}

func TestRotateDealerBasisToSouth(t *testing.T) {
	const content = `[Event "Lesson"]
[Board "1"]
[Dealer "N"]
[Vulnerable "None"]
[Deal "N:AKQ.JT9.876.5432 J97.KQ8.KQT4.A62 T862.A75.A95.KQJ 543.6432.J32.T98"]
[Auction "N"]
1NT AP
{ North shows a balanced hand; East has nothing to say. }
`
	f, err := pbn.Read(content)
	require.NoError(t, err)
	b := f.Boards[0]

	basisSeat, kind, err := ResolveBasis(b, BasisDealer)
	require.NoError(t, err)
	assert.Equal(t, pbn.North, basisSeat)
	assert.Equal(t, "Dealer", kind)

	k := pbn.Offset(basisSeat, pbn.South)
	require.Equal(t, 2, k)

	out := Board(b, k, false)
	v, _ := out.TagValue("Dealer")
	assert.Equal(t, "S", v)
	v, _ = out.TagValue("Auction")
	assert.Equal(t, "S", v)
	v, _ = out.TagValue("Vulnerable")
	assert.Equal(t, "None", v)

	var commentary string
	for _, item := range out.Items {
		if item.Kind == pbn.ItemCommentary {
			commentary = item.Commentary
		}
	}
	assert.Contains(t, commentary, "South shows a balanced hand")
	assert.Contains(t, commentary, "West has nothing to say")
}

func TestInfoNote(t *testing.T) {
	info := Info{Offset: 2, Target: pbn.South, Basis: pbn.North, BasisKind: "Dealer"}
	note := info.Note(7)
	assert.Contains(t, note, "Board 7")
	assert.Contains(t, note, "chOption: S")
	assert.Contains(t, note, "chBasis: N")
	assert.Contains(t, note, "basisKind:Dealer")
	assert.Contains(t, note, "nRot: 2")
}
