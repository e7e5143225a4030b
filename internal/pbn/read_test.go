package pbn

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFile = `% PBN 2.1
% EXPORT

[Event "Tuesday Teams"]
[Site "Club"]
[Board "1"]
[Dealer "N"]
[Vulnerable "None"]
[Deal "N:AKQ.J54.632.T987 J97.KT8.KQT4.652 T862.A97.A98.AKQ 543.Q632.J75.J43"]
[Declarer "S"]
[Contract "3NT"]
[Auction "N"]
1C Pass 2NT Pass
3NT AP
[Play "W"]
H2 H4 HT HA
[Score "NS 400"]
{ North opens a minimum hand and East stays silent. }

[Event "Tuesday Teams"]
[Board "2"]
[Dealer "E"]
[Vulnerable "NS"]
[Deal "E:J97.KT8.KQT4.652 T862.A97.A98.AKQ 543.Q632.J75.J43 AKQ.J54.632.T987"]
[RotationBasis "E"]
[BCFlags "1"]
`

func TestReadSampleFile(t *testing.T) {
	f, err := Read(sampleFile)
	require.NoError(t, err)

	assert.Equal(t, []string{"% PBN 2.1", "% EXPORT"}, f.Preamble)
	require.Len(t, f.Boards, 2)

	b1 := f.Boards[0]
	assert.Equal(t, 1, b1.Number)

	dealer, ok := b1.Dealer()
	require.True(t, ok)
	assert.Equal(t, North, dealer)
	assert.Equal(t, VulNone, b1.Vulnerable())

	decl, ok := b1.Declarer()
	require.True(t, ok)
	assert.Equal(t, South, decl)

	auction := b1.FindTag("Auction")
	require.NotNil(t, auction)
	assert.Equal(t, "N", auction.Value)
	assert.Equal(t, []string{"1C Pass 2NT Pass", "3NT AP"}, auction.Data)

	play := b1.FindTag("Play")
	require.NotNil(t, play)
	assert.Equal(t, "W", play.Value)
	assert.Equal(t, []string{"H2 H4 HT HA"}, play.Data)

	// Commentary survives verbatim, braces included.
	var comments []string
	for _, it := range b1.Items {
		if it.Kind == ItemCommentary {
			comments = append(comments, it.Commentary)
		}
	}
	require.Len(t, comments, 1)
	assert.Equal(t, "{ North opens a minimum hand and East stays silent. }", comments[0])

	b2 := f.Boards[1]
	assert.Equal(t, 2, b2.Number)
	basis, ok := b2.TagValue("RotationBasis")
	require.True(t, ok)
	assert.Equal(t, "E", basis)
	assert.True(t, b2.HasCards())
}

func TestReadWriteRoundTrip(t *testing.T) {
	f, err := Read(sampleFile)
	require.NoError(t, err)

	again, err := Read(f.Write())
	require.NoError(t, err)

	if diff := cmp.Diff(f, again); diff != "" {
		t.Errorf("round trip mismatch (-first +second):\n%s", diff)
	}
}

func TestReadMultilineCommentary(t *testing.T) {
	content := `[Event "x"]
[Board "1"]
{ West leads a trump.
Declarer wins in the South hand
and draws trumps. }
[Dealer "W"]
`
	f, err := Read(content)
	require.NoError(t, err)
	require.Len(t, f.Boards, 1)

	var comment string
	for _, it := range f.Boards[0].Items {
		if it.Kind == ItemCommentary {
			comment = it.Commentary
		}
	}
	assert.Contains(t, comment, "West leads a trump.")
	assert.Contains(t, comment, "draws trumps. }")

	dealer, ok := f.Boards[0].Dealer()
	require.True(t, ok)
	assert.Equal(t, West, dealer)
}

func TestBoardNumberFallsBackToPosition(t *testing.T) {
	content := `[Event "a"]
[Dealer "N"]

[Event "b"]
[Dealer "E"]
`
	f, err := Read(content)
	require.NoError(t, err)
	require.Len(t, f.Boards, 2)
	assert.Equal(t, 1, f.Boards[0].Number)
	assert.Equal(t, 2, f.Boards[1].Number)
}

func TestParseDeal(t *testing.T) {
	d, err := ParseDeal("E:J97.KT8.KQT4.652 T862.A97.A98.AKQ 543.Q632.J75.J43 AKQ.J54.632.T987")
	require.NoError(t, err)
	assert.Equal(t, East, d.First)
	assert.Equal(t, "J97.KT8.KQT4.652", d.Hand(East))
	assert.Equal(t, "T862.A97.A98.AKQ", d.Hand(South))
	assert.Equal(t, "543.Q632.J75.J43", d.Hand(West))
	assert.Equal(t, "AKQ.J54.632.T987", d.Hand(North))

	// String re-emits from the same first seat.
	assert.Equal(t, "E:J97.KT8.KQT4.652 T862.A97.A98.AKQ 543.Q632.J75.J43 AKQ.J54.632.T987", d.String())
}

func TestParseDealErrors(t *testing.T) {
	_, err := ParseDeal("not a deal")
	assert.Error(t, err)
	_, err = ParseDeal("X:a b c d")
	assert.Error(t, err)
	_, err = ParseDeal("N:a b c")
	assert.Error(t, err)
}

func TestDealRotated(t *testing.T) {
	d, err := ParseDeal("N:h1 h2 h3 h4")
	require.NoError(t, err)

	r := d.Rotated(2, South)
	assert.Equal(t, "h1", r.Hand(South))
	assert.Equal(t, "h2", r.Hand(West))
	assert.Equal(t, "h3", r.Hand(North))
	assert.Equal(t, "h4", r.Hand(East))
	assert.Equal(t, "S:h1 h2 h3 h4", r.String())
}

func TestCloneIsDeep(t *testing.T) {
	f, err := Read(sampleFile)
	require.NoError(t, err)

	orig := f.Boards[0]
	clone := orig.Clone()
	clone.SetTagValue("Dealer", "S")
	clone.FindTag("Auction").Data[0] = "mutated"

	v, _ := orig.TagValue("Dealer")
	assert.Equal(t, "N", v)
	assert.Equal(t, "1C Pass 2NT Pass", orig.FindTag("Auction").Data[0])
}

func TestHasCards(t *testing.T) {
	empty := &Board{}
	empty.AppendTag("Deal", "N:... ... ... ...")
	assert.False(t, empty.HasCards())

	none := &Board{}
	assert.False(t, none.HasCards())
}
