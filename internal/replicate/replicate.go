// Package replicate expands a PBN file into repeated blocks of its
// boards, renumbered sequentially, for duplicate-style sessions dealt
// by machine. Replica boards carry Virtual* tags that point back at
// the board they copy.
package replicate

import (
	"fmt"
	"strings"

	"github.com/Rick-Wilson/bridge-wrangler/internal/pbn"
)

// FillerDeal gives each player a complete suit. It pads blocks that
// run past the input when the block size exceeds the board count.
const FillerDeal = "N:AKQJT98765432... .AKQJT98765432.. ..AKQJT98765432. ...AKQJT98765432"

// SessionBoards is the target session length used to derive a default
// block count.
const SessionBoards = 36

// Options configures a replication run. Zero values mean defaults:
// BlockSize falls back to the input board count, BlockCount to as many
// blocks as fit a 36-board session.
type Options struct {
	BlockSize  int
	BlockCount int
}

// Plan is a resolved replication layout.
type Plan struct {
	BlockSize  int
	BlockCount int
}

// Total is the number of boards the plan produces.
func (p Plan) Total() int { return p.BlockSize * p.BlockCount }

// Resolve fills in defaults against the input board count.
func Resolve(opts Options, boardCount int) (Plan, error) {
	if boardCount == 0 {
		return Plan{}, fmt.Errorf("no boards in input")
	}
	p := Plan{BlockSize: opts.BlockSize, BlockCount: opts.BlockCount}
	if p.BlockSize <= 0 {
		p.BlockSize = boardCount
	}
	if p.BlockCount <= 0 {
		p.BlockCount = SessionBoards / p.BlockSize
	}
	if p.BlockCount <= 0 {
		return Plan{}, fmt.Errorf("block size %d exceeds a %d-board session; give an explicit block count", p.BlockSize, SessionBoards)
	}
	return p, nil
}

// Expand builds the replicated file. The first block keeps the input
// sections verbatim, commentary included; every later board is
// synthesized with standard dealer and vulnerability for its absolute
// number, the source board's deal and BCFlags, and Virtual* tracking
// tags.
func Expand(content string, opts Options) (string, Plan, error) {
	header, sections := pbn.SplitSections(content)

	plan, err := Resolve(opts, len(sections))
	if err != nil {
		return "", Plan{}, err
	}

	deals := make([]string, len(sections))
	flags := make([]string, len(sections))
	for i, section := range sections {
		deals[i] = pbn.ExtractTagValue(section, "Deal")
		flags[i] = pbn.ExtractTagValue(section, "BCFlags")
	}

	var sb strings.Builder
	sb.WriteString(header)

	for bd := 0; bd < plan.Total(); bd++ {
		block := bd / plan.BlockSize
		inBlock := bd % plan.BlockSize

		if block == 0 && inBlock < len(sections) {
			sb.WriteString(sections[inBlock])
			if !strings.HasSuffix(sections[inBlock], "\n") {
				sb.WriteByte('\n')
			}
			continue
		}

		deal := FillerDeal
		flag := ""
		if inBlock < len(sections) {
			deal = deals[inBlock]
			flag = flags[inBlock]
			if deal == "" {
				deal = FillerDeal
			}
		}
		writeReplica(&sb, bd, block, inBlock, deal, flag)
	}

	return sb.String(), plan, nil
}

// writeReplica emits one synthesized board. bd, block and inBlock are
// zero-based; tag values are one-based.
func writeReplica(sb *strings.Builder, bd, block, inBlock int, deal, bcflags string) {
	sb.WriteString("[Event \"\"]\n")
	sb.WriteString("[Site \"\"]\n")
	sb.WriteString("[Date \"\"]\n")
	fmt.Fprintf(sb, "[Board \"%d\"]\n", bd+1)
	sb.WriteString("[West \"\"]\n")
	sb.WriteString("[North \"\"]\n")
	sb.WriteString("[East \"\"]\n")
	sb.WriteString("[South \"\"]\n")
	fmt.Fprintf(sb, "[Dealer \"%c\"]\n", pbn.StandardDealer(bd+1).Char())
	fmt.Fprintf(sb, "[Vulnerable \"%s\"]\n", pbn.StandardVulnerability(bd+1))
	fmt.Fprintf(sb, "[Deal \"%s\"]\n", deal)
	sb.WriteString("[Scoring \"\"]\n")
	sb.WriteString("[Declarer \"\"]\n")
	sb.WriteString("[Contract \"\"]\n")
	sb.WriteString("[Result \"\"]\n")
	if bcflags != "" {
		fmt.Fprintf(sb, "[BCFlags \"%s\"]\n", bcflags)
	}
	fmt.Fprintf(sb, "[VirtualBoard \"%d\"]\n", inBlock+1)
	fmt.Fprintf(sb, "[VirtualDealer \"%c\"]\n", pbn.StandardDealer(inBlock+1).Char())
	fmt.Fprintf(sb, "[VirtualVulnerable \"%s\"]\n", pbn.StandardVulnerability(inBlock+1))
	fmt.Fprintf(sb, "[BlockNumber \"%d\"]\n", block+1)
	sb.WriteByte('\n')
}
