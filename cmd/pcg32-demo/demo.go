package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sot-tech/pcg32"
	"github.com/sot-tech/pcg32/pkg/log"
)

const (
	coinsPerRound = 65
	rollsPerRound = 33
	deckSize      = 52
	cardsPerLine  = 22
)

// Card glyphs in the order the reference demo prints them.
var (
	cardNumbers = []byte("A23456789TJQK")
	cardSuits   = []byte("hcds")
)

// deal shuffles a fresh deck with bounded draws from g.
func deal(g *pcg32.Generator) (deck [deckSize]byte) {
	for i := range deck {
		deck[i] = byte(i)
	}
	for i := uint32(deckSize); i > 1; i-- {
		chosen := g.Uint32n(i)
		deck[chosen], deck[i-1] = deck[i-1], deck[chosen]
	}
	return
}

// Demo writes the reference demo report to w: every round prints six
// raw 32-bit values, 65 coin tosses, 33 die rolls and a shuffled deck.
func Demo(w io.Writer, g *pcg32.Generator, rounds int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "pcg32.Uint32:\n"+
		"      -  result:      32-bit unsigned int (uint32)\n"+
		"      -  period:      2^64   (* 2^63 streams)\n"+
		"      -  state type:  pcg32.Generator (16 bytes)\n"+
		"      -  output func: XSH-RR\n\n")

	for round := 1; round <= rounds; round++ {
		fmt.Fprintf(bw, "Round %d:\n", round)

		fmt.Fprint(bw, "  32bit:")
		for i := 0; i < 6; i++ {
			fmt.Fprintf(bw, " 0x%08x", g.Uint32())
		}
		fmt.Fprintln(bw)

		fmt.Fprint(bw, "  Coins: ")
		for i := 0; i < coinsPerRound; i++ {
			c := byte('T')
			if g.Uint32n(2) != 0 {
				c = 'H'
			}
			bw.WriteByte(c)
		}
		fmt.Fprintln(bw)

		fmt.Fprint(bw, "  Rolls:")
		for i := 0; i < rollsPerRound; i++ {
			fmt.Fprintf(bw, " %d", g.Uint32n(6)+1)
		}
		fmt.Fprintln(bw)

		deck := deal(g)
		fmt.Fprint(bw, "  Cards:")
		for i, card := range deck {
			fmt.Fprintf(bw, " %c%c", cardNumbers[card/4], cardSuits[card%4])
			if (i+1)%cardsPerLine == 0 {
				fmt.Fprint(bw, "\n\t")
			}
		}
		fmt.Fprintln(bw)

		fmt.Fprintln(bw)
		log.Debug().Int("round", round).Msg("round finished")
	}
	return bw.Flush()
}
