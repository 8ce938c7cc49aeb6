/*
Package puz reads and writes Across Lite (.puz) crossword files.

# Quick Start

Open a file and get a playable grid:

	p, err := puz.Load("nyt-2024-01-01.puz")
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(p.File.Title, p.Grid.Width(), p.Grid.Height())

# Decoding

Parse works on an in-memory buffer, Open on a path (memory-mapped where the
platform allows it). Both return the raw File with every header field kept
verbatim, including bytes before the header and trailing extra sections.

# Checksums

Checksums are never a load gate. Verify lists the stored values that
disagree with the contents so callers can warn about them; Seal rewrites
them after a File has been edited in memory.

# Errors

Decode failures wrap ErrTruncated, ErrMalformedHeader or
ErrInvalidCharacterGrid. Load additionally reports ErrScrambled and
grid.ErrClueCountMismatch. Use errors.Is to tell them apart.
*/
package puz
