// 19 Oct 2026

/*
Seqalign finds an optimal global alignment of two DNA strands.
Scores are +1 for a match, -1 for a mismatch and -2 for a residue
opposite a gap.

Usage:

	seqalign random [--rounds n] [--min n] [--max n] [--seed n]
	seqalign pair SEQ1 SEQ2 [--png file]
	seqalign fasta FILE [--first n] [--second n] [--png file]
	seqalign randseq FILE NSEQ [--min n] [--max n] [--white]
	seqalign config FILE

random is the interactive loop. It asks

	Generate random DNA strands?

and keeps going until the answer is "no". With --rounds it does not ask.

Global flags:

	--config
		yaml file with settings. Flags given on the command line win.
	--gap
		character printed for a gap, a space by default
	--max-depth
		pairs whose lengths add up to more than this are aligned with
		an iterative table instead of the memoized recursion
	--log-level, --log-format
		logging to standard error

Output looks like

	Optimal alignment score is -1

	  + 1
	    AT
	    A
	  -  2

The + line marks matches, the - line the size of each penalty, 1 for
a mismatch and 2 for a gap.
*/
package main
