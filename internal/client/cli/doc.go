// Package cli provides the caesarlite command-line client.
//
// It wires configuration, logging and the cipher engine into a cobra command
// tree:
//
//	caesarlite encrypt    --shift N (--text T | --in FILE --out FILE)
//	caesarlite decrypt    --shift N (--text T | --in FILE --out FILE)
//	caesarlite run        --mode encrypt|decrypt ...  (same as above)
//	caesarlite bruteforce (--text T | --in FILE) [--shift N]
//	caesarlite shell      interactive read–eval–print loop
//	caesarlite form       interactive terminal form
//
// When neither --text nor --in is given and stdin is not a terminal, the
// text is read from stdin. Results go to stdout; logs go to stderr.
//
// Input validation (shift, modes, file paths) happens here; the engine in
// package caesar is only invoked with valid arguments. See NewRootCmd.
package cli
