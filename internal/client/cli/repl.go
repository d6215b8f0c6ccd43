package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// shellSession satisfies it; tests can provide a lightweight stub.
type execIface interface {
	Help(ctx context.Context) error
	Shift(ctx context.Context, arg string) error
	Encrypt(ctx context.Context, text string) error
	Decrypt(ctx context.Context, text string) error
	BruteForce(ctx context.Context, text string) error
	EncryptFile(ctx context.Context) error
	DecryptFile(ctx context.Context) error
}

// runREPL starts a read–eval–print loop for the caesarlite shell.
//
// It reads a line from reader, takes the first word as the command and
// passes the rest of the line (with its inner spacing intact) to the handler.
// The loop exits on EOF, on "exit" / "quit", or when ctx is cancelled.
//
// Commands
//
//	help                — show available commands
//	shift [n]           — show or set the current key
//	encrypt <text>      — encrypt text with the current key (alias: e)
//	decrypt <text>      — decrypt text with the current key (alias: d)
//	bruteforce <text>   — list all 26 candidates (alias: bf)
//	encfile | decfile   — process a file (prompts for paths)
//	exit | quit         — leave the shell
//
// Handler errors are printed to w and the loop continues.
func runREPL(ctx context.Context, a execIface, promptFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		if p := promptFn(); p != "" {
			fmt.Fprint(w, p)
		}

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		cmd, rest := splitCommand(line)
		if cmd == "" {
			continue
		}

		var herr error
		switch strings.ToLower(cmd) {
		case "help", "?":
			herr = a.Help(ctx)
		case "shift", "key":
			herr = a.Shift(ctx, rest)
		case "encrypt", "enc", "e":
			herr = a.Encrypt(ctx, rest)
		case "decrypt", "dec", "d":
			herr = a.Decrypt(ctx, rest)
		case "bruteforce", "brute", "bf":
			herr = a.BruteForce(ctx, rest)
		case "encfile":
			herr = a.EncryptFile(ctx)
		case "decfile":
			herr = a.DecryptFile(ctx)
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", cmd, "(type 'help')")
		}

		if herr != nil {
			fmt.Fprintln(w, "Error:", herr)
		}
	}
}

// splitCommand separates the first word of line from the remainder. Only the
// single separator after the command is dropped, so "encrypt  a b" keeps " a b".
func splitCommand(line string) (string, string) {
	line = strings.TrimRight(line, "\r\n")
	line = strings.TrimLeft(line, " \t")
	cmd, rest, _ := strings.Cut(line, " ")
	return strings.TrimSpace(cmd), rest
}
