package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/caesarlite/internal/client/form"
	"github.com/dmitrijs2005/caesarlite/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)

	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestEncryptDecrypt_Text(t *testing.T) {
	out, _, err := execute(t, "", "encrypt", "--shift", "3", "--text", "Attack at dawn!")
	require.NoError(t, err)
	assert.Equal(t, "Dwwdfn dw gdzq!\n", out)

	out, _, err = execute(t, "", "decrypt", "-s", "3", "-t", "Dwwdfn dw gdzq!")
	require.NoError(t, err)
	assert.Equal(t, "Attack at dawn!\n", out)
}

func TestEncrypt_NegativeAndLargeShift(t *testing.T) {
	out, _, err := execute(t, "", "encrypt", "--shift", "-1", "--text", "abc")
	require.NoError(t, err)
	assert.Equal(t, "zab\n", out)

	out, _, err = execute(t, "", "encrypt", "--shift=29", "--text", "xyz")
	require.NoError(t, err)
	assert.Equal(t, "abc\n", out)
}

func TestEncrypt_EmptyTextIsValid(t *testing.T) {
	out, _, err := execute(t, "", "encrypt", "--shift", "3", "--text", "")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestEncrypt_Stdin(t *testing.T) {
	out, _, err := execute(t, "Hello, World! 123\n", "encrypt", "--shift", "0")
	require.NoError(t, err)
	assert.Equal(t, "Hello, World! 123\n", out)
}

func TestEncrypt_InvalidShift(t *testing.T) {
	out, _, err := execute(t, "", "encrypt", "--shift", "three", "--text", "abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidShift))
	assert.Empty(t, out)
}

func TestEncrypt_InputValidation(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(in, []byte("abc"), 0o600))

	_, _, err := execute(t, "", "encrypt", "--shift", "1", "--in", in)
	assert.True(t, errors.Is(err, common.ErrMissingOutputPath))

	_, _, err = execute(t, "", "encrypt", "--shift", "1", "--in", in, "--text", "abc")
	assert.True(t, errors.Is(err, common.ErrConflictingInput))

	_, _, err = execute(t, "", "encrypt", "--shift", "1", "extra-arg")
	assert.Error(t, err)
}

func TestEncrypt_NoInputOnTerminal(t *testing.T) {
	orig := isTerminal
	isTerminal = func(int) bool { return true }
	t.Cleanup(func() { isTerminal = orig })

	f, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	root := NewRootCmd()
	root.SetArgs([]string{"encrypt", "--shift", "3"})
	root.SetIn(f)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err = root.Execute()
	assert.True(t, errors.Is(err, common.ErrNoInput))
}

func TestEncryptDecrypt_Files(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "plain.txt")
	enc := filepath.Join(dir, "out", "plain.enc.txt")
	dec := filepath.Join(dir, "plain.dec.txt")
	require.NoError(t, os.WriteFile(in, []byte("Attack at dawn!\n"), 0o600))

	out, _, err := execute(t, "", "encrypt", "--shift", "3", "--in", in, "--out", enc)
	require.NoError(t, err)
	assert.Equal(t, "Written: "+enc+"\n", out)

	b, err := os.ReadFile(enc)
	require.NoError(t, err)
	assert.Equal(t, "Dwwdfn dw gdzq!\n", string(b))

	_, _, err = execute(t, "", "decrypt", "--shift", "3", "--in", enc, "--out", dec)
	require.NoError(t, err)
	b, err = os.ReadFile(dec)
	require.NoError(t, err)
	assert.Equal(t, "Attack at dawn!\n", string(b))
}

func TestEncrypt_MissingInputFile(t *testing.T) {
	dir := t.TempDir()
	_, _, err := execute(t, "", "encrypt", "--shift", "3",
		"--in", filepath.Join(dir, "nope.txt"), "--out", filepath.Join(dir, "out.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestBruteForce(t *testing.T) {
	out, _, err := execute(t, "", "bruteforce", "--text", "Dwwdfn")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 26)
	assert.Equal(t, " 0\tDwwdfn", lines[0])
	assert.Equal(t, " 3\tAttack", lines[3])

	out, _, err = execute(t, "Dwwdfn", "bf", "--shift", "-23")
	require.NoError(t, err)
	assert.Equal(t, " 3\tAttack\n", out)
}

func TestConfigFile_DefaultShiftAndLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caesar.json")
	b, err := json.Marshal(map[string]any{
		"default_shift": 5,
		"log_level":     "debug",
		"log_backend":   "zap",
		"log_format":    "json",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))

	out, errOut, err := execute(t, "", "--config", path, "encrypt", "--text", "abc")
	require.NoError(t, err)
	assert.Equal(t, "fgh\n", out)
	assert.Contains(t, errOut, `"msg":"transforming text"`)

	out, _, err = execute(t, "", "-c", path, "encrypt", "--shift", "1", "--text", "abc")
	require.NoError(t, err)
	assert.Equal(t, "bcd\n", out, "--shift overrides default_shift")
}

func TestConfigFile_Errors(t *testing.T) {
	_, _, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.json"), "encrypt", "--text", "a")
	assert.Error(t, err)

	_, _, err = execute(t, "", "--log-backend", "logrus", "encrypt", "--text", "a")
	assert.True(t, errors.Is(err, common.ErrUnknownLogBackend))
}

func TestDefaultLogLevel_KeepsStderrQuiet(t *testing.T) {
	_, errOut, err := execute(t, "", "encrypt", "--text", "abc")
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

func TestShell_Commands(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"shift",
		"shift 3",
		"encrypt Attack at dawn!",
		"decrypt Dwwdfn dw gdzq!",
		"bruteforce Dwwdfn",
		"shift x",
		"frobnicate",
		"exit",
		"encrypt never reached",
	}, "\n")

	out, _, err := execute(t, input, "shell", "--shift", "7")
	require.NoError(t, err)

	assert.Contains(t, out, "Available commands")
	assert.Contains(t, out, "Shift: 7")
	assert.Contains(t, out, "Shift: 3")
	assert.Contains(t, out, "Dwwdfn dw gdzq!\n")
	assert.Contains(t, out, "Attack at dawn!\n")
	assert.Contains(t, out, " 3\tAttack\n")
	assert.Contains(t, out, "shift must be an integer")
	assert.Contains(t, out, "Unknown command: frobnicate")
	assert.Contains(t, out, "Bye!")
	assert.NotContains(t, out, "never reached")
	assert.NotContains(t, out, "caesar (shift", "no prompt when stdin is not a terminal")
}

func TestShell_EncryptFileWithSuggestedOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(in, []byte("xyz"), 0o600))

	input := strings.Join([]string{"encfile", in, "", "exit"}, "\n")
	out, _, err := execute(t, input, "shell", "--shift", "3")
	require.NoError(t, err)

	want := in + ".enc.txt"
	assert.Contains(t, out, "Written: "+want)

	b, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(b))
}

func TestShell_DecryptFileMissingInput(t *testing.T) {
	input := strings.Join([]string{"decfile", "", "", "exit"}, "\n")
	out, _, err := execute(t, input, "shell")
	require.NoError(t, err)
	assert.Contains(t, out, "Error: "+common.ErrMissingInputPath.Error())
}

func TestForm_RunsProgramWithShift(t *testing.T) {
	orig := runProgram
	t.Cleanup(func() { runProgram = orig })

	var got tea.Model
	runProgram = func(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
		got = m
		return m, nil
	}

	_, _, err := execute(t, "", "form", "--shift", "11")
	require.NoError(t, err)

	fm, ok := got.(form.Model)
	require.True(t, ok)
	assert.Contains(t, fm.View(), "11")
}

func TestForm_InvalidShift(t *testing.T) {
	orig := runProgram
	t.Cleanup(func() { runProgram = orig })
	runProgram = func(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
		t.Fatal("program must not start")
		return m, nil
	}

	_, _, err := execute(t, "", "form", "--shift", "1.5")
	assert.True(t, errors.Is(err, common.ErrInvalidShift))
}

func TestRun_ModeFlag(t *testing.T) {
	out, _, err := execute(t, "", "run", "--mode", "encrypt", "--shift", "3", "--text", "Attack at dawn!")
	require.NoError(t, err)
	assert.Equal(t, "Dwwdfn dw gdzq!\n", out)

	out, _, err = execute(t, "", "run", "-m", "decrypt", "-s", "3", "-t", "Dwwdfn dw gdzq!")
	require.NoError(t, err)
	assert.Equal(t, "Attack at dawn!\n", out)

	_, _, err = execute(t, "", "run", "--mode", "rot13", "--text", "abc")
	assert.True(t, errors.Is(err, common.ErrUnknownMode))

	_, _, err = execute(t, "", "run", "--text", "abc")
	assert.Error(t, err, "--mode is required")
}
