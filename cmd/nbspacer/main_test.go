package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/npillmayer/nbspacer/controller"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parse builds a CLI from command-line arguments.
func parse(t *testing.T, args ...string) *CLI {
	cli := &CLI{}
	parser, err := kong.New(cli, kong.Name("nbspacer"), kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)
	return cli
}

// runOn runs cli with in as standard input and returns standard output.
func runOn(cli *CLI, in string) (string, error) {
	var out bytes.Buffer
	err := cli.run(strings.NewReader(in), &out)
	return out.String(), err
}

func TestFilter(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	cli := parse(t)
	assert.Equal(t, "-", cli.Infile)
	out, err := runOn(cli, "<p>k mostu, 1 000 Kč</p>")
	require.NoError(t, err)
	assert.Equal(t, "<p>k&nbsp;mostu, 1&nbsp;000&nbsp;Kč</p>", out)

	out, err = runOn(parse(t, "-t", "cs.ksvz", "--trace", "info"), "k mostu, 1 000 Kč")
	require.NoError(t, err)
	assert.Equal(t, "k&nbsp;mostu, 1 000 Kč", out)

	out, err = runOn(parse(t, "-g", "number,preposition"), "k mostu, 50 %")
	require.NoError(t, err)
	assert.Equal(t, "k&nbsp;mostu, 50&nbsp;%", out)
}

func TestFiles(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	dir := t.TempDir()
	infile := filepath.Join(dir, "in.html")
	outfile := filepath.Join(dir, "out.html")
	require.NoError(t, os.WriteFile(infile, []byte("<i>v</i> Praze"), 0o600))
	out, err := runOn(parse(t, infile, outfile), "")
	require.NoError(t, err)
	assert.Empty(t, out)
	data, err := os.ReadFile(outfile)
	require.NoError(t, err)
	assert.Equal(t, "<i>v</i>&nbsp;Praze", string(data))

	failed := filepath.Join(dir, "failed.html")
	_, err = runOn(parse(t, "-t", "cs.nonexistent", infile, failed), "")
	assert.ErrorIs(t, err, controller.ErrUnknownRule)
	_, err = os.Stat(failed)
	assert.True(t, os.IsNotExist(err), "no output file may be written on failure")
}

func TestLanguage(t *testing.T) {
	out, err := runOn(parse(t, "-t", "cs.ksvz", "--lang", "en-GB"), "And so on . . .")
	require.NoError(t, err)
	assert.Equal(t, "And so on&nbsp;.&nbsp;.&nbsp;.", out)

	_, err = runOn(parse(t, "--lang", "ja"), "")
	assert.Error(t, err)
}

func TestListAndDescribe(t *testing.T) {
	out, err := runOn(parse(t, "--list"), "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Groups:\n  cs\n"))
	assert.Contains(t, out, "Transducers:\n  cs.ksvz\n")

	out, err = runOn(parse(t, "--describe", "-t", "cs.ksvz", "-g", "cs.cislo"), "")
	require.NoError(t, err)
	assert.Contains(t, out, `Transducer group "cs.cislo":`)
	assert.Contains(t, out, `Transducer "cs.ksvz":`)
	assert.Contains(t, out, "    +k&nbsp;mostu\n")

	_, err = runOn(parse(t, "--describe", "-g", "de"), "")
	assert.ErrorIs(t, err, controller.ErrUnknownGroup)
}
