package commands_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YaCodeDev/GoYaQuickInput/internal/commands"
	"github.com/YaCodeDev/GoYaQuickInput/valueparser"
	"github.com/YaCodeDev/GoYaQuickInput/yainput"
)

func run(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()

	root := commands.RootCmd()
	root.AddCommand(commands.ReadCmd())
	root.AddCommand(commands.TypesCmd())

	var stdout, stderr bytes.Buffer

	root.SetIn(strings.NewReader(input))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestReadCmd_PrintsAcceptedValue(t *testing.T) {
	stdout, stderr, err := run(t, "300\n42\n", "read", "uint8", "--prompt", "> ")
	require.NoError(t, err)

	assert.Equal(t, "42\n", stdout)
	assert.Equal(t, "> "+yainput.Uint8Message+"\n---\n> ", stderr)
}

func TestReadCmd_CustomErrorAndSeparator(t *testing.T) {
	stdout, stderr, err := run(t, "maybe\nFalse\n", "read", "bool", "-e", "true/false", "--separator", "~~")
	require.NoError(t, err)

	assert.Equal(t, "false\n", stdout)
	assert.Equal(t, "true/false\n~~\n", stderr)
}

func TestReadCmd_CharAndWideIntegers(t *testing.T) {
	stdout, _, err := run(t, "hello\n", "read", "char")
	require.NoError(t, err)
	assert.Equal(t, "h\n", stdout)

	stdout, _, err = run(t, "-170141183460469231731687303715884105728\n", "read", "int128")
	require.NoError(t, err)
	assert.Equal(t, "-170141183460469231731687303715884105728\n", stdout)

	stdout, _, err = run(t, "65\n", "read", "int32")
	require.NoError(t, err)
	assert.Equal(t, "65\n", stdout)
}

func TestReadCmd_Float(t *testing.T) {
	stdout, _, err := run(t, "12,5\n", "read", "float64")
	require.NoError(t, err)
	assert.Equal(t, "12.5\n", stdout)
}

func TestReadCmd_UnknownType(t *testing.T) {
	_, _, err := run(t, "", "read", "decimal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decimal")
}

func TestReadCmd_InputClosed(t *testing.T) {
	_, _, err := run(t, "", "read", "int8")
	require.Error(t, err)
	assert.ErrorIs(t, err, yainput.ErrInputClosed)
}

func TestTypesCmd(t *testing.T) {
	stdout, _, err := run(t, "", "types")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, len(valueparser.Kinds()))
	assert.Equal(t, "string", lines[0])
	assert.Contains(t, lines, "uint128")
}
