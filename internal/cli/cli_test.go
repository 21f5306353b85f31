// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command line args and returns its standard output and
// error streams.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestDemo(t *testing.T) {
	out, _, err := run(t, "", "demo")
	require.NoError(t, err)
	want := `100
4294967194
-4611685799384055909
-1
100
-2147483647

100.0001
4294967194.246812
-4611685799914080630.552993038336
-1.0000000465661774843184782
100.0000999999999998323337655
-2147483647.123456
`
	assert.Equal(t, want, out)
}

func TestDemoPrecision(t *testing.T) {
	out, _, err := run(t, "", "demo", "--prec", "3")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "-1", lines[10])
	assert.Equal(t, "-4611685799914080630.552", lines[9])
}

func TestEval(t *testing.T) {
	out, _, err := run(t, "", "eval", "--prec", "3", "1.5 + 2.25", "10 / 4.", "x = 7", "x / 2", "x % 2")
	require.NoError(t, err)
	assert.Equal(t, "3.75\n2.5\n7\n3\n1\n", out)

	out, _, err = run(t, "", "eval", "--prec", "3", "--fixed", "10 / 4.")
	require.NoError(t, err)
	assert.Equal(t, "2.500\n", out)

	_, _, err = run(t, "", "eval", "1 +")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 +")

	_, _, err = run(t, "", "eval")
	require.Error(t, err)
}

func TestBatch(t *testing.T) {
	input := `# comment
1 / 8.0

2 ^ 64
sqrt(2)
`
	out, _, err := run(t, input, "batch", "--prec", "4", "--workers", "2")
	require.NoError(t, err)
	assert.Equal(t, "1 / 8.0 = 0.125\n2 ^ 64 = 18446744073709551616\nsqrt(2) = 1.4142\n", out)

	path := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 + 1\nnope(1)\n3 * 3\n"), 0644))
	out, errOut, err := run(t, "", "batch", path, "-v")
	require.Error(t, err)
	assert.Equal(t, "1 + 1 = 2\n3 * 3 = 9\n", out)
	assert.Contains(t, errOut, "bignum: nope(1)")
	assert.Contains(t, errOut, "bignum: evaluating 3 expressions")
}

func TestVarsPersistence(t *testing.T) {
	db := filepath.Join(t.TempDir(), "vars")
	_, _, err := run(t, "", "eval", "--store", db, "a = 2 ^ 100", "b = 1 / 3.0")
	require.NoError(t, err)

	out, _, err := run(t, "", "eval", "--store", db, "a + 1")
	require.NoError(t, err)
	assert.Equal(t, "1267650600228229401496703205377\n", out)

	out, _, err = run(t, "", "vars", "--store", db)
	require.NoError(t, err)
	assert.Equal(t, "a = 1267650600228229401496703205376 (int)\nb = 0.3333333333333333333333333 (real)\n", out)

	_, _, err = run(t, "", "vars", "rm", "--store", db, "a")
	require.NoError(t, err)
	out, _, err = run(t, "", "vars", "--store", db)
	require.NoError(t, err)
	assert.Equal(t, "b = 0.3333333333333333333333333 (real)\n", out)

	_, _, err = run(t, "", "vars", "rm", "--store", db, "a")
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bignum.toml")
	require.NoError(t, os.WriteFile(path, []byte("precision = 2\n"), 0644))
	out, _, err := run(t, "", "eval", "--config", path, "1 / 3.0")
	require.NoError(t, err)
	assert.Equal(t, "0.33\n", out)

	// flags win over the file
	out, _, err = run(t, "", "eval", "--config", path, "--prec", "4", "1 / 3.0")
	require.NoError(t, err)
	assert.Equal(t, "0.3333\n", out)

	_, _, err = run(t, "", "eval", "--config", filepath.Join(t.TempDir(), "missing.toml"), "1")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "bignum version "+Version+"\n"))
}
