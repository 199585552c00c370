package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mazzegi/retain/testx"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %q: %v", path, err)
	}
}

func testTree(t *testing.T) (root, sub string) {
	root = t.TempDir()
	sub = filepath.Join(root, "sub_1", "sub_2")
	writeFile(t, filepath.Join(root, dotEnvFileToml), "cases = \"root.toml\"\nverbose = true\n")
	writeFile(t, filepath.Join(root, "sub_1", dotEnvFile), "# comment\nonly = 'alpha'\ncases = \"sub.toml\"\n")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	return root, sub
}

func TestLoadDotenv(t *testing.T) {
	tx := testx.NewTx(t)
	root, sub := testTree(t)

	c, err := Load(sub, nil)
	tx.AssertNoErr(err)
	tx.AssertEqual(Config{Cases: "sub.toml", Only: "alpha", Verbose: true}, c)

	c, err = Load(root, nil)
	tx.AssertNoErr(err)
	tx.AssertEqual(Config{Cases: "root.toml", Verbose: true}, c)
}

func TestLoadPrecedence(t *testing.T) {
	tx := testx.NewTx(t)
	_, sub := testTree(t)
	t.Setenv("RETAIN_ONLY", "from-env")
	t.Setenv("RETAIN_VERBOSE", "false")

	c, err := Load(sub, []string{"--only", "beta", "-verbose=false"})
	tx.AssertNoErr(err)
	tx.AssertEqual(Config{Cases: "sub.toml", Only: "beta", Verbose: false}, c)

	c, err = Load(sub, []string{"other.toml"})
	tx.AssertNoErr(err)
	tx.AssertEqual("other.toml", c.Cases)
	// dotenv wins over the environment
	tx.AssertEqual("alpha", c.Only)
}

func TestLoadEnvironment(t *testing.T) {
	tx := testx.NewTx(t)
	dir := t.TempDir()
	t.Setenv("RETAIN_CASES", "env.toml")
	t.Setenv("RETAIN_VERBOSE", "1")
	c, err := Load(dir, nil)
	tx.AssertNoErr(err)
	tx.AssertEqual(Config{Cases: "env.toml", Verbose: true}, c)
}

func TestLoadErrors(t *testing.T) {
	tx := testx.NewTx(t)
	dir := t.TempDir()

	_, err := Load(dir, []string{"a.toml", "b.toml"})
	tx.AssertErr(err)

	_, err = Load(dir, []string{"-verbose=maybe"})
	tx.AssertErr(err)

	_, err = Load(dir, []string{"-only"})
	tx.AssertErr(err)

	writeFile(t, filepath.Join(dir, dotEnvFileToml), "cases = [")
	_, err = Load(dir, nil)
	tx.AssertErr(err)
}

func TestParseFlags(t *testing.T) {
	tx := testx.NewTx(t)
	fs, pos := parseFlags([]string{"-a", "--b", "x", "-c=y", "file", "-d"})
	tx.AssertEqual(map[string]any{"a": true, "b": "x", "c": "y", "d": true}, fs)
	tx.AssertEqual([]string{"file"}, pos)
}
