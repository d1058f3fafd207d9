package cli

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// execute runs the root command with a clean logger environment.
func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	return executeWithEnv(t, nil, stdin, args...)
}

// executeWithEnv clears the logger's environment variables, applies vars
// and runs the root command.
func executeWithEnv(t *testing.T, vars map[string]string, stdin string, args ...string) result {
	t.Helper()

	for _, key := range []string{"CI", "EASE_DEBUG", "EASE_CI", "EASE_AJAX", "EASE_TESTING_DEPRECATIONS"} {
		t.Setenv(key, "")
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSort_MappingDefaultsToUasort(t *testing.T) {
	r := execute(t, `{"b": 2, "a": 1, "c": 1}`, "sort")
	require.NoError(t, r.err)

	newGoldie(t).Assert(t, "sort_uasort", []byte(r.stdout))
}

func TestSort_ByPathKeepsTiesInInputOrder(t *testing.T) {
	in := `[{"t":"b","id":1},{"t":"a","id":2},{"t":"b","id":3},{"t":"a","id":4}]`
	r := execute(t, in, "sort", "--by", "t")
	require.NoError(t, r.err)

	newGoldie(t).Assert(t, "sort_by", []byte(r.stdout))
}

func TestSort_ReverseKeepsTiesInInputOrder(t *testing.T) {
	in := `[{"t":"b","id":1},{"t":"a","id":2},{"t":"b","id":3},{"t":"a","id":4}]`
	r := execute(t, in, "--format", "json", "sort", "--by", "t", "--reverse")
	require.NoError(t, r.err)

	var resp struct {
		Data []struct {
			ID int `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &resp))
	var ids []int
	for _, d := range resp.Data {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []int{1, 3, 2, 4}, ids)
}

func TestSort_UksortFromYAMLFile(t *testing.T) {
	path := writeTemp(t, "doc.yaml", "b: 1\na: 2\nc: 3\n")
	r := execute(t, "", "sort", "--primitive", "uksort", path)
	require.NoError(t, r.err)

	assert.Equal(t, "{\n  \"a\": 2,\n  \"b\": 1,\n  \"c\": 3\n}\n", r.stdout)
}

func TestSort_UsortDropsKeys(t *testing.T) {
	r := execute(t, `{"x": 3, "y": 1, "z": 2}`, "sort", "--primitive", "usort")
	require.NoError(t, r.err)

	assert.Equal(t, "[\n  1,\n  2,\n  3\n]\n", r.stdout)
}

func TestSort_UnknownPrimitiveIsMisuse(t *testing.T) {
	r := execute(t, `[3, 1, 2]`, "sort", "--primitive", "sort")
	// execute clears EASE_DEBUG; misuse is a debug entry, so stderr stays
	// quiet but the exit code still reports it.
	require.Error(t, r.err)
	assert.Equal(t, ExitFailure, GetExitCode(r.err))
	assert.Equal(t, "[\n  3,\n  1,\n  2\n]\n", r.stdout, "input printed unchanged")
}

func TestSort_UnknownPrimitiveLoggedInDebugMode(t *testing.T) {
	cfg := writeTemp(t, "ease.yaml", "debug: true\n")
	r := execute(t, `[3, 1, 2]`, "--config", cfg, "sort", "--primitive", "sort")

	require.Error(t, r.err)
	assert.Contains(t, r.stderr,
		`You're Doing It Wrong! Sort was called incorrectly. Only custom sorting functions can be used, got "sort".`)
	assert.Contains(t, r.stderr, "cli.runSort()")
}

func TestSort_InvalidDocument(t *testing.T) {
	r := execute(t, `{"a": `, "sort")
	require.Error(t, r.err)
	assert.Equal(t, ExitCommandError, GetExitCode(r.err))
}

func TestSort_MissingFile(t *testing.T) {
	r := execute(t, "", "sort", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, r.err)
	assert.Equal(t, ExitCommandError, GetExitCode(r.err))
}

func TestGet(t *testing.T) {
	doc := `{"plugins": [{"name": "seo"}, {"name": "cache"}]}`

	r := execute(t, doc, "get", "plugins.1.name")
	require.NoError(t, r.err)
	assert.Equal(t, "\"cache\"\n", r.stdout)

	r = execute(t, doc, "get", "plugins.9.name")
	require.NoError(t, r.err)
	assert.Equal(t, "null\n", r.stdout)

	r = execute(t, doc, "get", "plugins.9.name", "--default", "n/a")
	require.NoError(t, r.err)
	assert.Equal(t, "\"n/a\"\n", r.stdout)

	r = execute(t, doc, "get", "missing", "--default", "42")
	require.NoError(t, r.err)
	assert.Equal(t, "42\n", r.stdout)
}

func TestSet_AppendsKeyInOrder(t *testing.T) {
	r := execute(t, `{"name":"ease","meta":{"tags":["x","y"]}}`, "set", "meta.draft", "true")
	require.NoError(t, r.err)

	newGoldie(t).Assert(t, "set_nested", []byte(r.stdout))
}

func TestSet_CreatesSequenceForIndexSegment(t *testing.T) {
	r := execute(t, `{}`, "--format", "json", "set", "items.[1]", "hello")
	require.NoError(t, r.err)
	assert.JSONEq(t, `{"status":"ok","data":{"items":[null,"hello"]}}`, r.stdout)
}

func TestFlatten(t *testing.T) {
	r := execute(t, `{"a":{"b":1,"c":[2,3]},"d":4}`, "--format", "json", "flatten")
	require.NoError(t, r.err)
	assert.JSONEq(t, `{"status":"ok","data":{"b":1,"0":2,"1":3,"d":4}}`, r.stdout)
}

func TestFlatten_Escape(t *testing.T) {
	r := execute(t, `{"a":"<b>","n":1}`, "--format", "json", "flatten", "--escape")
	require.NoError(t, r.err)
	assert.JSONEq(t, `{"status":"ok","data":{"a":"&lt;b&gt;","n":"1"}}`, r.stdout)
}

func TestPick(t *testing.T) {
	doc := `[{"slug":"a","status":"draft"},{"status":"publish"},{"slug":"c","status":"publish"}]`

	r := execute(t, doc, "--format", "json", "pick", "slug")
	require.NoError(t, r.err)
	assert.JSONEq(t, `{"status":"ok","data":[{"slug":"a","status":"draft"},{"slug":"c","status":"publish"}]}`, r.stdout)

	r = execute(t, doc, "--format", "json", "pick", "status=publish")
	require.NoError(t, r.err)
	assert.JSONEq(t, `{"status":"ok","data":[{"status":"publish"},{"slug":"c","status":"publish"}]}`, r.stdout)
}

func TestPick_ScalarIsCommandError(t *testing.T) {
	r := execute(t, `"text"`, "pick", "slug")
	require.Error(t, r.err)
	assert.Equal(t, ExitCommandError, GetExitCode(r.err))
}

func TestCamel(t *testing.T) {
	r := execute(t, "", "camel", "hello", "big_world")
	require.NoError(t, r.err)
	assert.Equal(t, "helloBigWorld\n", r.stdout)
}

func TestPath(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"path", "normalize", `C:\www\..\plugin//src`}, "C:/www/plugin/src\n"},
		{[]string{"path", "shorten", "/var/www/plugin/src/File.php"}, ".../src/File.php\n"},
		{[]string{"path", "join", "a", "b", "c.go"}, "a/b/c.go\n"},
	}
	for _, tt := range tests {
		t.Run(tt.args[1], func(t *testing.T) {
			r := execute(t, "", tt.args...)
			require.NoError(t, r.err)
			assert.Equal(t, tt.want, r.stdout)
		})
	}
}
