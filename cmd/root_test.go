package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trknhr/kanarank/internal/lexicon"
	"github.com/trknhr/kanarank/internal/server"
	"github.com/trknhr/kanarank/internal/store"
	"github.com/vmihailenco/msgpack/v5"
)

type grid map[[2]int]int16

func (g grid) At(row, col int) int16 { return g[[2]int{row, col}] }

func fakeLexicon() (*lexicon.Lexicon, error) {
	ix := lexicon.NewIndex()
	ix.Add(lexicon.Entry{Key: "きょう", Value: "今日", LeftID: 1, RightID: 1, Cost: 3000})
	ix.Add(lexicon.Entry{Key: "きょう", Value: "京", LeftID: 1, RightID: 1, Cost: 4000})
	pos := lexicon.NewPosTable(map[int][]string{1: {"名詞", "一般", "*", "*"}})
	conn := lexicon.NewConnector(grid{}, 2, 2)
	return &lexicon.Lexicon{
		Index:     ix,
		Pos:       pos,
		Connector: conn,
		Segmenter: lexicon.NewSegmenter(pos),
		Converter: lexicon.NewConverter(ix, conn, pos.GeneralNounID()),
	}, nil
}

type testEnv struct {
	dir        string
	configPath string
	dbPath     string
	commitLog  string
}

func newTestEnv(t *testing.T) *testEnv {
	dir := t.TempDir()
	env := &testEnv{
		dir:        dir,
		configPath: filepath.Join(dir, "config.toml"),
		dbPath:     filepath.Join(dir, "kanarank.db"),
		commitLog:  filepath.Join(dir, "commit_log"),
	}
	content := fmt.Sprintf("[dictionary]\ndb_path = %q\n\n[history]\ncommit_log_path = %q\n\n[log]\nlevel = \"error\"\n",
		env.dbPath, env.commitLog)
	require.NoError(t, os.WriteFile(env.configPath, []byte(content), 0644))
	return env
}

func (e *testEnv) run(t *testing.T, stdin []byte, args ...string) (string, error) {
	opts := &rootOptions{loadLexicon: fakeLexicon}
	root := newRootCmd(opts)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(bytes.NewReader(stdin))
	root.SetArgs(append(args, "--config", e.configPath))
	err := root.Execute()
	return out.String(), err
}

func TestDictAddAndSuggest(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, nil, "dict", "add", "かんじ", "漢字", "--id", "1", "--cost", "100")
	require.NoError(t, err)

	out, err := env.run(t, nil, "suggest", "カンジ", "--filter-models", "userdict")
	require.NoError(t, err)
	assert.Contains(t, out, "漢字")

	_, err = env.run(t, nil, "dict", "remove", "かんじ", "漢字")
	require.NoError(t, err)

	_, err = env.run(t, nil, "suggest", "かんじ", "--filter-models", "userdict")
	assert.Error(t, err, "nothing left to suggest")
}

func TestDictImport(t *testing.T) {
	env := newTestEnv(t)
	file := filepath.Join(env.dir, "words.tsv")
	require.NoError(t, os.WriteFile(file, []byte("# user words\nかんじ\t漢字\t100\nかんじ\t幹事\nbroken line\n"), 0644))

	out, err := env.run(t, nil, "dict", "import", file)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 2 words")

	english := filepath.Join(env.dir, "english.tsv")
	require.NoError(t, os.WriteFile(english, []byte("ぐーぐる\tGoogle\n"), 0644))
	out, err = env.run(t, nil, "dict", "import-english", english)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 1 words")

	out, err = env.run(t, nil, "suggest", "ぐーぐる", "--filter-models", "english")
	require.NoError(t, err)
	assert.Contains(t, out, "Google")
}

func TestEval(t *testing.T) {
	env := newTestEnv(t)
	file := filepath.Join(env.dir, "cases.jsonl")
	require.NoError(t, os.WriteFile(file, []byte(`{"input":"きょう","expected":"今日","category":"noun"}
{"input":"きょう","expected":"京","category":"noun"}
`), 0644))

	out, err := env.run(t, nil, "eval", "-f", file, "--filter-models", "unigram")
	require.NoError(t, err)
	assert.Contains(t, out, "Loaded 2 evaluation cases")
	assert.Contains(t, out, "Top-1 Accuracy: 50.00% (1/2)")
	assert.Contains(t, out, "Top-3 Accuracy: 100.00% (2/2)")
}

func TestLoadHistory(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.WriteFile(env.commitLog, []byte("きょう\t今日\t1\t1\nは\tは\t2\t2\n\n"), 0644))

	_, err := env.run(t, nil, "load-history")
	require.NoError(t, err)

	db, err := store.Open(env.dbPath)
	require.NoError(t, err)
	defer db.Close()

	next, err := store.NewSQLHistoryStore(db).Next("今日", "", 10)
	require.NoError(t, err)
	require.Len(t, next, 1)
	assert.Equal(t, "は", next[0].Value)
}

func TestServe(t *testing.T) {
	env := newTestEnv(t)

	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	require.NoError(t, enc.Encode(server.Request{ID: "h", Action: "health"}))
	require.NoError(t, enc.Encode(server.Request{ID: "c", Action: "commit", Commits: []server.Word{{Key: "きょう", Value: "今日"}}}))

	out, err := env.run(t, in.Bytes(), "serve")
	require.NoError(t, err)

	dec := msgpack.NewDecoder(strings.NewReader(out))
	var health, commit server.Response
	require.NoError(t, dec.Decode(&health))
	require.NoError(t, dec.Decode(&commit))
	assert.True(t, health.OK)
	assert.True(t, commit.OK)

	data, err := os.ReadFile(env.commitLog)
	require.NoError(t, err)
	assert.Equal(t, "きょう\t今日\t0\t0\n\n", string(data))
}
