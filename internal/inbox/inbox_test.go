package inbox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultSeed(t *testing.T) {
	msgs, err := Load("")
	require.NoError(t, err)
	require.Len(t, msgs, 10)
	require.Equal(t, "Ada Lovelace", msgs[0].From)
	require.True(t, msgs[0].Unread)

	again, err := Load("")
	require.NoError(t, err)
	require.Equal(t, msgs[0].ID, again[0].ID, "ids are stable across loads")
	require.NotEqual(t, msgs[0].ID, msgs[1].ID)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[message]]
from = "a"
subject = "b"
starred = true
`), 0o644))
	msgs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.True(t, msgs[0].Starred)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad toml", "[[message"},
		{"no messages", "# empty"},
		{"missing from", "[[message]]\nsubject = \"s\""},
		{"missing subject", "[[message]]\nfrom = \"f\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestBoxMutations(t *testing.T) {
	msgs, err := Load("")
	require.NoError(t, err)
	box := NewBox(msgs)

	id := msgs[2].ID
	require.True(t, box.Update(id, func(m *Message) { m.Flagged = true }))
	got, ok := box.Get(id)
	require.True(t, ok)
	require.True(t, got.Flagged)
	require.False(t, msgs[2].Flagged, "box works on its own copy")

	require.True(t, box.Remove(id))
	require.False(t, box.Remove(id))
	require.Equal(t, len(msgs)-1, box.Len())
	_, ok = box.Get(id)
	require.False(t, ok)
	require.False(t, box.Update(id, func(*Message) {}))
}

func TestMessagesPinnedFirst(t *testing.T) {
	box := NewBox([]Message{
		{ID: "1", From: "a", Subject: "x"},
		{ID: "2", From: "b", Subject: "y", Pinned: true},
		{ID: "3", From: "c", Subject: "z"},
	})
	var order []string
	for _, m := range box.Messages() {
		order = append(order, m.ID)
	}
	require.Equal(t, []string{"2", "1", "3"}, order)
}

func TestFilter(t *testing.T) {
	msgs := []Message{
		{ID: "1", From: "Grace Hopper", Subject: "Found a moth"},
		{ID: "2", From: "Rob Pike", Subject: "Concurrency"},
		{ID: "3", From: "Ken Thompson", Subject: "Trusting trust", Preview: "a moth-free compiler"},
	}

	require.Len(t, Filter(msgs, ""), 3)

	ids := func(ms []Message) []string {
		var out []string
		for _, m := range ms {
			out = append(out, m.ID)
		}
		return out
	}
	require.Equal(t, []string{"1", "3"}, ids(Filter(msgs, "MOTH")))
	require.Equal(t, []string{"2"}, ids(Filter(msgs, "concurency")), "one typo still matches")
	require.Empty(t, Filter(msgs, "zzzzzz"))
}
