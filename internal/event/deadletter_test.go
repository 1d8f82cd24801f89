package event

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
)

func TestDeadLetterWriter_AppendsAndReadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	w, err := NewDeadLetterWriter(path)
	require.NoError(t, err)

	require.NoError(t, w.Write(settledEvent("spin-1"), 3, errors.New("history file locked")))
	require.NoError(t, w.Write(NewOptionsChangedEvent(domain.OptionActionRemove, testOptions[:2], 9), 1, nil))
	require.NoError(t, w.Close())

	entries, err := ReadDeadLetters(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, SpinSettled, entries[0].EventType)
	assert.Equal(t, "spin-1", entries[0].SpinID)
	assert.Equal(t, "history file locked", entries[0].LastError)

	assert.Equal(t, OptionsChanged, entries[1].EventType)
	assert.Empty(t, entries[1].SpinID)
	assert.Empty(t, entries[1].LastError)
	changed, err := PayloadAs[domain.OptionsChangedPayload](entries[1].Event)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), changed.Revision)
	assert.Equal(t, domain.OptionActionRemove, changed.Action)
	assert.Len(t, changed.Options, 2)
}

func TestDeadLetterWriter_ReopenAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	for i := 0; i < 2; i++ {
		w, err := NewDeadLetterWriter(path)
		require.NoError(t, err)
		require.NoError(t, w.Write(NewHistoryClearedEvent(), 1, nil))
		require.NoError(t, w.Close())
	}

	entries, err := ReadDeadLetters(path)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestReadDeadLetters_MissingFile(t *testing.T) {
	entries, err := ReadDeadLetters(filepath.Join(t.TempDir(), "none.jsonl"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadDeadLetters_MalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	content := `{"schema_version":"2","event_type":"history.cleared","event":{"type":"history.cleared"},"attempts":1}` + "\n\n{broken\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	entries, err := ReadDeadLetters(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dead-letter line 3")
	assert.Len(t, entries, 1)
}
