// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"bytes"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── Queue ───────────────────────────────────────────────────────────────────

func TestQueue_DeliversInOrder(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	q := NewQueue(4)
	q.now = func() time.Time { return at }

	q.Success("Note created successfully")
	q.Error("Unauthorized")

	first := <-q.C()
	second := <-q.C()

	assert.Equal(t, Toast{Kind: KindSuccess, Message: "Note created successfully", At: at}, first)
	assert.Equal(t, Toast{Kind: KindError, Message: "Unauthorized", At: at}, second)
	assert.Zero(t, q.Dropped())
}

func TestQueue_DropsOldestWhenFull(t *testing.T) {
	q := NewQueue(2)

	q.Success("one")
	q.Success("two")
	q.Success("three")

	assert.Equal(t, 1, q.Dropped())
	assert.Equal(t, "two", (<-q.C()).Message)
	assert.Equal(t, "three", (<-q.C()).Message)
}

func TestQueue_DefaultSize(t *testing.T) {
	q := NewQueue(0)
	assert.Equal(t, defaultQueueSize, cap(q.ch))
}

func TestQueue_ConcurrentProducersNeverBlock(t *testing.T) {
	q := NewQueue(3)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Error("boom")
		}()
	}
	wg.Wait()

	assert.Len(t, q.C(), 3)
	assert.Equal(t, 47, q.Dropped())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "success", KindSuccess.String())
	assert.Equal(t, "error", KindError.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

// ── Log ─────────────────────────────────────────────────────────────────────

func TestLog_Levels(t *testing.T) {
	var buf bytes.Buffer
	n := NewLog(&logger.Logger{Logger: zerolog.New(&buf)})

	n.Success("Note deleted successfully")
	n.Error("Note not found")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var ok, failed map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &ok))
	require.NoError(t, json.Unmarshal(lines[1], &failed))

	assert.Equal(t, "info", ok["level"])
	assert.Equal(t, "Note deleted successfully", ok["message"])
	assert.Equal(t, "warn", failed["level"])
	assert.Equal(t, "error", failed["kind"])
}

// ── Multi ───────────────────────────────────────────────────────────────────

func TestMulti_FansOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := mock.NewMockNotifier(ctrl)
	b := mock.NewMockNotifier(ctrl)

	gomock.InOrder(
		a.EXPECT().Success("saved"),
		b.EXPECT().Success("saved"),
		a.EXPECT().Error("failed"),
		b.EXPECT().Error("failed"),
	)

	m := NewMulti(a, nil, b)
	require.Len(t, m, 2)

	m.Success("saved")
	m.Error("failed")
}

func TestMulti_WithQueue(t *testing.T) {
	q := NewQueue(1)
	var n Notifier = NewMulti(q, NewLog(logger.Nop()))

	n.Error("Something went wrong.")

	toast := <-q.C()
	assert.Equal(t, KindError, toast.Kind)
	assert.Equal(t, "Something went wrong.", toast.Message)
}
