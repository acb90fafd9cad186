package logrus

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/unkn0wn-root/fieldcodec"
)

func TestLevelsAndFields(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	l := New(logrus.NewEntry(logger))

	l.Debug("d", nil)
	l.Info("i", nil)
	l.Warn("w", nil)
	boom := errors.New("boom")
	l.Error("fieldcodec.encode_failed", fieldcodec.Fields{"codec": "orders", "err": boom})

	entries := hook.AllEntries()
	if len(entries) != 4 {
		t.Fatalf("want 4 entries, got %d", len(entries))
	}
	want := []logrus.Level{logrus.DebugLevel, logrus.InfoLevel, logrus.WarnLevel, logrus.ErrorLevel}
	for i, e := range entries {
		if e.Level != want[i] {
			t.Fatalf("entry %d: level %v, want %v", i, e.Level, want[i])
		}
	}

	last := hook.LastEntry()
	if last.Message != "fieldcodec.encode_failed" {
		t.Fatalf("message = %q", last.Message)
	}
	if last.Data[logrus.ErrorKey] != boom || last.Data["codec"] != "orders" {
		t.Fatalf("unexpected data: %v", last.Data)
	}
	if _, ok := last.Data["err"]; ok {
		t.Fatal("err should be moved to logrus.ErrorKey")
	}
}

func TestNilEntry(t *testing.T) {
	if New(nil).E == nil {
		t.Fatal("nil entry should fall back to the standard logger")
	}
}
