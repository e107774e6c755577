// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/sumauppa/glassfish-license-tool/testutil"
)

func TestTint(t *testing.T) {
	var buf bytes.Buffer
	l := New(nil)
	l.Attach(NewTint(&buf, l.Level, false))
	ctx := Put(context.Background(), l)

	Debug(ctx, "remove", slog.String("path", "Foo.java"))
	testutil.AssertEqual(t, buf.String(), "")

	LevelVar(ctx).Set(slog.LevelDebug)
	Debug(ctx, "remove", slog.String("path", "Foo.java"))
	Error(ctx, "write failed", Err(errors.New("disk full")))
	got := buf.String()
	for _, want := range []string{"DBG remove path=Foo.java", "ERR write failed", "disk full"} {
		if !strings.Contains(got, want) {
			t.Errorf("log output does not contain %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "\x1b[") {
		t.Errorf("log output is colored:\n%q", got)
	}
}

func TestTintColor(t *testing.T) {
	var buf bytes.Buffer
	l := New(nil)
	l.Attach(NewTint(&buf, l.Level, true))
	Warn(Put(context.Background(), l), "no copyright header")
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("log output is not colored:\n%q", buf.String())
	}
}

func TestAttachDetach(t *testing.T) {
	var a, b bytes.Buffer
	l := New(nil)
	ha := slog.NewTextHandler(&a, &slog.HandlerOptions{Level: l.Level})
	hb := slog.NewTextHandler(&b, &slog.HandlerOptions{Level: l.Level})
	l.Attach(ha)
	l.Attach(hb)
	ctx := Put(context.Background(), l)

	Info(ctx, "first")
	l.Detach(hb)
	Info(ctx, "second")

	testutil.AssertEqual(t, strings.Count(a.String(), "msg="), 2)
	testutil.AssertEqual(t, strings.Count(b.String(), "msg="), 1)
}

func TestDefault(t *testing.T) {
	ctx := context.Background()
	testutil.AssertEqual(t, IsDefault(Get(ctx)), true)
	testutil.AssertEqual(t, LevelVar(ctx).Level(), slog.LevelInfo)
	// The default logger discards everything.
	Error(ctx, "nobody sees this")

	l := New(nil)
	testutil.AssertEqual(t, IsDefault(Get(Put(ctx, l))), false)
}

func TestWith(t *testing.T) {
	var early, late bytes.Buffer
	l := New(nil)
	l.Attach(slog.NewTextHandler(&early, &slog.HandlerOptions{Level: l.Level}))
	ctx := With(Put(context.Background(), l), slog.String("path", "Foo.java"))

	// Handlers attached after deriving see the derived logger's records.
	hl := slog.NewTextHandler(&late, &slog.HandlerOptions{Level: l.Level})
	l.Attach(hl)
	Warn(ctx, "no copyright header")
	Info(Put(context.Background(), l), "done")

	for _, out := range []string{early.String(), late.String()} {
		testutil.AssertEqual(t, strings.Count(out, "path=Foo.java"), 1)
		testutil.AssertEqual(t, strings.Count(out, "msg="), 2)
	}

	// The level is shared.
	LevelVar(ctx).Set(slog.LevelError)
	testutil.AssertEqual(t, l.Level.Level(), slog.LevelError)

	Get(ctx).Detach(hl)
	Error(ctx, "write failed")
	testutil.AssertEqual(t, strings.Count(late.String(), "msg="), 2)
	testutil.AssertEqual(t, strings.Count(early.String(), "msg="), 3)
}

func TestWithGroup(t *testing.T) {
	var buf bytes.Buffer
	l := New(nil)
	l.Attach(slog.NewTextHandler(&buf, nil))
	l.WithGroup("file").Info("updated", "path", "Foo.java")
	if !strings.Contains(buf.String(), "file.path=Foo.java") {
		t.Errorf("log output does not contain the group:\n%s", buf.String())
	}
}
