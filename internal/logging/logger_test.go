package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestWithComponentTagsRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	child := WithComponent(logger, "app")
	child.Info("hello")

	if !strings.Contains(buf.String(), "component=app") {
		t.Fatalf("expected component attribute, got: %s", buf.String())
	}
}

func TestWithComponentNilParent(t *testing.T) {
	if WithComponent(nil, "app") != nil {
		t.Fatalf("nil parent should yield nil child")
	}
}

func TestHelpersAreNilSafe(t *testing.T) {
	Info(nil, "ignored")
	Warn(nil, "ignored")
	Error(nil, "ignored", nil)
}

func TestErrorAppendsErrAttribute(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Error(logger, "failed", errors.New("boom"))

	out := buf.String()
	if !strings.Contains(out, "failed") || !strings.Contains(out, "error=boom") {
		t.Fatalf("expected error attribute, got: %s", out)
	}
}
