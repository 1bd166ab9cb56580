package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestRunInfo_HumanListing(t *testing.T) {
	resetResolverState(t)
	origJSON := infoJSON
	t.Cleanup(func() { infoJSON = origJSON })
	infoJSON = false

	dir := t.TempDir()
	path := writeSurveyFixture(t, dir)

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	if err := runInfo(cmd, []string{path}); err != nil {
		t.Fatalf("runInfo failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "survey: 3 rows x 3 cols") {
		t.Fatalf("expected dimension line, got %q", out)
	}
	if !strings.Contains(out, "headers: name, label, label::fr") {
		t.Fatalf("expected header line, got %q", out)
	}
}

func TestRunInfo_JSON(t *testing.T) {
	resetResolverState(t)
	origJSON := infoJSON
	t.Cleanup(func() { infoJSON = origJSON })
	infoJSON = true

	dir := t.TempDir()
	path := writeSurveyFixture(t, dir)

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	if err := runInfo(cmd, []string{path}); err != nil {
		t.Fatalf("runInfo failed: %v", err)
	}

	for _, want := range []string{`"name": "survey"`, `"rows": 3`, `"cols": 3`} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("expected JSON to contain %s, got %q", want, buf.String())
		}
	}
}
