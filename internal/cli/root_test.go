package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contactform/pkg/model"
	"github.com/goliatone/go-contactform/pkg/renderers/tui"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeWithStderr(t, args...)
	return out, err
}

func executeWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"render", "interactive", "schema"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			if err != nil {
				t.Fatalf("find %s: %v", name, err)
			}
			if sub.Name() != name {
				t.Fatalf("expected %s, got %s", name, sub.Name())
			}
		})
	}

	render, _, _ := cmd.Find([]string{"render"})
	for _, flag := range []string{"first-name", "last-name", "email", "message", "submit", "theme"} {
		if render.Flags().Lookup(flag) == nil {
			t.Fatalf("expected render flag %q", flag)
		}
	}
}

func TestRenderCommand_ShowsFieldError(t *testing.T) {
	html, err := execute(t, "render", "--first-name", "Sam")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := strings.Count(html, `data-testid="error"`); got != 1 {
		t.Fatalf("expected one error, got %d:\n%s", got, html)
	}
}

func TestRenderCommand_EmptySubmit(t *testing.T) {
	html, err := execute(t, "render", "--submit")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := strings.Count(html, `data-testid="error"`); got != 3 {
		t.Fatalf("expected three errors, got %d:\n%s", got, html)
	}
}

func TestRenderCommand_SubmitShowsDisplay(t *testing.T) {
	html, err := execute(t, "render",
		"--first-name", "Tamara",
		"--last-name", "Leonard",
		"--email", "tamaraleonard46@gmail.com",
		"--submit",
	)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, id := range []string{"firstnameDisplay", "lastnameDisplay", "emailDisplay"} {
		if !strings.Contains(html, `data-testid="`+id+`"`) {
			t.Fatalf("expected %s in output:\n%s", id, html)
		}
	}
	if strings.Contains(html, "messageDisplay") {
		t.Fatalf("expected no message display")
	}
}

func TestRenderCommand_SanitizesSubmission(t *testing.T) {
	html, err := execute(t, "render",
		"--first-name", "<b>Tamara</b>",
		"--last-name", "Leonard",
		"--email", "tamaraleonard46@gmail.com",
		"--message", "<script>alert(1)</script>",
		"--submit",
	)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, `data-testid="firstnameDisplay">Tamara</span>`) {
		t.Fatalf("expected plain text first name in display:\n%s", html)
	}
	if strings.Contains(html, "&lt;b&gt;") || strings.Contains(html, "messageDisplay") {
		t.Fatalf("expected markup to be stripped before capture:\n%s", html)
	}
}

func TestRenderCommand_MarkupOnlyValueIsRejected(t *testing.T) {
	html, err := execute(t, "render",
		"--first-name", "Tamara",
		"--last-name", "<b></b>",
		"--email", "tamaraleonard46@gmail.com",
		"--submit",
	)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "lastName is a required field.") || strings.Contains(html, `data-testid="submission"`) {
		t.Fatalf("expected rejected submit for empty sanitized last name:\n%s", html)
	}
}

func TestRenderCommand_VerboseLogsControllerAndPipeline(t *testing.T) {
	_, stderr, err := executeWithStderr(t, "--verbose", "render", "--submit")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, line := range []string{"contactform: contact: submit rejected with 3 error(s)", "contactform: orchestrator: built form"} {
		if !strings.Contains(stderr, line) {
			t.Fatalf("expected %q in stderr:\n%s", line, stderr)
		}
	}

	_, stderr, err = executeWithStderr(t, "render", "--submit")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if stderr != "" {
		t.Fatalf("expected no logs without --verbose, got %q", stderr)
	}
}

func TestRenderCommand_ServerErrorsAndOutputFile(t *testing.T) {
	dir := t.TempDir()
	errorsPath := filepath.Join(dir, "errors.json")
	if err := os.WriteFile(errorsPath, []byte(`{"/body/email": ["address already registered"]}`), 0o600); err != nil {
		t.Fatalf("write errors: %v", err)
	}
	outPath := filepath.Join(dir, "contact.html")

	if _, err := execute(t, "render", "--server-errors", errorsPath, "--output", outPath); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "address already registered") {
		t.Fatalf("expected server error in output:\n%s", data)
	}
}

func TestRenderCommand_ThemeFromConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "contactform.yaml")
	if err := os.WriteFile(configPath, []byte(strings.Replace(sampleConfig, "output: out/contact.html\n", "", 1)), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	html, err := execute(t, "--config", configPath, "render")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, fragment := range []string{`data-theme="acme"`, "--primary: #eee;", "/static/acme/acme.css"} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, html)
		}
	}
}

func TestRenderCommand_UnknownRenderer(t *testing.T) {
	if _, err := execute(t, "render", "--renderer", "missing"); err == nil {
		t.Fatalf("expected unknown renderer error")
	}
}

func TestSchemaCommand(t *testing.T) {
	out, err := execute(t, "schema")
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	var form model.FormModel
	if err := json.Unmarshal([]byte(out), &form); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}

	var names []string
	for _, field := range form.Fields {
		names = append(names, field.Name)
	}
	if diff := cmp.Diff([]string{"firstName", "lastName", "email", "message"}, names); diff != "" {
		t.Fatalf("field mismatch (-want +got):\n%s", diff)
	}
}

type scriptedDriver struct {
	answers map[string][]string
}

func (d *scriptedDriver) next(label string) string {
	queue := d.answers[label]
	if len(queue) == 0 {
		return ""
	}
	d.answers[label] = queue[1:]
	return queue[0]
}

func (d *scriptedDriver) Input(_ context.Context, cfg tui.InputConfig) (string, error) {
	return d.next(cfg.Message), nil
}

func (d *scriptedDriver) TextArea(_ context.Context, cfg tui.TextAreaConfig) (string, error) {
	return d.next(cfg.Message), nil
}

func (d *scriptedDriver) Confirm(context.Context, tui.ConfirmConfig) (bool, error) {
	return false, nil
}

func (d *scriptedDriver) Info(context.Context, string) error { return nil }

func TestInteractiveCommand(t *testing.T) {
	driver := &scriptedDriver{answers: map[string][]string{
		"First Name": {"<em>Tamara</em>"},
		"Last Name":  {"Leonard"},
		"Email":      {"123", "tamaraleonard46@gmail.com"},
		"Message":    {"Hello"},
	}}

	cmd := newInteractiveCommand(&RootOptions{}, &interactiveOptions{driver: driver})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "pretty"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("interactive: %v", err)
	}

	// Markup is stripped before the submission is captured.
	for _, line := range []string{"firstName=Tamara\n", "email=tamaraleonard46@gmail.com", "message=Hello"} {
		if !strings.Contains(out.String(), line) {
			t.Fatalf("expected %q in output:\n%s", line, out.String())
		}
	}
}

func TestInteractiveCommand_UnknownFormat(t *testing.T) {
	if _, err := execute(t, "interactive", "--format", "xml"); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}

func TestFlagName(t *testing.T) {
	cmd := NewRootCommand()
	render, _, _ := cmd.Find([]string{"render"})
	if render.Flags().Lookup("first-name") == nil || render.Flags().Lookup("last-name") == nil {
		t.Fatalf("expected kebab-case field flags")
	}
}
