package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-richparams/pkg/parameter"
	"github.com/goliatone/go-richparams/pkg/render"
)

type stubDriver struct {
	inputs       []string
	passwords    []string
	selectIdx    []int
	inputCfgs    []InputConfig
	selectCfgs   []SelectConfig
	infoMessages []string
	inputPos     int
	passPos      int
	selectPos    int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.inputCfgs = append(s.inputCfgs, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, cfg InputConfig) (string, error) {
	s.inputCfgs = append(s.inputCfgs, cfg)
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selectCfgs = append(s.selectCfgs, cfg)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

type edit struct{ name, value string }

func newRenderer(t *testing.T, driver PromptDriver, opts ...Option) (*Renderer, *[]edit) {
	t.Helper()

	var edits []edit
	opts = append([]Option{
		WithPromptDriver(driver),
		WithObserver(func(name, value string) { edits = append(edits, edit{name, value}) }),
	}, opts...)
	r, err := New(opts...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r, &edits
}

func TestRender_BoolFromEmpty(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{0}}
	r, edits := newRenderer(t, driver)

	form := render.Form{Parameters: []parameter.Schema{{Name: "gpu", Type: parameter.TypeBool}}}
	out, err := r.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if diff := cmp.Diff([]string{"True", "False"}, driver.selectCfgs[0].Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if driver.selectCfgs[0].DefaultIndex != -1 {
		t.Fatalf("expected no preselection, got %d", driver.selectCfgs[0].DefaultIndex)
	}
	if diff := cmp.Diff([]edit{{"gpu", "true"}}, *edits, cmp.AllowUnexported(edit{})); diff != "" {
		t.Fatalf("edits mismatch (-want +got):\n%s", diff)
	}
	if got, want := string(out), `[{"name":"gpu","value":"true"}]`; got != want {
		t.Fatalf("output = %s, want %s", got, want)
	}
}

func TestRender_OptionsSeededFromDefault(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{1}}
	r, edits := newRenderer(t, driver)

	form := render.Form{Parameters: []parameter.Schema{{
		Name:         "region",
		DefaultValue: "eu",
		Options: []parameter.Option{
			{Name: "Europe", Value: "eu"},
			{Name: "United States", Value: "us"},
		},
	}}}
	out, err := r.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	cfg := driver.selectCfgs[0]
	if diff := cmp.Diff([]string{"Europe", "United States"}, cfg.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if cfg.DefaultIndex != 0 {
		t.Fatalf("expected Europe preselected, got %d", cfg.DefaultIndex)
	}
	if diff := cmp.Diff([]edit{{"region", "us"}}, *edits, cmp.AllowUnexported(edit{})); diff != "" {
		t.Fatalf("edits mismatch (-want +got):\n%s", diff)
	}
	if got, want := string(out), `[{"name":"region","value":"us"}]`; got != want {
		t.Fatalf("output = %s, want %s", got, want)
	}
}

func TestRender_ReselectingNotifiesAgain(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{1}}
	r, edits := newRenderer(t, driver)

	form := render.Form{Parameters: []parameter.Schema{{Name: "gpu", Type: parameter.TypeBool, Value: "false"}}}
	if _, err := r.Render(context.Background(), form, render.RenderOptions{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if driver.selectCfgs[0].DefaultIndex != 1 {
		t.Fatalf("expected current value preselected, got %d", driver.selectCfgs[0].DefaultIndex)
	}
	if diff := cmp.Diff([]edit{{"gpu", "false"}}, *edits, cmp.AllowUnexported(edit{})); diff != "" {
		t.Fatalf("edits mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_RetypingTheSameTextNotifiesAgain(t *testing.T) {
	driver := &stubDriver{inputs: []string{"v"}}
	r, edits := newRenderer(t, driver)

	form := render.Form{Parameters: []parameter.Schema{{Name: "name", Value: "v"}}}
	out, err := r.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff([]edit{{"name", "v"}}, *edits, cmp.AllowUnexported(edit{})); diff != "" {
		t.Fatalf("edits mismatch (-want +got):\n%s", diff)
	}
	if got, want := string(out), `[{"name":"name","value":"v"}]`; got != want {
		t.Fatalf("output = %s, want %s", got, want)
	}
}

func TestRender_NumericFilterReprompts(t *testing.T) {
	driver := &stubDriver{inputs: []string{"ten", "10"}}
	r, edits := newRenderer(t, driver)

	form := render.Form{Parameters: []parameter.Schema{{Name: "cpus", Type: parameter.TypeNumber, DefaultValue: "2"}}}
	out, err := r.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if driver.inputPos != 2 {
		t.Fatalf("expected two prompts, got %d", driver.inputPos)
	}
	if diff := cmp.Diff([]string{"! cpus: only numeric input is accepted"}, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]edit{{"cpus", "10"}}, *edits, cmp.AllowUnexported(edit{})); diff != "" {
		t.Fatalf("edits mismatch (-want +got):\n%s", diff)
	}
	if got, want := string(out), `[{"name":"cpus","value":"10"}]`; got != want {
		t.Fatalf("output = %s, want %s", got, want)
	}

	cfg := driver.inputCfgs[0]
	if cfg.Default != "2" || cfg.Help != "default: 2" {
		t.Fatalf("unexpected prompt config %+v", cfg)
	}
	if cfg.Validator == nil || cfg.Validator("1e3") != nil || cfg.Validator("ten") == nil {
		t.Fatal("expected numeric validator on the prompt")
	}
}

func TestRender_RequiredReprompts(t *testing.T) {
	driver := &stubDriver{inputs: []string{"", "eu"}}
	r, _ := newRenderer(t, driver)

	form := render.Form{Parameters: []parameter.Schema{{Name: "region", Description: "Region", Required: true}}}
	out, err := r.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff([]string{"! region: a value is required"}, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
	if driver.inputCfgs[0].Message != "Region (region)" {
		t.Fatalf("message = %q", driver.inputCfgs[0].Message)
	}
	if got, want := string(out), `[{"name":"region","value":"eu"}]`; got != want {
		t.Fatalf("output = %s, want %s", got, want)
	}
}

func TestRender_RequiredRejectsWhitespace(t *testing.T) {
	driver := &stubDriver{inputs: []string{"  ", "x"}}
	r, edits := newRenderer(t, driver)

	form := render.Form{Parameters: []parameter.Schema{{Name: "name", Required: true}}}
	out, err := r.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if driver.inputPos != 2 {
		t.Fatalf("expected two prompts, got %d", driver.inputPos)
	}
	if diff := cmp.Diff([]string{"! name: a value is required"}, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]edit{{"name", "  "}, {"name", "x"}}, *edits, cmp.AllowUnexported(edit{})); diff != "" {
		t.Fatalf("edits mismatch (-want +got):\n%s", diff)
	}
	if got, want := string(out), `[{"name":"name","value":"x"}]`; got != want {
		t.Fatalf("output = %s, want %s", got, want)
	}
}

func TestRender_MaxAttempts(t *testing.T) {
	driver := &stubDriver{inputs: []string{"x", "y", "z"}}
	r, _ := newRenderer(t, driver, WithMaxAttempts(2))

	form := render.Form{Parameters: []parameter.Schema{{Name: "cpus", Type: parameter.TypeNumber}}}
	_, err := r.Render(context.Background(), form, render.RenderOptions{})
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestRender_SensitiveUsesPasswordAndMasksPretty(t *testing.T) {
	driver := &stubDriver{passwords: []string{"hunter2"}}
	r, _ := newRenderer(t, driver, WithOutputFormat(OutputFormatPrettyText))

	form := render.Form{Parameters: []parameter.Schema{
		{Name: "token", Sensitive: true, Value: "old", DefaultValue: "changeme"},
	}}
	out, err := r.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got, want := string(out), "token=********\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
	cfg := driver.inputCfgs[0]
	if cfg.Default != "" || cfg.Help != "" {
		t.Fatalf("sensitive prompt leaked default: %+v", cfg)
	}
}

func TestRender_ReadOnlySkipsPrompts(t *testing.T) {
	driver := &stubDriver{}
	r, edits := newRenderer(t, driver, WithOutputFormat(OutputFormatFormURLEncoded))

	form := render.Form{Parameters: []parameter.Schema{
		{Name: "region", DefaultValue: "eu"},
		{Name: "gpu", Type: parameter.TypeBool, Value: "true"},
	}}
	out, err := r.Render(context.Background(), form, render.RenderOptions{ReadOnly: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got, want := string(out), "gpu=true&region=eu"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
	if len(driver.inputCfgs)+len(driver.selectCfgs) != 0 || len(*edits) != 0 {
		t.Fatal("read-only render must not prompt or edit")
	}
	if r.ContentType() != "application/x-www-form-urlencoded" {
		t.Fatalf("content type = %q", r.ContentType())
	}
}

func TestRender_ErrorsAndTransformer(t *testing.T) {
	driver := &stubDriver{inputs: []string{"eu"}}
	r, _ := newRenderer(t, driver, WithSubmitTransformer(func(values []parameter.Value) ([]parameter.Value, error) {
		return append(values, parameter.Value{Name: "extra", Value: "1"}), nil
	}))

	form := render.Form{Parameters: []parameter.Schema{{Name: "region"}}}
	out, err := r.Render(context.Background(), form, render.RenderOptions{
		Errors: map[string][]string{
			"region": {"required"},
			"form":   {"Template is archived"},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := []string{"! Template is archived", "! region: required"}
	if diff := cmp.Diff(want, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
	if got, want := string(out), `[{"name":"region","value":"eu"},{"name":"extra","value":"1"}]`; got != want {
		t.Fatalf("output = %s, want %s", got, want)
	}
}

func TestRender_Abort(t *testing.T) {
	r, _ := newRenderer(t, abortingDriver{&stubDriver{}})

	form := render.Form{Parameters: []parameter.Schema{{Name: "region"}}}
	_, err := r.Render(context.Background(), form, render.RenderOptions{})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestNew_RejectsUnknownFormat(t *testing.T) {
	if _, err := New(WithOutputFormat("xml")); err == nil {
		t.Fatal("expected error for unknown output format")
	}
}

type abortingDriver struct{ *stubDriver }

func (abortingDriver) Input(context.Context, InputConfig) (string, error) { return "", ErrAborted }
