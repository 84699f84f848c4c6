package vanilla_test

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/render"
	"github.com/goliatone/go-contactform/pkg/renderers/vanilla"
	"github.com/goliatone/go-contactform/pkg/testsupport"
)

// Rendered error indicators must match the controller's failing fields for
// any sequence of edits and submits.
func TestProperty_RenderedErrorsMatchState(t *testing.T) {
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	form := testsupport.ContactForm(t)

	rapid.Check(t, func(rt *rapid.T) {
		controller := contact.New()
		steps := rapid.IntRange(1, 10).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			if rapid.Bool().Draw(rt, "submit") {
				controller.Submit()
				continue
			}
			field := rapid.SampledFrom(contact.Fields()).Draw(rt, "field")
			value := rapid.StringMatching(`[a-zA-Z0-9@.]{0,12}`).Draw(rt, "value")
			if err := controller.SetField(field, value); err != nil {
				rt.Fatalf("set field: %v", err)
			}
		}

		state := controller.State()
		output, err := renderer.Render(testsupport.Context(), form, render.OptionsFromState(state))
		if err != nil {
			rt.Fatalf("render: %v", err)
		}
		if got, want := strings.Count(string(output), `data-testid="error"`), state.Errors.Len(); got != want {
			rt.Fatalf("rendered %d errors, state has %d", got, want)
		}
	})
}
