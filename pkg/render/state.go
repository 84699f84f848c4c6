package render

import "github.com/goliatone/go-contactform/pkg/contact"

// OptionsFromState projects the controller state onto RenderOptions. Errors
// only include fields the controller currently flags.
func OptionsFromState(state contact.State) RenderOptions {
	opts := RenderOptions{
		Values: state.Values.Map(),
		Errors: state.Errors.Map(),
	}
	if state.Submitted {
		opts.Submission = SubmissionFromSnapshot(state.Snapshot)
	}
	return opts
}
