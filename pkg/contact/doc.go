// Package contact implements the contact form state machine: live field
// values, per-field validation recomputed on every change, and the snapshot
// captured by a successful submit.
//
// A typical flow:
//
//	form := contact.New()
//	unsubscribe := form.Subscribe(func(state contact.State) {
//		// re-render from state
//	})
//	defer unsubscribe()
//
//	_ = form.SetField(contact.FirstName, "Tamara")
//	_ = form.SetField(contact.LastName, "Leonard")
//	_ = form.SetField(contact.Email, "tamaraleonard46@gmail.com")
//	if result := form.Submit(); result.Accepted {
//		fmt.Println(result.Snapshot.Get(contact.FirstName))
//	}
//
// Validation failures are values carried in Errors, never Go errors. The only
// error the controller returns is ErrUnknownField for names outside the closed
// field set.
package contact
