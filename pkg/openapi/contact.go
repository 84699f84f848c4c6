package openapi

import _ "embed"

// ContactOperationID identifies the bundled contact form operation.
const ContactOperationID = "submitContact"

//go:embed contact.yaml
var contactSchema []byte

// ContactDocument returns the bundled OpenAPI description of the contact form.
func ContactDocument() Document {
	return MustNewDocument(embeddedSource{name: "contact.yaml"}, contactSchema)
}
