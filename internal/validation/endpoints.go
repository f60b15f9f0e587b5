package validation

// Request body field names shared by the endpoints.
const (
	FieldName                 = "name"
	FieldEmail                = "email"
	FieldPassword             = "password"
	FieldPasswordConfirmation = "passwordConfirmation"
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// SignUpValidation returns the validators run before registration.
func SignUpValidation() *Composite {
	required := NewComposite()
	for _, field := range []string{FieldName, FieldEmail, FieldPassword, FieldPasswordConfirmation} {
		required.Add(RequiredField(field))
	}

	return NewComposite(
		required,
		CompareFields(FieldPassword, FieldPasswordConfirmation),
		MaxBytesField(FieldPassword, MaxPasswordBytes),
		EmailField(FieldEmail),
	)
}

// LoginValidation returns the validators run before authentication.
func LoginValidation() *Composite {
	return NewComposite(
		RequiredField(FieldEmail),
		RequiredField(FieldPassword),
		MaxBytesField(FieldPassword, MaxPasswordBytes),
		EmailField(FieldEmail),
	)
}
