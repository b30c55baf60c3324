package entities

// FieldKind is the semantic role of a form value, independent of any
// concrete DOM selector.
type FieldKind string

const (
	FieldEmail        FieldKind = "email"
	FieldEmailConfirm FieldKind = "email_confirm"
	FieldPassword     FieldKind = "password"
	FieldUsername     FieldKind = "username"
	FieldName         FieldKind = "name"
	FieldFirstName    FieldKind = "first_name"
	FieldLastName     FieldKind = "last_name"
	FieldSearch       FieldKind = "search"
	FieldBirthDay     FieldKind = "birth_day"
	FieldBirthMonth   FieldKind = "birth_month"
	FieldBirthYear    FieldKind = "birth_year"
	FieldGender       FieldKind = "gender"
)

// Sensitive reports whether values of this kind must be masked in logs,
// step details and screenshot analysis.
func (f FieldKind) Sensitive() bool {
	return f == FieldPassword
}
