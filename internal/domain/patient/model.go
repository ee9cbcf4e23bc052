package patient

// Patient is a clinic patient keyed by national id.
type Patient struct {
	Cedula   string `json:"cedula"`
	Nombres  string `json:"nombres"`
	Correo   string `json:"correo"`
	Telefono string `json:"telefono"`
}

// UpdateInput carries a partial update; nil fields are left untouched.
// The cedula is immutable, it identifies the row.
type UpdateInput struct {
	Nombres  *string `json:"nombres"`
	Correo   *string `json:"correo"`
	Telefono *string `json:"telefono"`
}
