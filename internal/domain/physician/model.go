package physician

// Physician is a clinic staff record; it is directory data, not an
// account. Login accounts live in the account domain.
type Physician struct {
	ID           int64  `json:"id"`
	Nombres      string `json:"nombres"`
	Especialidad string `json:"especialidad"`
	Correo       string `json:"correo"`
	Telefono     string `json:"telefono"`
}

// UpdateInput is a partial update; nil fields are left untouched.
type UpdateInput struct {
	Nombres      *string `json:"nombres"`
	Especialidad *string `json:"especialidad"`
	Correo       *string `json:"correo"`
	Telefono     *string `json:"telefono"`
}
