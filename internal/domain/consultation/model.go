package consultation

// Consultation records the clinical outcome of a visit. CitaID is
// optional: walk-in consultations have no appointment behind them.
type Consultation struct {
	ID             int64   `json:"id"`
	Fecha          string  `json:"fecha"`
	Diagnostico    string  `json:"diagnostico"`
	Tratamiento    string  `json:"tratamiento"`
	Observaciones  *string `json:"observaciones"`
	CedulaPaciente string  `json:"cedula_paciente"`
	CitaID         *int64  `json:"cita_id"`
}

// UpdateInput is a partial update; nil fields are left untouched. The
// patient and appointment links are fixed at creation.
type UpdateInput struct {
	Fecha         *string `json:"fecha"`
	Diagnostico   *string `json:"diagnostico"`
	Tratamiento   *string `json:"tratamiento"`
	Observaciones *string `json:"observaciones"`
}
