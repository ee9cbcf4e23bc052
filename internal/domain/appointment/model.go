package appointment

// Appointment is a scheduled visit. A (fecha, hora) pair is held by at
// most one appointment clinic-wide.
type Appointment struct {
	ID                int64  `json:"id"`
	Fecha             string `json:"fecha"`
	Hora              string `json:"hora"`
	Motivo            string `json:"motivo"`
	CedulaPaciente    string `json:"cedula_paciente"`
	AgendadaPorMedico bool   `json:"agendada_por_medico"`
}

// Input is the physician-side booking payload; the patient must already
// be registered.
type Input struct {
	Fecha          string `json:"fecha"`
	Hora           string `json:"hora"`
	Motivo         string `json:"motivo"`
	CedulaPaciente string `json:"cedula_paciente"`
}

// ReservationInput is the public self-booking payload. It carries the
// patient's contact data so an unregistered caller is enrolled on the
// spot before the appointment is created.
type ReservationInput struct {
	Cedula   string `json:"cedula"`
	Nombres  string `json:"nombres"`
	Correo   string `json:"correo"`
	Telefono string `json:"telefono"`
	Fecha    string `json:"fecha"`
	Hora     string `json:"hora"`
	Motivo   string `json:"motivo"`
}

// UpdateInput is a partial update; nil fields are left untouched.
type UpdateInput struct {
	Fecha  *string `json:"fecha"`
	Hora   *string `json:"hora"`
	Motivo *string `json:"motivo"`
}
