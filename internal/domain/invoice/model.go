package invoice

// Invoice bills a patient. Valor is positive with at most two decimal
// places, stored as NUMERIC(10,2). ConsultaID is optional.
type Invoice struct {
	ID             int64   `json:"id"`
	Fecha          string  `json:"fecha"`
	Valor          float64 `json:"valor"`
	Descripcion    string  `json:"descripcion"`
	CedulaPaciente string  `json:"cedula_paciente"`
	ConsultaID     *int64  `json:"consulta_id"`
}

// UpdateInput is a partial update; nil fields are left untouched.
type UpdateInput struct {
	Fecha       *string  `json:"fecha"`
	Valor       *float64 `json:"valor"`
	Descripcion *string  `json:"descripcion"`
}
