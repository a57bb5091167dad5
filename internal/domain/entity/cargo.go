package entity

// Cargo is a job role a Funcionario can hold. Nome is unique across the
// system.
type Cargo struct {
	ID   int    `json:"idCargo"`
	Nome string `json:"nomeCargo" validate:"required,min=2"`
}

func NewCargo(nome string) (*Cargo, error) {
	c := &Cargo{Nome: nome}
	if err := checkStruct(c); err != nil {
		return nil, err
	}
	return c, nil
}
