package entity

// Tarefa belongs to a Projeto. DataLimite is an optional ISO date
// (YYYY-MM-DD); Concluida defaults to false on creation.
type Tarefa struct {
	ID         int    `json:"id"`
	Titulo     string `json:"titulo" validate:"required,min=3"`
	Concluida  bool   `json:"concluida"`
	DataLimite string `json:"data_limite,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ProjetoID  int    `json:"projeto_id" validate:"required,gt=0"`
}

func NewTarefa(titulo string, concluida bool, dataLimite string, projetoID int) (*Tarefa, error) {
	t := &Tarefa{
		Titulo:     titulo,
		Concluida:  concluida,
		DataLimite: dataLimite,
		ProjetoID:  projetoID,
	}
	if err := checkStruct(t); err != nil {
		return nil, err
	}
	return t, nil
}
