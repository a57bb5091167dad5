package entity

// Projeto statuses accepted by the domain.
const (
	StatusPendente    = "Pendente"
	StatusEmAndamento = "Em Andamento"
	StatusConcluido   = "Concluído"
	StatusCancelado   = "Cancelado"
)

// Projeto belongs to a Usuario. DataInicio is an optional ISO date
// (YYYY-MM-DD).
type Projeto struct {
	ID          int    `json:"id"`
	Nome        string `json:"nome" validate:"required,min=3"`
	Descricao   string `json:"descricao"`
	DataInicio  string `json:"data_inicio,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status      string `json:"status" validate:"required,oneof='Pendente' 'Em Andamento' 'Concluído' 'Cancelado'"`
	UsuarioID   int    `json:"usuario_id" validate:"required,gt=0"`
	UsuarioNome string `json:"usuario_nome,omitempty"`
}

func NewProjeto(nome, descricao, dataInicio, status string, usuarioID int) (*Projeto, error) {
	p := &Projeto{
		Nome:       nome,
		Descricao:  descricao,
		DataInicio: dataInicio,
		Status:     status,
		UsuarioID:  usuarioID,
	}
	if err := checkStruct(p); err != nil {
		return nil, err
	}
	return p, nil
}
