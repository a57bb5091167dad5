package entity

// Usuario owns Projetos. Like Funcionario, the Senha field holds plaintext
// only until the service hashes it.
type Usuario struct {
	ID    int    `json:"id"`
	Nome  string `json:"nome" validate:"required,min=3"`
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"-" validate:"omitempty,senha"`
}

func NewUsuario(nome, email, senha string) (*Usuario, error) {
	u := &Usuario{Nome: nome, Email: email, Senha: senha}
	if err := checkStruct(u); err != nil {
		return nil, err
	}
	return u, nil
}
