package entity

import "github.com/TodeschiniDeveloper/gestao-projetos-api/pkg/apperror"

// Funcionario is an employee holding a Cargo. Senha carries the plaintext
// only between construction and hashing; it is stored hashed and never
// serialized.
type Funcionario struct {
	ID                   int    `json:"idFuncionario"`
	Nome                 string `json:"nomeFuncionario" validate:"required,min=3"`
	Email                string `json:"email" validate:"required,email"`
	Senha                string `json:"-" validate:"omitempty,senha"`
	RecebeValeTransporte bool   `json:"recebeValeTransporte"`
	Cargo                Cargo  `json:"cargo" validate:"-"`
}

func NewFuncionario(nome, email, senha string, recebeValeTransporte bool, cargoID int) (*Funcionario, error) {
	f := &Funcionario{
		Nome:                 nome,
		Email:                email,
		Senha:                senha,
		RecebeValeTransporte: recebeValeTransporte,
		Cargo:                Cargo{ID: cargoID},
	}
	if err := checkStruct(f); err != nil {
		return nil, err
	}
	if cargoID <= 0 {
		return nil, apperror.Validation("Erro na validação de dados", map[string]any{
			"cargo.idCargo": "deve ser maior que 0",
		})
	}
	return f, nil
}
