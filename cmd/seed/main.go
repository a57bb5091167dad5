package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/config"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	// Ensure base cargos exist
	var adminCargoID, devCargoID int
	if err := db.QueryRow(`
		INSERT INTO cargos (nome) VALUES ('Administrador')
		ON CONFLICT (nome) DO UPDATE SET nome = EXCLUDED.nome
		RETURNING id
	`).Scan(&adminCargoID); err != nil {
		log.Fatalf("failed to upsert Administrador cargo: %v", err)
	}
	if err := db.QueryRow(`
		INSERT INTO cargos (nome) VALUES ('Desenvolvedor')
		ON CONFLICT (nome) DO UPDATE SET nome = EXCLUDED.nome
		RETURNING id
	`).Scan(&devCargoID); err != nil {
		log.Fatalf("failed to upsert Desenvolvedor cargo: %v", err)
	}
	fmt.Printf("cargos ensured: Administrador=%d Desenvolvedor=%d\n", adminCargoID, devCargoID)

	// Seed an admin funcionario
	email := "admin@gestao.local"
	senha := "Admin@123"
	hash, err := helpers.HashSenha(senha)
	if err != nil {
		log.Fatalf("failed to hash senha: %v", err)
	}

	var funcionarioID int
	err = db.QueryRow(`
		INSERT INTO funcionarios (nome, email, senha, recebe_vale_transporte, cargo_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET nome = EXCLUDED.nome
		RETURNING id
	`, "Administrador do Sistema", email, hash, false, adminCargoID).Scan(&funcionarioID)
	if err != nil {
		log.Fatalf("failed to seed funcionario: %v", err)
	}
	fmt.Printf("seeded funcionario: id=%d email=%s senha=%s\n", funcionarioID, email, senha)
}
