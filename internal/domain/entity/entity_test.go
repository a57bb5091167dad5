package entity

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewCargo(t *testing.T) {
	if _, err := NewCargo("TI"); err != nil {
		t.Fatalf("two-letter nome should pass: %v", err)
	}
	if _, err := NewCargo("X"); err == nil {
		t.Fatalf("one-letter nome should fail")
	}
}

func TestNewFuncionario_CargoIDRequired(t *testing.T) {
	if _, err := NewFuncionario("Ana Souza", "ana@empresa.com", "Senha@123", true, 0); err == nil {
		t.Fatalf("cargo id zero should fail")
	}
	if _, err := NewFuncionario("Ana Souza", "ana@empresa.com", "Senha@123", true, 1); err != nil {
		t.Fatalf("valid funcionario rejected: %v", err)
	}
}

func TestNewFuncionario_SenhaOptionalForUpdate(t *testing.T) {
	// an empty senha skips the strength rule; services enforce presence on create
	if _, err := NewFuncionario("Ana Souza", "ana@empresa.com", "", true, 1); err != nil {
		t.Fatalf("empty senha should pass construction: %v", err)
	}
	if _, err := NewFuncionario("Ana Souza", "ana@empresa.com", "fraca", true, 1); err == nil {
		t.Fatalf("weak senha should fail")
	}
}

func TestSenhaNeverSerialized(t *testing.T) {
	f, err := NewFuncionario("Ana Souza", "ana@empresa.com", "Senha@123", true, 1)
	if err != nil {
		t.Fatalf("new funcionario: %v", err)
	}
	raw, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "Senha@123") {
		t.Fatalf("senha leaked into JSON: %s", raw)
	}

	u, err := NewUsuario("Ana", "ana@empresa.com", "Senha@123")
	if err != nil {
		t.Fatalf("new usuario: %v", err)
	}
	raw, err = json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "Senha@123") {
		t.Fatalf("senha leaked into JSON: %s", raw)
	}
}

func TestNewProjeto_Status(t *testing.T) {
	for _, status := range []string{StatusPendente, StatusEmAndamento, StatusConcluido, StatusCancelado} {
		if _, err := NewProjeto("Sistema RH", "", "", status, 1); err != nil {
			t.Fatalf("status %q rejected: %v", status, err)
		}
	}
	if _, err := NewProjeto("Sistema RH", "", "", "Parado", 1); err == nil {
		t.Fatalf("unknown status accepted")
	}
}

func TestNewTarefa_Dates(t *testing.T) {
	if _, err := NewTarefa("Levantar requisitos", false, "2026-02-01", 1); err != nil {
		t.Fatalf("iso date rejected: %v", err)
	}
	if _, err := NewTarefa("Levantar requisitos", false, "01/02/2026", 1); err == nil {
		t.Fatalf("non-iso date accepted")
	}
	if _, err := NewTarefa("Levantar requisitos", false, "", 1); err != nil {
		t.Fatalf("empty date should be optional: %v", err)
	}
}
