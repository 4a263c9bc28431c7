// seed crea (o actualiza) el usuario administrador inicial.
//
// Uso: go run ./cmd/seed [-username admin] [-password <pass>]
// Lee la conexión de las mismas env vars que el API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/reaksa/stockford-api/internal/domain/entity"
	"github.com/reaksa/stockford-api/internal/infrastructure/postgres"
	"github.com/reaksa/stockford-api/pkg/config"
)

func main() {
	username := flag.String("username", "admin", "username del administrador")
	password := flag.String("password", "", "password del administrador (requerido)")
	flag.Parse()

	if *password == "" {
		fmt.Fprintln(os.Stderr, "-password es requerido")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "migraciones: %v\n", err)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash de password: %v\n", err)
		os.Exit(1)
	}

	userRepo := postgres.NewUserRepository(pool)
	existing, err := userRepo.FindByUsername(*username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "buscar usuario: %v\n", err)
		os.Exit(1)
	}

	if existing != nil {
		existing.PasswordHash = string(hash)
		existing.Role = entity.RoleAdmin
		existing.UpdatedAt = time.Now().UTC()
		if err := userRepo.Update(existing); err != nil {
			fmt.Fprintf(os.Stderr, "actualizar usuario: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Usuario %q actualizado como admin\n", *username)
		return
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.NewString(),
		Username:     *username,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(user); err != nil {
		fmt.Fprintf(os.Stderr, "crear usuario: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Usuario admin %q creado\n", *username)
}
