// Command adminctl creates user accounts from the command line, going
// through the same validation and hashing path as the public signup
// endpoint.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/avelichko/careernet/internal/server/config"
	"github.com/avelichko/careernet/internal/server/repositories/repomanager"
	"github.com/avelichko/careernet/internal/server/services"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

func run() error {
	cfg := &config.Config{}
	cfg.LoadDefaults()

	dsn := flag.String("d", cfg.DatabaseDSN, "database DSN")
	flag.Parse()

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	svc := services.NewUserService(db, m, cfg, nil)

	reader := bufio.NewReader(os.Stdin)

	name, err := getSimpleText(reader, "Full name", os.Stdout)
	if err != nil {
		return err
	}
	username, err := getSimpleText(reader, "Username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, _, err := svc.Signup(ctx, services.SignupParams{
		Name:     name,
		Username: username,
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		return err
	}

	fmt.Printf("created user %s (%s)\n", user.UserName, user.ID)
	return nil
}
