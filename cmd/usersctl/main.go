// Command usersctl manages user accounts of the dataset hub from the
// operator's shell. Account self-registration is deliberately absent from the
// public API, so this tool is the only way accounts come into existence.
package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/mkarev/go-dataset-hub/internal/config"
	"github.com/mkarev/go-dataset-hub/internal/logger"
	"github.com/mkarev/go-dataset-hub/internal/store"
	"github.com/mkarev/go-dataset-hub/internal/utils"
	"github.com/mkarev/go-dataset-hub/models"
)

func main() {
	var (
		dsn      string
		driver   string
		username string
		password string
		fullName string
		groups   string
		apiKey   bool
		hashCost int
	)

	flag.StringVar(&dsn, "d", "", "database DSN (postgres URI or sqlite file path)")
	flag.StringVar(&driver, "db-driver", config.DriverPostgres, "database driver: pgx or sqlite3")
	flag.StringVar(&username, "username", "", "username of the new account")
	flag.StringVar(&password, "password", "", "plaintext password, stored as a bcrypt digest")
	flag.StringVar(&fullName, "full-name", "", "display name of the new account")
	flag.StringVar(&groups, "groups", "", "comma-separated group memberships, first one is the working group")
	flag.BoolVar(&apiKey, "api-key", false, "also issue a generated API key")
	flag.IntVar(&hashCost, "password-hash-cost", 0, "bcrypt cost, 0 selects the bcrypt default")
	flag.Parse()

	log := logger.NewLogger("usersctl")

	if username == "" || password == "" {
		log.Fatal().Msg("both -username and -password are required")
	}

	digest, err := utils.HashPassword(password, hashCost)
	if err != nil {
		log.Fatal().Err(err).Msg("error hashing password")
	}

	user := models.User{
		Username:       username,
		FullName:       fullName,
		HashedPassword: digest,
		UserGroups:     splitGroups(groups),
	}
	if apiKey {
		generator := utils.NewUUIDGenerator()
		user.APIKey = generator.Generate()
	}

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, config.Storage{DB: config.DB{Driver: driver, DSN: dsn}}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	created, err := storages.UserRepository.CreateUser(ctx, user)
	if err != nil {
		log.Fatal().Err(err).Str("username", username).Msg("error creating user")
	}

	fmt.Printf("created user %q (groups: %s)\n", created.Username, strings.Join(created.UserGroups, ", "))
	if apiKey {
		fmt.Printf("api key: %s\n", user.APIKey)
	}
}

func splitGroups(groups string) []string {
	if groups == "" {
		return nil
	}

	parts := strings.Split(groups, ",")
	cleaned := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}
