package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/iamonjarvis/anywork-backend/config"
	"github.com/iamonjarvis/anywork-backend/internal/domain/entity"
	"github.com/iamonjarvis/anywork-backend/internal/domain/repository"
	"github.com/iamonjarvis/anywork-backend/internal/infrastructure/mongodb"
	"github.com/iamonjarvis/anywork-backend/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	client, db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	users := mongodb.NewUserRepository(db)
	jobs := mongodb.NewJobRepository(db)

	employer := seedUser(users, "Demo Employer", 35, "demo_employer", "employer@example.com", "password123")
	worker := seedUser(users, "Demo Worker", 24, "demo_worker", "worker@example.com", "password123")

	posted, err := jobs.FindByEmployer(employer.ID.Hex())
	if err != nil {
		log.Fatalf("failed to list jobs: %v", err)
	}
	if len(posted) == 0 {
		job := &entity.Job{
			Title:       "Mow lawn",
			Description: "Front and back yard, mower provided",
			Amount:      20,
			Location:    "Springfield",
			Lat:         44.04,
			Lng:         -123.02,
			Date:        time.Now().Add(72 * time.Hour),
			Time:        "10:00",
			Employer:    employer.ID,
		}
		if err := jobs.Create(job); err != nil {
			log.Fatalf("failed to seed job: %v", err)
		}
		fmt.Printf("seeded job: id=%s title=%q\n", job.ID.Hex(), job.Title)
	}

	fmt.Printf("seeded users: employer=%s worker=%s password=password123\n",
		employer.Email, worker.Email)
}

func seedUser(users repository.UserRepository, name string, age int, username, email, password string) *entity.User {
	if existing, err := users.GetByEmail(email); err == nil {
		return existing
	} else if !errors.Is(err, repository.ErrNotFound) {
		log.Fatalf("failed to look up %s: %v", email, err)
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	u := &entity.User{Name: name, Age: age, Username: username, Email: email, Password: hash}
	if err := users.Create(u); err != nil {
		log.Fatalf("failed to seed user %s: %v", email, err)
	}
	fmt.Printf("seeded user: id=%s email=%s\n", u.ID.Hex(), email)
	return u
}
