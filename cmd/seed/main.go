package main

import (
	"context"
	"log"
	"time"

	"kotconnect/internal/auth"
	"kotconnect/internal/cache"
	"kotconnect/internal/config"
	"kotconnect/internal/db"
	"kotconnect/internal/model"
	"kotconnect/internal/repository"
	"kotconnect/internal/service"
)

type seedUser struct {
	username  string
	email     string
	birthDate time.Time
	location  string
	password  string
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Dorm{},
		&model.Task{},
		&model.Event{},
		&model.Expense{},
		&model.ExpenseShare{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	dormRepo := repository.NewDormRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)

	// The seed never touches Redis; the cache wrapper is nil-safe.
	var cacheClient *cache.Client
	dormService := service.NewDormService(dormRepo, cacheClient)

	seedUsers := []seedUser{
		{"nathan", "nathan@ucll.be", time.Date(2005, 2, 1, 0, 0, 0, 0, time.UTC), "Leuven", "nathan123"},
		{"rajo", "rajo@ucll.be", time.Date(2004, 2, 2, 0, 0, 0, 0, time.UTC), "Leuven", "rajo123"},
		{"sandercoemans", "sander@ucll.be", time.Date(2004, 2, 6, 0, 0, 0, 0, time.UTC), "Leuven", "Sander123!"},
	}

	users := make([]*model.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		existing, err := userRepo.FindByUsername(ctx, su.username)
		if err == nil {
			log.Printf("User %q already exists, skipping", su.username)
			users = append(users, existing)
			continue
		}

		hashed, err := auth.HashPassword(su.password)
		if err != nil {
			log.Fatalf("Failed to hash password for %q: %v", su.username, err)
		}
		user := &model.User{
			Username:     su.username,
			Email:        su.email,
			BirthDate:    su.birthDate,
			Location:     su.location,
			PasswordHash: hashed,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %q: %v", su.username, err)
		}
		users = append(users, user)
		log.Printf("Created user %q", su.username)
	}

	nathan, rajo, sander := users[0], users[1], users[2]

	dorm, err := dormService.CreateDorm(ctx, nathan, "Kot Leuven")
	if err != nil {
		log.Fatalf("Failed to create dorm: %v", err)
	}
	log.Printf("Created dorm %q with code %s", dorm.Name, dorm.Code)

	for _, u := range []*model.User{rajo, sander} {
		if _, err := dormService.JoinByCode(ctx, u, dorm.Code); err != nil {
			log.Fatalf("Failed to add %q to dorm: %v", u.Username, err)
		}
	}
	log.Println("All seed users joined the dorm")

	tasks := []*model.Task{
		{
			Title:          "Clean the kitchen",
			Description:    "Wipe the counters and mop the floor",
			Type:           model.TaskTypeKitchen,
			DueDate:        time.Now().AddDate(0, 0, 5),
			KotAddress:     sander.Location,
			CreatedByID:    sander.ID,
			AssignedUserID: &rajo.ID,
			DormID:         dorm.ID,
		},
		{
			Title:          "Do the dishes",
			Description:    "Everything from the weekend",
			Type:           model.TaskTypeDishes,
			DueDate:        time.Now().AddDate(0, 0, 3),
			KotAddress:     rajo.Location,
			CreatedByID:    rajo.ID,
			AssignedUserID: &sander.ID,
			DormID:         dorm.ID,
		},
	}
	for _, task := range tasks {
		if err := taskRepo.Create(ctx, task); err != nil {
			log.Fatalf("Failed to create task %q: %v", task.Title, err)
		}
	}
	log.Printf("Created %d tasks", len(tasks))

	events := []*model.Event{
		{
			Name:        "House dinner",
			Description: "Monthly dinner with everyone in the kot",
			Location:    "Kitchen",
			EventDate:   time.Now().AddDate(0, 0, 10),
			OrganizerID: sander.ID,
			DormID:      dorm.ID,
		},
		{
			Name:        "Game night",
			Description: "Board games and snacks",
			Location:    "Common room",
			EventDate:   time.Now().AddDate(0, 0, 20),
			OrganizerID: rajo.ID,
			DormID:      dorm.ID,
		},
	}
	for _, event := range events {
		if err := eventRepo.Create(ctx, event); err != nil {
			log.Fatalf("Failed to create event %q: %v", event.Name, err)
		}
	}
	log.Printf("Created %d events", len(events))

	log.Println("Seed completed successfully")
}
